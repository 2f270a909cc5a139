package gomap

import "errors"

var ErrType = errors.New("unsupported value type")
