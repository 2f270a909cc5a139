package ir

import "fmt"

type Type int

const (
	ScalarType Type = iota
	BlockType
	ListType
	RawType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ScalarType: "Scalar",
		BlockType:  "Block",
		ListType:   "List",
		RawType:    "Raw",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Scalar": ScalarType,
		"Block":  BlockType,
		"List":   ListType,
		"Raw":    RawType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		ScalarType,
		BlockType,
		ListType,
		RawType,
	}
}

func (t Type) IsContainer() bool {
	switch t {
	case BlockType, ListType:
		return true
	default:
		return false
	}
}
