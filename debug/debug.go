package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokenize bool
	Parse    bool
	Includes bool
	Encode   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokenize = boolEnv("BCONF_DEBUG_TOKENIZE")
	d.Parse = boolEnv("BCONF_DEBUG_PARSE")
	d.Includes = boolEnv("BCONF_DEBUG_INCLUDES")
	d.Encode = boolEnv("BCONF_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokenize() bool {
	return d.Tokenize
}
func Parse() bool {
	return d.Parse
}
func Includes() bool {
	return d.Includes
}
func Encode() bool {
	return d.Encode
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
