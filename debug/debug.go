package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Unparse   bool
	Load      bool
	Query     bool
	RoundTrip bool
}

var d *debug

func init() {
	d = &debug{}
	d.Unparse = boolEnv("ASTUNPARSE_DEBUG_UNPARSE")
	d.Load = boolEnv("ASTUNPARSE_DEBUG_LOAD")
	d.Query = boolEnv("ASTUNPARSE_DEBUG_QUERY")
	d.RoundTrip = boolEnv("ASTUNPARSE_DEBUG_ROUNDTRIP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Unparse() bool {
	return d.Unparse
}
func Load() bool {
	return d.Load
}
func Query() bool {
	return d.Query
}
func RoundTrip() bool {
	return d.RoundTrip
}
