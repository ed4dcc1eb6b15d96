package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Scan    bool
	Convert bool
	Pointer bool
	Stream  bool
	Diff    bool
	Patch   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("XJ_DEBUG_SCAN")
	d.Convert = boolEnv("XJ_DEBUG_CONVERT")
	d.Pointer = boolEnv("XJ_DEBUG_POINTER")
	d.Stream = boolEnv("XJ_DEBUG_STREAM")
	d.Diff = boolEnv("XJ_DEBUG_DIFF")
	d.Patch = boolEnv("XJ_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool {
	return d.Scan
}
func Convert() bool {
	return d.Convert
}
func Pointer() bool {
	return d.Pointer
}
func Stream() bool {
	return d.Stream
}
func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
