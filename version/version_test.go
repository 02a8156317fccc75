package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, Commit, info.Commit)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestInfoString(t *testing.T) {
	s := Info{
		Version:   "1.2.3",
		Commit:    "abc1234",
		Branch:    "main",
		BuildDate: "2026-08-29",
		GoVersion: "go1.24.4",
		Compiler:  "gc",
		Platform:  "linux/amd64",
	}.String()

	assert.Contains(t, s, "Version:\t1.2.3")
	assert.Contains(t, s, "Commit:\t\tabc1234")
	assert.Equal(t, 7, strings.Count(s, "\n")+1, "one line per field")
}
