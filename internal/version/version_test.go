package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetBuildInfo(t *testing.T) {
	info := GetBuildInfo()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Contains(t, info.Platform, runtime.GOOS)
}

func TestFullVersion(t *testing.T) {
	s := FullVersion()

	assert.Contains(t, s, "linegrep")
	assert.Contains(t, s, Version)
	assert.Contains(t, s, "Go Version")
}
