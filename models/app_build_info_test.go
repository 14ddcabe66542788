package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.4.0", "", "9f2c1ab")

	assert.Equal(t, "1.4.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "9f2c1ab", info.BuildCommit())
	assert.Equal(t, "Build version: 1.4.0\nBuild date: N/A\nBuild commit: 9f2c1ab\n", info.String())

	assert.Equal(t, "Build version: N/A\nBuild date: N/A\nBuild commit: N/A\n", AppBuildInfo{}.String())
}
