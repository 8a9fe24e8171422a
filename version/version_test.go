package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fakeBuildInfo(info *debug.BuildInfo, ok bool) func() {
	original := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, ok }

	return func() { readBuildInfo = original }
}

func TestModule(t *testing.T) {
	defer fakeBuildInfo(&debug.BuildInfo{Main: debug.Module{Version: "v1.4.0"}}, true)()

	assert.Equal(t, "v1.4.0", Module("0.0.0"))
}

func TestModuleDevel(t *testing.T) {
	defer fakeBuildInfo(&debug.BuildInfo{Main: debug.Module{Version: devel}}, true)()

	assert.Equal(t, "0.0.0", Module("0.0.0"))
}

func TestFromBuildInfo(t *testing.T) {
	defer fakeBuildInfo(&debug.BuildInfo{
		Main: debug.Module{Version: "v1.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-10-01T00:00:00Z"},
		},
	}, true)()

	assert.Equal(t, "librarian v1.4.0, built from git revision abc123 at 2026-10-01T00:00:00Z", FromBuildInfo())
}

func TestFromBuildInfoUnavailable(t *testing.T) {
	defer fakeBuildInfo(nil, false)()

	assert.Equal(t, "librarian (devel)", FromBuildInfo())
}
