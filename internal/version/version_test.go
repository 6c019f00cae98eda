package version

import (
	"runtime"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBuildInfo(t *testing.T) {
	info := GetBuildInfo()
	require.NotNil(t, info)

	assert.NotEmpty(t, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS, info.OS)
	assert.Equal(t, runtime.GOARCH, info.Arch)
}

func TestGetVersionString(t *testing.T) {
	assert.True(t, strings.HasPrefix(GetVersionString(), "v"))
}

func TestUserAgent(t *testing.T) {
	assert.Equal(t, "shoptui/"+GetBuildInfo().Version, UserAgent())
}

func TestBuildInfoString(t *testing.T) {
	info := &BuildInfo{
		Version:   "1.2.3",
		BuildDate: "2026-01-02T03:04:05Z",
		Commit:    "abcdef1",
		GoVersion: "go1.26.0",
		OS:        "linux",
		Arch:      "amd64",
	}

	out := info.String()
	assert.Contains(t, out, "shoptui v1.2.3")
	assert.Contains(t, out, "Commit: abcdef1")
	assert.Contains(t, out, "go1.26.0 linux/amd64")
}

func TestFillFromModule(t *testing.T) {
	tests := []struct {
		name       string
		mainVer    string
		settings   []debug.BuildSetting
		wantVer    string
		wantCommit string
		wantDate   string
	}{
		{
			name:       "tagged module with vcs",
			mainVer:    "v0.4.0",
			settings:   []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}, {Key: "vcs.time", Value: "2026-03-01T00:00:00Z"}},
			wantVer:    "0.4.0",
			wantCommit: "0123456",
			wantDate:   "2026-03-01T00:00:00Z",
		},
		{
			name:       "devel build keeps dev",
			mainVer:    "(devel)",
			wantVer:    "dev",
			wantCommit: unknown,
			wantDate:   unknown,
		},
		{
			name:       "short revision ignored",
			mainVer:    "",
			settings:   []debug.BuildSetting{{Key: "vcs.revision", Value: "abc"}},
			wantVer:    "dev",
			wantCommit: unknown,
			wantDate:   unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := &BuildInfo{Version: "dev", Commit: unknown, BuildDate: unknown}
			fillFromModule(info, &debug.BuildInfo{Main: debug.Module{Version: tt.mainVer}, Settings: tt.settings})

			assert.Equal(t, tt.wantVer, info.Version)
			assert.Equal(t, tt.wantCommit, info.Commit)
			assert.Equal(t, tt.wantDate, info.BuildDate)
		})
	}
}
