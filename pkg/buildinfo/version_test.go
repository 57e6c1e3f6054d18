package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func stubBuildInfo(t *testing.T, bi *debug.BuildInfo) {
	t.Helper()
	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
	t.Cleanup(func() { readBuildInfo = orig })
}

func TestGet(t *testing.T) {
	tests := []struct {
		name    string
		version string
		bi      *debug.BuildInfo
		want    Info
	}{
		{
			name:    "no build info",
			version: "dev",
			want:    Info{Version: "dev", Commit: "none", Date: "unknown"},
		},
		{
			name:    "module version fallback",
			version: "dev",
			bi: &debug.BuildInfo{
				Main: debug.Module{Version: "v0.3.1"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef0123"},
					{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
				},
			},
			want: Info{Version: "v0.3.1", Commit: "0123456789ab", Date: "2026-10-01T12:00:00Z"},
		},
		{
			name:    "devel module keeps dev",
			version: "dev",
			bi:      &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want:    Info{Version: "dev", Commit: "none", Date: "unknown"},
		},
		{
			name:    "ldflags win",
			version: "v1.0.0",
			bi:      &debug.BuildInfo{Main: debug.Module{Version: "v0.9.0"}},
			want:    Info{Version: "v1.0.0", Commit: "none", Date: "unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubBuildInfo(t, tt.bi)
			orig := Version
			Version = tt.version
			t.Cleanup(func() { Version = orig })

			if got := Get(); got != tt.want {
				t.Errorf("Get() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTemplate(t *testing.T) {
	stubBuildInfo(t, nil)
	got := Template()
	if !strings.HasPrefix(got, "{{.Name}} version ") {
		t.Errorf("Template() = %q", got)
	}
	if !strings.Contains(String(), "commit: none") {
		t.Errorf("String() = %q", String())
	}
}
