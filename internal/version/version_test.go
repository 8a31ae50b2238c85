package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func withDefaults(t *testing.T) {
	t.Helper()
	v, c, d := Version, Commit, Date
	Version, Commit, Date = "dev", "none", "unknown"
	t.Cleanup(func() { Version, Commit, Date = v, c, d })
}

func TestFull(t *testing.T) {
	result := Full()
	if !strings.Contains(result, Version) || !strings.Contains(result, Commit) {
		t.Errorf("Full() = %q, want version %q and commit %q", result, Version, Commit)
	}
}

func TestShort(t *testing.T) {
	if Short() != Version {
		t.Errorf("Short() = %q, want %q", Short(), Version)
	}
}

func TestGet_Platform(t *testing.T) {
	i := Get()
	if !strings.Contains(i.Platform, "/") || !strings.HasPrefix(i.GoVersion, "go") {
		t.Errorf("Get() = %+v", i)
	}
}

func TestBackfill_TaggedBuild(t *testing.T) {
	withDefaults(t)
	backfill(&debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abcdef1234567890"},
			{Key: "vcs.time", Value: "2024-05-01T10:00:00Z"},
		},
	})
	if Version != "v1.2.3" || Commit != "abcdef1" || Date != "2024-05-01T10:00:00Z" {
		t.Errorf("got %s %s %s", Version, Commit, Date)
	}
}

func TestBackfill_DevelDirty(t *testing.T) {
	withDefaults(t)
	backfill(&debug.BuildInfo{
		Main: debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abcdef1234567890"},
			{Key: "vcs.modified", Value: "true"},
		},
	})
	if Version != "dev" {
		t.Errorf("Version = %q, want dev", Version)
	}
	if Commit != "abcdef1-dirty" {
		t.Errorf("Commit = %q", Commit)
	}
}

func TestBackfill_LdflagsWin(t *testing.T) {
	withDefaults(t)
	Version, Commit = "v9.9.9", "1234567"
	backfill(&debug.BuildInfo{
		Main:     debug.Module{Version: "v1.0.0"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "ffffffffff"}},
	})
	if Version != "v9.9.9" || Commit != "1234567" {
		t.Errorf("ldflags overwritten: %s %s", Version, Commit)
	}
}

func TestBackfill_Nil(t *testing.T) {
	withDefaults(t)
	backfill(nil)
	if Version != "dev" {
		t.Errorf("Version = %q", Version)
	}
}
