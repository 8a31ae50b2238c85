package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info describes the running build.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Get returns build information for the running binary.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Full returns a one-line description such as "v0.3.0 (a1b2c3d) 2024-05-01".
func Full() string {
	i := Get()
	return fmt.Sprintf("%s (%s) %s", i.Version, i.Commit, i.Date)
}

func Short() string {
	return Version
}

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		backfill(info)
	}
}

// backfill fills any field still at its ldflags default from build info, so
// `go install` builds report a real version. ldflags values always win.
func backfill(info *debug.BuildInfo) {
	if info == nil {
		return
	}

	// "(devel)" means built from an untagged checkout.
	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}
	if rev := settings["vcs.revision"]; Commit == "none" && rev != "" {
		if len(rev) > 7 {
			rev = rev[:7]
		}
		if settings["vcs.modified"] == "true" {
			rev += "-dirty"
		}
		Commit = rev
	}
	if ts := settings["vcs.time"]; Date == "unknown" && ts != "" {
		Date = ts
	}
}
