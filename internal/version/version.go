/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides version information for the tessera CLI.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version and Commit may be set at build time via ldflags. When unset they
// fall back to the module version and VCS stamp embedded by the go tool.
var (
	Version = "dev"
	Commit  = ""
)

// Build is what the binary knows about how it was built.
type Build struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"goVersion,omitempty"`
}

// Read collects build information.
func Read() Build {
	b := Build{Version: Version, Commit: Commit}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}
	b.GoVersion = info.GoVersion
	if b.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if b.Commit == "" {
				b.Commit = s.Value
			}
		case "vcs.modified":
			b.Modified = s.Value == "true"
		}
	}
	return b
}

// Get returns the version string for the application.
func Get() string {
	return Read().String()
}

// String renders the version, with a short commit and dirty marker for
// development builds.
func (b Build) String() string {
	v := b.Version
	if v == "dev" && b.Commit != "" {
		commit := b.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		v = fmt.Sprintf("dev-%s", commit)
	}
	if b.Modified {
		v += "-dirty"
	}
	return v
}
