package main

import (
	_ "embed"
	"runtime/debug"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the module version when restbind was installed with
// `go install ...@version`, and "devel-<VERSION>[+<revision>]" otherwise.
func Version() string {
	info, _ := debug.ReadBuildInfo()
	return versionOf(strings.TrimSpace(embeddedVersion), info)
}

func versionOf(base string, info *debug.BuildInfo) string {
	if info == nil {
		return base
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return "devel-" + base + "+" + s.Value[:7]
		}
	}
	return "devel-" + base
}
