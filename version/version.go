package version

import (
	"fmt"
	"runtime/debug"
)

const devel = "(devel)"

var readBuildInfo = debug.ReadBuildInfo

// Module returns the version of the main module, or fallback for development builds.
func Module(fallback string) string {
	info, ok := readBuildInfo()
	if !ok || info.Main.Version == "" || info.Main.Version == devel {
		return fallback
	}

	return info.Main.Version
}

// FromBuildInfo describes the binary for the --version flag.
func FromBuildInfo() (version string) {
	version = "librarian " + Module(devel)

	info, ok := readBuildInfo()
	if !ok {
		return version
	}

	var vcs, revision, ts string

	for i := range info.Settings {
		switch info.Settings[i].Key {
		case "vcs":
			vcs = info.Settings[i].Value
		case "vcs.revision":
			revision = info.Settings[i].Value
		case "vcs.time":
			ts = info.Settings[i].Value
		default:
			continue
		}
	}

	if revision == "" {
		return version
	}

	if ts == "" {
		return fmt.Sprintf("%s, built from %s revision %s", version, vcs, revision)
	}

	return fmt.Sprintf("%s, built from %s revision %s at %s", version, vcs, revision, ts)
}
