// Package build describes the binary: version and provenance stamped in by
// the linker.
package build

import "strings"

// RepoURL is where tessera is developed.
const RepoURL = "https://github.com/bnema/tessera"

const unknown = "unknown"

// Info is filled from -ldflags at link time; zero fields read as unknown.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// IsRelease reports whether the binary was built from a tagged version.
func (i Info) IsRelease() bool {
	return strings.HasPrefix(i.Version, "v")
}

// ShortCommit is the first seven characters of the commit hash.
func (i Info) ShortCommit() string {
	if i.Commit == "" || i.Commit == unknown {
		return unknown
	}
	if len(i.Commit) > 7 {
		return i.Commit[:7]
	}
	return i.Commit
}

// Short renders "v1.2.0 (abc1234)", or just the version when the commit is
// not known.
func (i Info) Short() string {
	version := i.Version
	if version == "" {
		version = "dev"
	}
	if commit := i.ShortCommit(); commit != unknown {
		return version + " (" + commit + ")"
	}
	return version
}
