// Package settings holds build metadata and the per-invocation settings of
// the pagingmenu CLI, plus helpers to carry them in a context.
package settings

// CliBinaryName is the canonical binary name.
const CliBinaryName = "pagingmenu"

// VersionInformation is set at build time via ldflags.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo describes the running binary.
type VersionInfo struct {
	Commit       string `json:"commit" yaml:"commit"`
	BuildVersion string `json:"version" yaml:"version"`
	BuildTime    string `json:"buildTime" yaml:"buildTime"`
}

// Run holds the settings of one CLI invocation.
type Run struct {
	MinLogLevel int8
	// LogFile receives log lines while the TUI owns the terminal. Empty
	// discards them in interactive mode and writes to stderr otherwise.
	LogFile  string
	NoColor  bool
	Snapshot bool
}

// Interactive reports whether the invocation takes over the terminal.
func (r *Run) Interactive() bool {
	return !r.Snapshot
}

// NewCliParams returns the defaults used by the CLI.
func NewCliParams() *Run {
	return &Run{}
}
