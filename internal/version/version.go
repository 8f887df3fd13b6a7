// Package version holds build information for the decint CLI.
package version

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// These variables can be overridden at build time via -ldflags, e.g.
//
//	go build -ldflags "-X decint/internal/version.GitCommit=$(git rev-parse HEAD)"
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Info is the serialized build information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

// Current returns the build information of the running binary.
func Current() Info {
	return Info{Version: Version, GitCommit: GitCommit, BuildDate: BuildDate}
}

// Pretty writes the version line, colouring major, minor and patch
// components when colored is set, followed by commit and date if known.
func Pretty(w io.Writer, colored bool) error {
	info := Current()
	if _, err := fmt.Fprintf(w, "decint %s\n", colorize(info.Version, colored)); err != nil {
		return err
	}
	if info.GitCommit != "" {
		if _, err := fmt.Fprintf(w, "commit: %s\n", info.GitCommit); err != nil {
			return err
		}
	}
	if info.BuildDate != "" {
		if _, err := fmt.Fprintf(w, "built:  %s\n", info.BuildDate); err != nil {
			return err
		}
	}
	return nil
}

// colorize paints the first three dot-separated components of v.
func colorize(v string, enabled bool) string {
	palette := []*color.Color{
		color.New(color.FgYellow, color.Bold),
		color.New(color.FgGreen, color.Bold),
		color.New(color.FgBlue, color.Bold),
	}
	core, suffix, _ := strings.Cut(v, "-")
	parts := strings.SplitN(core, ".", 3)
	for i, p := range parts {
		c := palette[i]
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		parts[i] = c.Sprint(p)
	}
	out := strings.Join(parts, ".")
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}
