package system

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"ciftify/internal/env"
	"ciftify/internal/report"
)

// GitRunner runs a git subcommand inside dir and returns its combined
// output.
type GitRunner func(ctx context.Context, dir string, args ...string) (string, error)

// Introspector reports this install's own provenance: its path and, when
// the install is a git checkout, the latest commit identity.
type Introspector struct {
	Env *env.Resolver

	// Dir is the install directory inspected in default mode.
	Dir string

	// Run is injectable so tests can substitute canned git output.
	Run GitRunner
}

// NewIntrospector returns an Introspector rooted at the running
// executable's directory.
func NewIntrospector(r *env.Resolver) *Introspector {
	dir := "."
	if exe, err := os.Executable(); err == nil {
		dir = filepath.Dir(exe)
	} else if wd, werr := os.Getwd(); werr == nil {
		dir = wd
	}
	return &Introspector{Env: r, Dir: dir, Run: gitRun}
}

// Report renders the ciftify provenance report. With an empty component
// it covers the install directory; with a component name it first tries
// to resolve that name as a command and reports the commit history of
// that file as well. Report never fails: a missing component falls back
// to default mode with a warning, and a failed git query degrades to the
// install path alone.
func (in *Introspector) Report(ctx context.Context, component string) string {
	dir := in.Dir
	file := ""
	if component != "" {
		if path, ok := in.Env.Locate(component); ok {
			dir = filepath.Dir(path)
			file = filepath.Base(path)
		} else {
			Logger.Warn("cannot find ciftify component, reporting default version information",
				"component", component)
			component = ""
		}
	}

	out, err := in.Run(ctx, dir, "log", "-1")
	if err != nil {
		Logger.Error("could not read git history, returning ciftify path only",
			"dir", dir, "err", err)
		return report.Block("ciftify", "Path: "+dir)
	}
	commit, date := parseGitLog(out)
	info := report.Block("ciftify", "Path: "+dir, commit, date)

	if component == "" {
		return info
	}
	out, err = in.Run(ctx, dir, "log", "-1", "--follow", "--", file)
	if err != nil {
		Logger.Error("cannot retrieve commit history for component, returning ciftify commit info only",
			"component", component, "err", err)
		return info
	}
	commit, date = parseGitLog(out)
	return info + "\n" + report.Block("Last commit for "+component, commit, date)
}

// parseGitLog pulls the commit and date lines out of `git log -1` output.
func parseGitLog(out string) (commit, date string) {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case commit == "" && strings.HasPrefix(line, "commit "):
			commit = "Commit: " + strings.TrimPrefix(line, "commit ")
		case date == "" && strings.HasPrefix(line, "Date:"):
			date = line
		}
	}
	return commit, date
}

// gitRun executes git against a specific directory, in the same shape as
// `git -C dir <args>`.
func gitRun(ctx context.Context, dir string, args ...string) (string, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return "", err
	}
	full := append([]string{"-C", dir}, args...)
	out, err := exec.CommandContext(ctx, "git", full...).CombinedOutput()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
