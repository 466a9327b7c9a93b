package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ciftify/internal/env"
	"ciftify/internal/report"
	"ciftify/internal/system"
)

// Reporter produces version reports for the external toolchains. Run is
// injectable so tests can substitute canned banner output instead of
// invoking the real tools.
type Reporter struct {
	Env *env.Resolver
	Run func(ctx context.Context, name string, args ...string) (string, error)
}

// New returns a Reporter backed by real process execution.
func New(r *env.Resolver) *Reporter {
	return &Reporter{Env: r, Run: runCmd}
}

// Version reports the installed version of one known tool. Absence of the
// tool itself is a *MissingToolError; missing version detail degrades to
// a "not found" line inside the report.
func (p *Reporter) Version(ctx context.Context, t Tool) (string, error) {
	switch t.ID {
	case ToolWorkbench:
		return p.WorkbenchVersion(ctx)
	case ToolFSL:
		return p.FSLVersion(ctx)
	case ToolFreesurfer:
		return p.FreesurferVersion(ctx)
	}
	return "", fmt.Errorf("unknown tool %q", t.ID)
}

// WorkbenchVersion reports the Connectome Workbench version by capturing
// the banner wb_command prints when run without arguments.
func (p *Reporter) WorkbenchVersion(ctx context.Context) (string, error) {
	path, ok := p.Env.Locate(Workbench.Command)
	if !ok {
		return "", &MissingToolError{Tool: Workbench}
	}
	out, err := p.Run(ctx, path)
	if err != nil && strings.TrimSpace(out) == "" {
		system.Logger.Warn("wb_command produced no banner output", "err", err)
		return report.Block(Workbench.Name,
			"Path: "+path,
			"wb_command version information not found."), nil
	}
	lines := append([]string{"Path: " + path}, workbenchBanner(out)...)
	return report.Block(Workbench.Name, lines...), nil
}

// FreesurferVersion reports the FreeSurfer build from the build-stamp.txt
// file shipped beside its bin/ directory.
func (p *Reporter) FreesurferVersion(ctx context.Context) (string, error) {
	binDir, ok := p.Env.LocateBinDir(Freesurfer.Command)
	if !ok {
		return "", &MissingToolError{Tool: Freesurfer}
	}
	stampPath := filepath.Join(filepath.Dir(binDir), "build-stamp.txt")
	stamp, err := os.ReadFile(stampPath)
	if err != nil {
		system.Logger.Warn("freesurfer build stamp unreadable", "path", stampPath, "err", err)
		return "freesurfer build information not found.", nil
	}
	return report.Block(Freesurfer.Name,
		"Path: "+binDir,
		"Build Stamp: "+report.Clean(string(stamp))), nil
}

// FSLVersion reports the FSL version from the etc/fslversion file shipped
// beside its bin/ directory.
func (p *Reporter) FSLVersion(ctx context.Context) (string, error) {
	binDir, ok := p.Env.LocateBinDir(FSL.Command)
	if !ok {
		return "", &MissingToolError{Tool: FSL}
	}
	versionPath := filepath.Join(filepath.Dir(binDir), "etc", "fslversion")
	version, err := os.ReadFile(versionPath)
	if err != nil {
		system.Logger.Warn("FSL version file unreadable", "path", versionPath, "err", err)
		return "FSL build information not found.", nil
	}
	return report.Block(FSL.Name,
		"Path: "+binDir,
		"Version: "+report.Clean(string(version))), nil
}

// workbenchBanner keeps the identifying head of the wb_command banner.
// The banner format is owned by Workbench; only the first three lines
// carry version identity.
func workbenchBanner(out string) []string {
	lines := strings.Split(strings.ReplaceAll(out, "\r\n", "\n"), "\n")
	if len(lines) > 3 {
		lines = lines[:3]
	}
	kept := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimRight(l, " \t"); l != "" {
			kept = append(kept, l)
		}
	}
	return kept
}
