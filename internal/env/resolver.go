// Package env locates external toolchain executables and resolves the
// configuration/data directories used by the ciftify pipeline.
//
// Lookups never mutate process state. Absence of an optional tool or
// variable is an expected outcome and is reported as data (the ok bool),
// not as an error.
package env

import (
	"os"
	"os/exec"
	"path/filepath"
)

// Environment variables consumed by the pipeline.
const (
	SceneTemplatesVar = "HCP_SCENE_TEMPLATES"
	CiftifyDataVar    = "CIFTIFY_DATA"
	SubjectsDirVar    = "SUBJECTS_DIR"
	HCPDataVar        = "HCP_DATA"
)

// Packaged defaults, relative to the install root.
const (
	sceneTemplatesRel = "data/scene_templates"
	globalDataRel     = "data"

	// Bundled reference dataset shipped under the global data directory.
	s900GroupAvgDir = "HCP_S900_GroupAvg_v1"
)

// Resolver answers environment and PATH queries. The function fields
// exist so tests can substitute fake environments; production code uses
// Default().
type Resolver struct {
	Getenv   func(key string) string
	LookPath func(file string) (string, error)

	// BaseDir is the install root used to compute packaged data
	// defaults when no environment override is set.
	BaseDir string
}

// Default returns a Resolver backed by the real process environment and
// the directory containing the running executable.
func Default() *Resolver {
	return &Resolver{
		Getenv:   os.Getenv,
		LookPath: exec.LookPath,
		BaseDir:  installDir(),
	}
}

// installDir resolves the directory of the running binary, falling back
// to the working directory when the executable path is unavailable.
func installDir() string {
	if exe, err := os.Executable(); err == nil {
		return filepath.Dir(exe)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// Locate probes the search path for an executable and returns its
// absolute path. Any lookup failure means not found; Locate never
// returns an error.
func (r *Resolver) Locate(name string) (string, bool) {
	path, err := r.LookPath(name)
	if err != nil || path == "" {
		return "", false
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path, true
}

// LocateBinDir probes for an executable and returns the directory that
// contains it. Used for suites addressed by their bin/ folder (FSL,
// FreeSurfer).
func (r *Resolver) LocateBinDir(name string) (string, bool) {
	path, ok := r.Locate(name)
	if !ok {
		return "", false
	}
	return filepath.Dir(path), true
}

// ResolveDir returns the environment override verbatim when set to a
// non-empty value, otherwise the absolute path of the packaged default
// under BaseDir. The result is never checked for existence; a bad
// override surfaces at first use.
func (r *Resolver) ResolveDir(envVar, defaultRel string) string {
	if v := r.Getenv(envVar); v != "" {
		return v
	}
	p := filepath.Join(r.BaseDir, filepath.FromSlash(defaultRel))
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// FromEnv returns a purely environment-supplied path, with no packaged
// fallback.
func (r *Resolver) FromEnv(envVar string) (string, bool) {
	v := r.Getenv(envVar)
	return v, v != ""
}

// SceneTemplates returns the HCP scene template directory.
func (r *Resolver) SceneTemplates() string {
	return r.ResolveDir(SceneTemplatesVar, sceneTemplatesRel)
}

// GlobalData returns the directory holding ciftify's required config and
// support files.
func (r *Resolver) GlobalData() string {
	return r.ResolveDir(CiftifyDataVar, globalDataRel)
}

// HCPS900GroupAvg returns the bundled HCP S900 group average dataset
// under the global data directory.
func (r *Resolver) HCPS900GroupAvg() string {
	return filepath.Join(r.GlobalData(), s900GroupAvgDir)
}

// SubjectsDir returns the FreeSurfer subject data directory from the
// environment.
func (r *Resolver) SubjectsDir() (string, bool) {
	return r.FromEnv(SubjectsDirVar)
}

// HCPData returns the pipeline working-data directory from the
// environment.
func (r *Resolver) HCPData() (string, bool) {
	return r.FromEnv(HCPDataVar)
}
