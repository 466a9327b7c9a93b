package env

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"ciftify/internal/testutil"
)

func testResolver(paths, vars map[string]string, base string) *Resolver {
	return &Resolver{
		Getenv: func(k string) string { return vars[k] },
		LookPath: func(f string) (string, error) {
			if p, ok := paths[f]; ok {
				return p, nil
			}
			return "", errors.New("executable file not found in $PATH")
		},
		BaseDir: base,
	}
}

func TestLocate(t *testing.T) {
	r := testResolver(map[string]string{
		"wb_command": "/usr/local/workbench/bin/wb_command",
	}, nil, "/opt/ciftify")

	path, ok := r.Locate("wb_command")
	if !ok {
		t.Fatal("expected wb_command to be found")
	}
	if filepath.Base(path) != "wb_command" {
		t.Errorf("unexpected path: %q", path)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("expected absolute path, got %q", path)
	}

	if _, ok := r.Locate("recon-all"); ok {
		t.Error("expected recon-all to be absent")
	}

	// repeated calls with unchanged state return identical results
	again, ok2 := r.Locate("wb_command")
	if !ok2 || again != path {
		t.Errorf("expected idempotent lookup, got %q then %q", path, again)
	}
}

func TestLocateBinDir(t *testing.T) {
	r := testResolver(map[string]string{
		"fsl": "/usr/local/fsl/bin/fsl",
	}, nil, "/opt/ciftify")

	dir, ok := r.LocateBinDir("fsl")
	if !ok {
		t.Fatal("expected fsl to be found")
	}
	if dir != "/usr/local/fsl/bin" {
		t.Errorf("unexpected bin dir: %q", dir)
	}

	if _, ok := r.LocateBinDir("missing"); ok {
		t.Error("expected absence for unknown command")
	}
}

func TestResolveDir_OverrideVerbatim(t *testing.T) {
	// The override is returned as-is even when it does not exist on disk.
	r := testResolver(nil, map[string]string{
		CiftifyDataVar: "/no/such/dir/anywhere",
	}, "/opt/ciftify")

	if got := r.GlobalData(); got != "/no/such/dir/anywhere" {
		t.Errorf("expected override verbatim, got %q", got)
	}
}

func TestResolveDir_PackagedDefault(t *testing.T) {
	r := testResolver(nil, nil, "/opt/ciftify")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"scene templates", r.SceneTemplates(), "/opt/ciftify/data/scene_templates"},
		{"global data", r.GlobalData(), "/opt/ciftify/data"},
		{"s900 group average", r.HCPS900GroupAvg(), "/opt/ciftify/data/HCP_S900_GroupAvg_v1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
			if !filepath.IsAbs(tt.got) {
				t.Errorf("expected absolute path, got %q", tt.got)
			}
		})
	}
}

func TestResolveDir_EmptyOverrideFallsBack(t *testing.T) {
	r := testResolver(nil, map[string]string{SceneTemplatesVar: ""}, "/opt/ciftify")
	if got := r.SceneTemplates(); !strings.HasSuffix(got, filepath.FromSlash("data/scene_templates")) {
		t.Errorf("expected packaged default suffix, got %q", got)
	}
}

func TestFromEnv(t *testing.T) {
	r := testResolver(nil, map[string]string{
		SubjectsDirVar: "/archive/freesurfer/subjects",
	}, "/opt/ciftify")

	subjects, ok := r.SubjectsDir()
	if !ok || subjects != "/archive/freesurfer/subjects" {
		t.Errorf("unexpected SUBJECTS_DIR: %q (ok=%v)", subjects, ok)
	}

	if hcp, ok := r.HCPData(); ok {
		t.Errorf("expected HCP_DATA to be absent, got %q", hcp)
	}
}

func TestDefault_UsesProcessEnvironment(t *testing.T) {
	testutil.SetEnv(t, CiftifyDataVar, "/scratch/ciftify-data")
	testutil.SetEnv(t, SceneTemplatesVar, "")

	r := Default()
	if got := r.GlobalData(); got != "/scratch/ciftify-data" {
		t.Errorf("expected env override, got %q", got)
	}
	templates := r.SceneTemplates()
	if !filepath.IsAbs(templates) {
		t.Errorf("expected absolute packaged default, got %q", templates)
	}
	if !strings.HasSuffix(templates, filepath.FromSlash("data/scene_templates")) {
		t.Errorf("expected packaged default suffix, got %q", templates)
	}
}
