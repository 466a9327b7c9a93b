package report

import "testing"

func TestBlock(t *testing.T) {
	got := Block("FSL", "Path: /usr/local/fsl/bin", "Version: 6.0.7")
	want := "FSL:\n    Path: /usr/local/fsl/bin\n    Version: 6.0.7"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBlock_DropsEmptyLines(t *testing.T) {
	got := Block("ciftify", "Path: /opt/ciftify", "", "")
	want := "ciftify:\n    Path: /opt/ciftify"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"6.0.7\n", "6.0.7"},
		{"6.0.7\r\n", "6.0.7"},
		{"  freesurfer-v6.0.0\n\n", "freesurfer-v6.0.0"},
		{"already clean", "already clean"},
	}
	for _, tt := range tests {
		if got := Clean(tt.in); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
