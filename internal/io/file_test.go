package ioutils

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEscapeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Episode: Q&A #1", "Episode_ Q_A _1"},
		{"plain-name_1.0", "plain-name_1.0"},
		{"a/b\\c", "a_b_c"},
		{"Café", "Caf_"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := EscapeFileName(tt.input); got != tt.want {
				t.Errorf("EscapeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDownloadPaths(t *testing.T) {
	p := NewDownloadPaths("/pods/show", "Pilot", ".inprogress", ".mp3")

	if p.InProgress != filepath.Join("/pods/show", "Pilot.inprogress.mp3") {
		t.Errorf("InProgress = %q", p.InProgress)
	}
	if p.Final != filepath.Join("/pods/show", "Pilot.mp3") {
		t.Errorf("Final = %q", p.Final)
	}
	if !IsInProgress(filepath.Base(p.InProgress), ".inprogress", ".mp3") {
		t.Error("IsInProgress should match the in-progress name")
	}
	if IsInProgress(filepath.Base(p.Final), ".inprogress", ".mp3") {
		t.Error("IsInProgress should not match the final name")
	}
}

func TestPublish(t *testing.T) {
	dir := t.TempDir()
	p := NewDownloadPaths(dir, "ep", ".inprogress", ".mp3")

	if err := os.WriteFile(p.InProgress, []byte("audio"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Publish(p); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	if _, err := os.Stat(p.InProgress); !os.IsNotExist(err) {
		t.Errorf("in-progress file should be gone, stat err = %v", err)
	}
	data, err := os.ReadFile(p.Final)
	if err != nil || string(data) != "audio" {
		t.Errorf("final file = %q, %v", data, err)
	}
}

func TestListFilesAndDirs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.mp3", "a.mp3"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.MkdirAll(filepath.Join(dir, "sub", "deeper"), 0755); err != nil {
		t.Fatal(err)
	}

	files, err := ListFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(files, []string{"a.mp3", "b.mp3"}) {
		t.Errorf("ListFiles() = %v", files)
	}

	dirs, err := ListDirs(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(dirs, []string{"sub"}) {
		t.Errorf("ListDirs() = %v", dirs)
	}
}
