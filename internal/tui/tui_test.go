package tui

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/podcast-tagger/internal/progress"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		resp          string
		want          []int
		wantCancelled bool
		wantWarnings  int
	}{
		{"no", nil, true, 0},
		{" NO ", nil, true, 0},
		{"", []int{0, 1, 2}, false, 0},
		{"all", []int{0, 1, 2}, false, 0},
		{"2", []int{2}, false, 0},
		{"2, 0", []int{2, 0}, false, 0},
		{"1,x,0", []int{1, 0}, false, 1},
		{"1,7,-1", []int{1}, false, 2},
		{"1,1", []int{1}, false, 0},
		{"abc", nil, false, 1},
	}

	for _, tt := range tests {
		got, cancelled, warnings := ParseSelection(tt.resp, 3)
		if !reflect.DeepEqual(got, tt.want) || cancelled != tt.wantCancelled || len(warnings) != tt.wantWarnings {
			t.Errorf("ParseSelection(%q) = %v, %v, %v; want %v, %v, %d warnings",
				tt.resp, got, cancelled, warnings, tt.want, tt.wantCancelled, tt.wantWarnings)
		}
	}
}

func TestScriptedPrompter(t *testing.T) {
	p := &ScriptedPrompter{Answers: []string{"", "n", "Bach", "", "maybe"}}

	if ok, err := p.Confirm("Work on directory?", true); err != nil || !ok {
		t.Errorf("Confirm default = %v, %v", ok, err)
	}
	if ok, err := p.Confirm("Update file?", true); err != nil || ok {
		t.Errorf("Confirm n = %v, %v", ok, err)
	}
	if got, err := p.Ask("Artist?", ""); err != nil || got != "Bach" {
		t.Errorf("Ask = %q, %v", got, err)
	}
	if got, err := p.Ask("Album?", "Partitas"); err != nil || got != "Partitas" {
		t.Errorf("Ask default = %q, %v", got, err)
	}
	if _, err := p.Confirm("Really?", false); err == nil {
		t.Error("expected error for unrecognized answer")
	}
	if _, err := p.Ask("More?", ""); !errors.Is(err, ErrNoMoreAnswers) {
		t.Errorf("exhausted error = %v", err)
	}
	if len(p.Questions) != 6 || p.Questions[2] != "Artist?" {
		t.Errorf("Questions = %v", p.Questions)
	}
}

func TestPromptModel(t *testing.T) {
	var m tea.Model = newPromptModel("Artist?")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Bach")})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	pm := m.(promptModel)
	if !pm.done || pm.aborted {
		t.Fatalf("done = %v, aborted = %v", pm.done, pm.aborted)
	}
	if pm.input.Value() != "Bach" {
		t.Errorf("value = %q, want Bach", pm.input.Value())
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
	if !strings.Contains(pm.View(), "Bach") {
		t.Errorf("View() = %q", pm.View())
	}

	m, _ = newPromptModel("Artist?").Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.(promptModel).aborted {
		t.Error("ctrl+c should abort")
	}
}

func TestParseYesNo(t *testing.T) {
	tests := []struct {
		answer string
		def    bool
		want   bool
		ok     bool
	}{
		{"", true, true, true},
		{"", false, false, true},
		{"Y", false, true, true},
		{"yes", false, true, true},
		{"No", true, false, true},
		{"sure", true, false, false},
	}
	for _, tt := range tests {
		got, ok := parseYesNo(tt.answer, tt.def)
		if got != tt.want || ok != tt.ok {
			t.Errorf("parseYesNo(%q, %v) = %v, %v", tt.answer, tt.def, got, ok)
		}
	}
}

func TestReporter_VerboseFilter(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)
	report := r.Func()

	report.Emit(progress.LevelVerbose, "hidden detail")
	report.Emit(progress.LevelWarning, "Ignoring %s", "x.mp3")
	report.Step(progress.LevelSuccess, 1, 2, "Downloaded: a.mp3")

	out := buf.String()
	if strings.Contains(out, "hidden detail") {
		t.Error("verbose event printed without verbose mode")
	}
	for _, want := range []string{"Ignoring x.mp3", "Downloaded: a.mp3", "1/2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	NewReporter(&buf, true).Handle(progress.Event{Message: "hidden detail", Level: progress.LevelVerbose})
	if !strings.Contains(buf.String(), "hidden detail") {
		t.Error("verbose event dropped in verbose mode")
	}
}

func TestReporter_List(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, false).List("Found the following podcasts:", []string{"One", "Two"})
	out := buf.String()
	if !strings.Contains(out, "[0] One") || !strings.Contains(out, "[1] Two") {
		t.Errorf("List output = %q", out)
	}
}

func TestBytes(t *testing.T) {
	if got := Bytes(1500000); got != "1.5 MB" {
		t.Errorf("Bytes() = %q, want 1.5 MB", got)
	}
	if got := Bytes(-1); got != "0 B" {
		t.Errorf("Bytes(-1) = %q", got)
	}
}
