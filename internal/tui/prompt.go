package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrAborted is returned when the user abandons a prompt with ctrl+c or esc.
var ErrAborted = errors.New("prompt aborted")

// ErrNoMoreAnswers is returned by a ScriptedPrompter that ran out of answers.
var ErrNoMoreAnswers = errors.New("no scripted answers left")

// Prompter asks the user questions.
type Prompter interface {
	// Confirm asks a yes/no question. An empty answer selects def.
	Confirm(question string, def bool) (bool, error)
	// Ask asks for free text. An empty answer selects def.
	Ask(question, def string) (string, error)
}

// TerminalPrompter asks questions with an inline Bubble Tea text input.
type TerminalPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewTerminalPrompter creates a prompter reading from in and drawing to out.
// Nil streams fall back to the process's stdin and stdout.
func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{in: in, out: out}
}

// Confirm implements Prompter. Unrecognized answers repeat the question.
func (p *TerminalPrompter) Confirm(question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	for {
		answer, err := p.run(question + " " + hint)
		if err != nil {
			return false, err
		}
		if v, ok := parseYesNo(answer, def); ok {
			return v, nil
		}
	}
}

// Ask implements Prompter.
func (p *TerminalPrompter) Ask(question, def string) (string, error) {
	answer, err := p.run(question)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (p *TerminalPrompter) run(question string) (string, error) {
	var opts []tea.ProgramOption
	if p.in != nil {
		opts = append(opts, tea.WithInput(p.in))
	}
	if p.out != nil {
		opts = append(opts, tea.WithOutput(p.out))
	}

	final, err := tea.NewProgram(newPromptModel(question), opts...).Run()
	if err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}
	m := final.(promptModel)
	if m.aborted {
		return "", ErrAborted
	}
	return strings.TrimSpace(m.input.Value()), nil
}

// promptModel is a single-line question answered with enter.
type promptModel struct {
	question string
	input    textinput.Model
	done     bool
	aborted  bool
}

func newPromptModel(question string) promptModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 500
	ti.Width = 60
	ti.Focus()
	return promptModel{question: question, input: ti}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	q := questionStyle.Render(m.question)
	switch {
	case m.aborted:
		return q + " " + dimStyle.Render("(aborted)") + "\n"
	case m.done:
		return q + " " + m.input.Value() + "\n"
	}
	return q + "\n" + m.input.View() + "\n"
}

// ScriptedPrompter replays a fixed sequence of answers and records the
// questions it was asked.
type ScriptedPrompter struct {
	Answers   []string
	Questions []string
}

// Confirm implements Prompter.
func (p *ScriptedPrompter) Confirm(question string, def bool) (bool, error) {
	answer, err := p.next(question)
	if err != nil {
		return false, err
	}
	v, ok := parseYesNo(answer, def)
	if !ok {
		return false, fmt.Errorf("scripted answer %q to %q is not yes or no", answer, question)
	}
	return v, nil
}

// Ask implements Prompter.
func (p *ScriptedPrompter) Ask(question, def string) (string, error) {
	answer, err := p.next(question)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (p *ScriptedPrompter) next(question string) (string, error) {
	p.Questions = append(p.Questions, question)
	if len(p.Answers) == 0 {
		return "", fmt.Errorf("%q: %w", question, ErrNoMoreAnswers)
	}
	answer := p.Answers[0]
	p.Answers = p.Answers[1:]
	return strings.TrimSpace(answer), nil
}

func parseYesNo(answer string, def bool) (value, ok bool) {
	switch strings.ToLower(answer) {
	case "":
		return def, true
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}
