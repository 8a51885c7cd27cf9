// Package tui implements the terminal version of the calculator form.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iliyamo/bmi-calculator/internal/bmi"
	"github.com/iliyamo/bmi-calculator/internal/form"
)

const (
	fieldName = iota
	fieldAge
	fieldWeight
	fieldHeight
	fieldCount
)

var labels = [fieldCount]string{"Name", "Age", "Weight (kg)", "Height (cm)"}

// Model is the bubbletea model of the form.  Results are recomputed only
// when the user submits, never on keystrokes.
type Model struct {
	inputs    [fieldCount]textinput.Model
	focus     int
	evaluator *bmi.Evaluator
	styles    Styles

	// OnEvaluate, when set, is called after each successful evaluation.
	OnEvaluate func(bmi.Result)

	result *bmi.Result
	err    string
	evals  int
}

// New creates a form bound to ev.
func New(ev *bmi.Evaluator) Model {
	m := Model{evaluator: ev, styles: DefaultStyles()}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.CharLimit = 64
		ti.Width = 30
		switch i {
		case fieldAge:
			ti.Placeholder = "0"
			ti.CharLimit = 3
		case fieldWeight, fieldHeight:
			ti.Placeholder = "0.0"
		}
		m.inputs[i] = ti
	}
	m.inputs[fieldName].Focus()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			return m.setFocus(m.focus + 1)
		case "shift+tab", "up":
			return m.setFocus(m.focus - 1)
		case "ctrl+s":
			m.submit()
			return m, nil
		case "enter":
			if m.focus == fieldHeight {
				m.submit()
				return m, nil
			}
			return m.setFocus(m.focus + 1)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) setFocus(i int) (tea.Model, tea.Cmd) {
	i = (i + fieldCount) % fieldCount
	m.inputs[m.focus].Blur()
	m.focus = i
	return m, m.inputs[i].Focus()
}

// submit evaluates the current field values once.
func (m *Model) submit() {
	m.evals++
	m.result = nil
	m.err = ""

	in, err := form.Parse(
		m.inputs[fieldName].Value(),
		m.inputs[fieldAge].Value(),
		m.inputs[fieldWeight].Value(),
		m.inputs[fieldHeight].Value(),
	)
	if err != nil {
		m.err = err.Error()
		return
	}
	res, err := m.evaluator.EvaluateInput(in.Name, in.Age, in.Weight, in.Height)
	if err != nil {
		m.err = err.Error()
		return
	}
	m.result = &res
	if m.OnEvaluate != nil {
		m.OnEvaluate(res)
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("BMI Calculator"))
	b.WriteString("\n")
	for i, in := range m.inputs {
		label := m.styles.Label
		if i == m.focus {
			label = m.styles.Focused
		}
		b.WriteString(label.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	switch {
	case m.err != "":
		b.WriteString(m.styles.Error.Render(m.err))
		b.WriteString("\n")
	case m.result != nil:
		r := m.result
		b.WriteString(m.styles.Success.Render(fmt.Sprintf("%s, your BMI is: %s", r.Name, r.Display())))
		b.WriteString("\n")
		b.WriteString(m.styles.For(r.Category.Severity()).Render(r.Category.Message()))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("tab: next field • enter on height / ctrl+s: calculate • esc: quit"))
	return b.String()
}

// Result returns the last successful evaluation, if any.
func (m Model) Result() (bmi.Result, bool) {
	if m.result == nil {
		return bmi.Result{}, false
	}
	return *m.result, true
}

// Err returns the message of the last failed submission.
func (m Model) Err() string { return m.err }

// Run starts the program on the terminal and blocks until the user quits.
func Run(ev *bmi.Evaluator, onEvaluate func(bmi.Result)) error {
	m := New(ev)
	m.OnEvaluate = onEvaluate
	_, err := tea.NewProgram(m).Run()
	return err
}
