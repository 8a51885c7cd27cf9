package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/bmi-calculator/internal/bmi"
)

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func press(t *testing.T, m Model, k tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(Model), cmd
}

func fill(t *testing.T, m Model, name, age, weight, height string) Model {
	t.Helper()
	for i, v := range []string{name, age, weight, height} {
		m = typeText(t, m, v)
		if i < fieldHeight {
			m, _ = press(t, m, tea.KeyTab)
		}
	}
	return m
}

func TestSubmitOnEnterInLastField(t *testing.T) {
	var published []bmi.Result
	m := New(bmi.NewEvaluator())
	m.OnEvaluate = func(r bmi.Result) { published = append(published, r) }

	m = fill(t, m, "Ada", "36", "70", "175")
	require.Equal(t, fieldHeight, m.focus)

	_, ok := m.Result()
	assert.False(t, ok, "typing must not evaluate")

	m, _ = press(t, m, tea.KeyEnter)
	res, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, "Ada", res.Name)
	assert.Equal(t, "22.86", res.Display())
	assert.Equal(t, bmi.NormalWeight, res.Category)
	assert.Len(t, published, 1)
	assert.Equal(t, 1, m.evals)

	view := m.View()
	assert.Contains(t, view, "Ada, your BMI is: 22.86")
	assert.Contains(t, view, "You have a normal weight.")
}

func TestEnterMovesFocusBeforeLastField(t *testing.T) {
	m := New(bmi.NewEvaluator())
	m, _ = press(t, m, tea.KeyEnter)
	assert.Equal(t, fieldAge, m.focus)
	assert.Equal(t, 0, m.evals)

	m, _ = press(t, m, tea.KeyShiftTab)
	m, _ = press(t, m, tea.KeyShiftTab)
	assert.Equal(t, fieldHeight, m.focus)
}

func TestSubmitShowsValidationError(t *testing.T) {
	m := fill(t, New(bmi.NewEvaluator()), "Ada", "36", "-5", "170")
	m, _ = press(t, m, tea.KeyCtrlS)

	_, ok := m.Result()
	assert.False(t, ok)
	assert.Equal(t, "Weight cannot be negative", m.Err())
	assert.Contains(t, m.View(), "Weight cannot be negative")
	assert.NotContains(t, m.View(), "your BMI is")
}

func TestSubmitZeroHeight(t *testing.T) {
	m := fill(t, New(bmi.NewEvaluator()), "", "", "60", "0")
	m, _ = press(t, m, tea.KeyEnter)

	res, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, 0.0, res.BMI)
	assert.Equal(t, bmi.Underweight, res.Category)
}

func TestQuitKeys(t *testing.T) {
	m := New(bmi.NewEvaluator())
	_, cmd := press(t, m, tea.KeyEsc)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
