package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/travel-weather/internal/analysis"
	"github.com/ngmaloney/travel-weather/internal/travel"
)

// nopComparer fails the test if the pipeline is ever started
type nopComparer struct {
	t *testing.T
}

func (c nopComparer) Compare(ctx context.Context, req travel.Request) (*travel.Report, error) {
	c.t.Errorf("Compare(%+v) should not be called", req)
	return nil, nil
}

func typeText(m Model, text string) Model {
	for _, char := range text {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{char}}
		updatedModel, _ := m.Update(msg)
		m = updatedModel.(Model)
	}
	return m
}

func press(m Model, key tea.KeyType) (Model, tea.Cmd) {
	updatedModel, cmd := m.Update(tea.KeyMsg{Type: key})
	return updatedModel.(Model), cmd
}

func TestNewModel(t *testing.T) {
	m := NewModel(nopComparer{t}, Options{})

	if m.state != StateForm {
		t.Errorf("NewModel() state = %v, want StateForm", m.state)
	}
	if m.focus != fieldOrigin {
		t.Errorf("NewModel() focus = %v, want fieldOrigin", m.focus)
	}
	if !m.originInput.Focused() {
		t.Error("Expected origin input to be focused initially")
	}
	if m.days != travel.DefaultDays {
		t.Errorf("days = %d, want %d", m.days, travel.DefaultDays)
	}
	if !m.detailed {
		t.Error("detailed should default to true")
	}
	if analysis.Models[m.modelIndex] != analysis.DefaultModel {
		t.Errorf("model = %s, want %s", analysis.Models[m.modelIndex], analysis.DefaultModel)
	}
}

func TestNewModel_Options(t *testing.T) {
	m := NewModel(nopComparer{t}, Options{
		APIKey: "sk-or-env",
		Model:  "google/gemini-pro",
		Days:   5,
		Brief:  true,
	})

	if m.apiKeyInput.Value() != "sk-or-env" {
		t.Errorf("api key = %q", m.apiKeyInput.Value())
	}
	if analysis.Models[m.modelIndex] != "google/gemini-pro" {
		t.Errorf("model = %s", analysis.Models[m.modelIndex])
	}
	if m.days != 5 {
		t.Errorf("days = %d, want 5", m.days)
	}
	if m.detailed {
		t.Error("Brief should turn detailed off")
	}

	if NewModel(nopComparer{t}, Options{Days: 12}).days != travel.DefaultDays {
		t.Error("out of range days should fall back to the default")
	}
}

func TestModel_Update_WindowSize(t *testing.T) {
	m := NewModel(nopComparer{t}, Options{})

	updatedModel, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updatedModel.(Model)

	if m.width != 120 || m.height != 40 {
		t.Errorf("After WindowSizeMsg, size = %dx%d, want 120x40", m.width, m.height)
	}
}

func TestModel_CtrlC_Quits(t *testing.T) {
	m := NewModel(nopComparer{t}, Options{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("Expected Ctrl+C to return quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected Ctrl+C command to produce tea.QuitMsg")
	}
}

func TestTextInputHandling(t *testing.T) {
	m := NewModel(nopComparer{t}, Options{})

	m = typeText(m, "Paris")
	if m.originInput.Value() != "Paris" {
		t.Errorf("origin = %q, want Paris", m.originInput.Value())
	}

	// 'q' is text while typing an address, not a quit key
	m = typeText(m, "q")
	if m.originInput.Value() != "Parisq" {
		t.Errorf("origin = %q, want Parisq", m.originInput.Value())
	}

	m, _ = press(m, tea.KeyBackspace)
	if m.originInput.Value() != "Paris" {
		t.Errorf("origin after backspace = %q, want Paris", m.originInput.Value())
	}

	m, _ = press(m, tea.KeyTab)
	if m.focus != fieldDestination || !m.destinationInput.Focused() || m.originInput.Focused() {
		t.Fatalf("Tab should move focus to destination, focus = %v", m.focus)
	}

	m = typeText(m, "Rome")
	if m.destinationInput.Value() != "Rome" || m.originInput.Value() != "Paris" {
		t.Errorf("inputs = %q / %q", m.originInput.Value(), m.destinationInput.Value())
	}
}

func TestFocusCycle(t *testing.T) {
	m := NewModel(nopComparer{t}, Options{})

	m, _ = press(m, tea.KeyTab)
	m, _ = press(m, tea.KeyTab)
	if m.focus != fieldAPIKey {
		t.Fatalf("focus after wrapping = %v, want fieldAPIKey", m.focus)
	}
	if !m.apiKeyInput.Focused() {
		t.Error("api key input should be focused")
	}

	m, _ = press(m, tea.KeyShiftTab)
	if m.focus != fieldDestination {
		t.Errorf("Shift+Tab focus = %v, want fieldDestination", m.focus)
	}
}

func TestSettingsControls(t *testing.T) {
	m := NewModel(nopComparer{t}, Options{})
	m, _ = m.setFocusModel(fieldModel)

	m, _ = press(m, tea.KeyRight)
	if analysis.Models[m.modelIndex] != "anthropic/claude-3-opus" {
		t.Errorf("model after Right = %s", analysis.Models[m.modelIndex])
	}
	m, _ = press(m, tea.KeyLeft)
	m, _ = press(m, tea.KeyLeft)
	if analysis.Models[m.modelIndex] != "google/gemini-pro" {
		t.Errorf("model after wrapping Left = %s", analysis.Models[m.modelIndex])
	}

	m, _ = m.setFocusModel(fieldDays)
	for i := 0; i < 10; i++ {
		m, _ = press(m, tea.KeyRight)
	}
	if m.days != travel.MaxDays {
		t.Errorf("days = %d, want clamped to %d", m.days, travel.MaxDays)
	}
	for i := 0; i < 10; i++ {
		m, _ = press(m, tea.KeyLeft)
	}
	if m.days != travel.MinDays {
		t.Errorf("days = %d, want clamped to %d", m.days, travel.MinDays)
	}
	m = typeText(m, "5")
	if m.days != 5 {
		t.Errorf("days after typing 5 = %d", m.days)
	}
	m = typeText(m, "9")
	if m.days != 5 {
		t.Errorf("days after typing 9 = %d, want unchanged", m.days)
	}

	m, _ = m.setFocusModel(fieldDetailed)
	m = typeText(m, " ")
	if m.detailed {
		t.Error("Space should toggle detailed off")
	}
	m = typeText(m, " ")
	if !m.detailed {
		t.Error("Space should toggle detailed back on")
	}
}

func TestSubmit_BlankAddress(t *testing.T) {
	m := NewModel(nopComparer{t}, Options{APIKey: "sk-or-test"})
	m, _ = m.setFocusModel(fieldDestination)
	m = typeText(m, "Paris")

	m, cmd := press(m, tea.KeyEnter)

	if cmd != nil {
		t.Error("blank origin should not start any command")
	}
	if m.state != StateForm {
		t.Errorf("state = %v, want StateForm", m.state)
	}
	if m.warning != travel.MsgMissingInput {
		t.Errorf("warning = %q, want %q", m.warning, travel.MsgMissingInput)
	}

	m.width = 100
	if !strings.Contains(m.View(), travel.MsgMissingInput) {
		t.Error("warning should be rendered in the form")
	}

	// Typing clears the warning
	m = typeText(m, "!")
	if m.warning != "" {
		t.Errorf("warning = %q, want cleared", m.warning)
	}
}

func TestSubmit_EnterOnlyFromLastField(t *testing.T) {
	m := NewModel(nopComparer{t}, Options{APIKey: "sk-or-test"})
	m = typeText(m, "New York, NY")
	m, _ = m.setFocusModel(fieldAPIKey)

	for _, want := range []field{fieldModel, fieldDays, fieldDetailed, fieldOrigin, fieldDestination} {
		m, _ = press(m, tea.KeyEnter)
		if m.state != StateForm {
			t.Fatalf("Enter before the last field changed state to %v", m.state)
		}
		if m.focus != want {
			t.Errorf("focus = %v, want %v", m.focus, want)
		}
	}
}

func TestSubmit_CtrlS(t *testing.T) {
	var got travel.Request
	comparer := recordingComparer{req: &got}

	m := NewModel(comparer, Options{APIKey: "sk-or-test"})
	m = typeText(m, "New York, NY")
	m, _ = m.setFocusModel(fieldDestination)
	m = typeText(m, "Los Angeles, CA")
	m, _ = m.setFocusModel(fieldAPIKey)

	m, cmd := press(m, tea.KeyCtrlS)
	if m.state != StateLoading {
		t.Fatalf("state = %v, want StateLoading", m.state)
	}
	runCommand(t, cmd)

	if got.Origin != "New York, NY" || got.Destination != "Los Angeles, CA" || got.APIKey != "sk-or-test" {
		t.Errorf("request = %+v", got)
	}
}

// recordingComparer captures the request and returns an empty report
type recordingComparer struct {
	req *travel.Request
}

func (c recordingComparer) Compare(ctx context.Context, req travel.Request) (*travel.Report, error) {
	*c.req = req
	return &travel.Report{}, nil
}

func TestModel_View_States(t *testing.T) {
	tests := []struct {
		name  string
		state AppState
	}{
		{"form", StateForm},
		{"loading", StateLoading},
		{"display", StateDisplay},
		{"error", StateError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(nopComparer{t}, Options{})
			m.state = tt.state
			m.width = 80
			m.height = 24

			view := m.View()
			if view == "" {
				t.Errorf("View() returned empty string for state %v", tt.state)
			}
		})
	}
}

func TestModel_View_InitialLoading(t *testing.T) {
	m := NewModel(nopComparer{t}, Options{})

	if view := m.View(); view != "Loading..." {
		t.Errorf("View() before window size = %q, want 'Loading...'", view)
	}
}

func TestAppState_Constants(t *testing.T) {
	if StateForm != 0 {
		t.Errorf("StateForm = %d, want 0", StateForm)
	}
	if StateLoading != 1 {
		t.Errorf("StateLoading = %d, want 1", StateLoading)
	}
	if StateDisplay != 2 {
		t.Errorf("StateDisplay = %d, want 2", StateDisplay)
	}
	if StateError != 3 {
		t.Errorf("StateError = %d, want 3", StateError)
	}
}

// setFocusModel is setFocus with the concrete type, for tests
func (m Model) setFocusModel(f field) (Model, tea.Cmd) {
	updated, cmd := m.setFocus(f)
	return updated.(Model), cmd
}
