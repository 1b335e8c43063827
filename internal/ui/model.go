package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/travel-weather/internal/analysis"
	"github.com/ngmaloney/travel-weather/internal/travel"
)

// AppState represents the current state of the application
type AppState int

const (
	StateForm    AppState = iota // Collect addresses and settings
	StateLoading                 // Running the comparison
	StateDisplay                 // Show tables and analysis
	StateError                   // Geocode or forecast failure
)

// field identifies the focused form control
type field int

const (
	fieldAPIKey field = iota
	fieldModel
	fieldDays
	fieldDetailed
	fieldOrigin
	fieldDestination
	fieldCount
)

// Options seeds the form; the zero value gives the defaults
type Options struct {
	APIKey  string
	Model   string
	Days    int
	Brief   bool // start with the detailed tables turned off
	Timeout time.Duration
}

// Model represents the application's state
type Model struct {
	state   AppState
	width   int
	height  int
	err     error
	warning string

	// Form
	focus            field
	apiKeyInput      textinput.Model
	originInput      textinput.Model
	destinationInput textinput.Model
	modelIndex       int
	days             int
	detailed         bool

	// Pipeline
	planner travel.Comparer
	timeout time.Duration
	report  *travel.Report

	spinner spinner.Model
}

// NewModel creates a new application model
func NewModel(planner travel.Comparer, opts Options) Model {
	key := textinput.New()
	key.Placeholder = "sk-or-..."
	key.EchoMode = textinput.EchoPassword
	key.EchoCharacter = '•'
	key.CharLimit = 200
	key.Width = 40
	key.SetValue(opts.APIKey)

	origin := textinput.New()
	origin.Placeholder = "e.g., New York, NY"
	origin.CharLimit = 100
	origin.Width = 36

	destination := textinput.New()
	destination.Placeholder = "e.g., Los Angeles, CA"
	destination.CharLimit = 100
	destination.Width = 36

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	days := opts.Days
	if days < travel.MinDays || days > travel.MaxDays {
		days = travel.DefaultDays
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 90 * time.Second
	}

	m := Model{
		state:            StateForm,
		apiKeyInput:      key,
		originInput:      origin,
		destinationInput: destination,
		modelIndex:       modelIndex(opts.Model),
		days:             days,
		detailed:         !opts.Brief,
		planner:          planner,
		timeout:          timeout,
		spinner:          s,
	}
	m.focus = fieldOrigin
	m.originInput.Focus()
	return m
}

// modelIndex returns the position of model in analysis.Models, or 0
func modelIndex(model string) int {
	for i, name := range analysis.Models {
		if name == model {
			return i
		}
	}
	return 0
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window size
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	// Handle custom messages
	switch msg := msg.(type) {
	case comparisonMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = StateError
			return m, nil
		}
		m.report = msg.report
		m.state = StateDisplay
		return m, nil

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Handle keyboard input
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		// Global keys
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// State-specific handling
		switch m.state {
		case StateForm:
			return m.handleFormInput(keyMsg)

		case StateLoading:
			return m, nil

		case StateDisplay:
			switch keyMsg.String() {
			case "q":
				return m, tea.Quit
			case "n", "s", "esc":
				return m.backToForm()
			}
			return m, nil

		case StateError:
			if keyMsg.String() == "q" {
				return m, tea.Quit
			}
			// Any other key returns to the form with the inputs kept
			return m.backToForm()
		}
	}

	if m.state == StateForm {
		return m.updateFocusedInput(msg)
	}
	return m, nil
}

// handleFormInput handles keyboard input in form state
func (m Model) handleFormInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlS:
		return m.submit()
	case tea.KeyEnter:
		// Enter submits from the last field and advances from the others
		if m.focus == fieldDestination {
			return m.submit()
		}
		return m.setFocus(m.focus + 1)
	case tea.KeyTab, tea.KeyDown:
		return m.setFocus((m.focus + 1) % fieldCount)
	case tea.KeyShiftTab, tea.KeyUp:
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	}

	// Clear the warning when the user edits anything
	m.warning = ""

	switch m.focus {
	case fieldModel:
		n := len(analysis.Models)
		switch msg.Type {
		case tea.KeyLeft:
			m.modelIndex = (m.modelIndex + n - 1) % n
		case tea.KeyRight:
			m.modelIndex = (m.modelIndex + 1) % n
		}
		return m, nil

	case fieldDays:
		switch msg.Type {
		case tea.KeyLeft:
			if m.days > travel.MinDays {
				m.days--
			}
		case tea.KeyRight:
			if m.days < travel.MaxDays {
				m.days++
			}
		case tea.KeyRunes:
			if len(msg.Runes) == 1 {
				if d := int(msg.Runes[0] - '0'); d >= travel.MinDays && d <= travel.MaxDays {
					m.days = d
				}
			}
		}
		return m, nil

	case fieldDetailed:
		switch msg.String() {
		case " ", "x", "left", "right":
			m.detailed = !m.detailed
		}
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

// updateFocusedInput forwards a message to the focused text input
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fieldAPIKey:
		m.apiKeyInput, cmd = m.apiKeyInput.Update(msg)
	case fieldOrigin:
		m.originInput, cmd = m.originInput.Update(msg)
	case fieldDestination:
		m.destinationInput, cmd = m.destinationInput.Update(msg)
	}
	return m, cmd
}

// setFocus moves focus to f, blurring every text input first
func (m Model) setFocus(f field) (tea.Model, tea.Cmd) {
	m.focus = f
	m.apiKeyInput.Blur()
	m.originInput.Blur()
	m.destinationInput.Blur()

	switch f {
	case fieldAPIKey:
		return m, m.apiKeyInput.Focus()
	case fieldOrigin:
		return m, m.originInput.Focus()
	case fieldDestination:
		return m, m.destinationInput.Focus()
	}
	return m, nil
}

// request builds the pipeline request from the form
func (m Model) request() travel.Request {
	return travel.Request{
		Origin:      m.originInput.Value(),
		Destination: m.destinationInput.Value(),
		Days:        m.days,
		Model:       analysis.Models[m.modelIndex],
		Detailed:    m.detailed,
		APIKey:      m.apiKeyInput.Value(),
	}
}

// submit validates the form and starts the comparison
func (m Model) submit() (tea.Model, tea.Cmd) {
	req := m.request()
	if err := req.Validate(); err != nil {
		if errors.Is(err, travel.ErrMissingInput) {
			m.warning = travel.MsgMissingInput
		} else {
			m.warning = err.Error()
		}
		return m, nil
	}

	m.warning = ""
	m.err = nil
	m.report = nil
	m.state = StateLoading
	return m, tea.Batch(m.spinner.Tick, compareTrip(m.planner, req, m.timeout))
}

// backToForm returns to the form keeping what the user entered
func (m Model) backToForm() (tea.Model, tea.Cmd) {
	m.state = StateForm
	m.err = nil
	return m.setFocus(fieldOrigin)
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateForm:
		return m.viewForm()
	case StateLoading:
		return m.viewLoading()
	case StateDisplay:
		return m.viewDisplay()
	case StateError:
		return m.viewError()
	}

	return ""
}

// viewForm renders the input form
func (m Model) viewForm() string {
	title := titleStyle.Render("🌦️  Travel Weather Forecast")
	subtitle := mutedStyle.Render("Compare the weather at both ends of your trip")

	settings := lipgloss.JoinVertical(lipgloss.Left,
		m.renderField(fieldAPIKey, "OpenRouter API Key", m.apiKeyInput.View()),
		m.renderField(fieldModel, "AI Model", fmt.Sprintf("◀ %s ▶", analysis.Models[m.modelIndex])),
		m.renderField(fieldDays, "Forecast days", fmt.Sprintf("◀ %d ▶", m.days)),
		m.renderField(fieldDetailed, "Detailed forecast", checkbox(m.detailed)),
	)

	addresses := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderAddressBox(fieldOrigin, "Origin Address", m.originInput.View()),
		m.renderAddressBox(fieldDestination, "Destination Address", m.destinationInput.View()),
	)

	var sections []string
	sections = append(sections, title)
	sections = append(sections, subtitle)
	sections = append(sections, "")
	sections = append(sections, settings)
	sections = append(sections, "")
	sections = append(sections, addresses)

	if m.warning != "" {
		sections = append(sections, "")
		sections = append(sections, warningStyle.Render("⚠ "+m.warning))
	}

	help := helpStyle.Render("Tab/↑/↓: Move • ←/→: Change • Space: Toggle • Enter: Get Weather Forecast • Ctrl+C: Quit")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderField renders one settings row, highlighting the focused one
func (m Model) renderField(f field, label, value string) string {
	style := labelStyle
	cursor := "  "
	if m.focus == f {
		style = activeLabelStyle
		cursor = "› "
	}
	return cursor + style.Width(20).Render(label) + value
}

// renderAddressBox renders an address input inside a pane
func (m Model) renderAddressBox(f field, label, input string) string {
	style := paneStyle
	labelRender := labelStyle
	if m.focus == f {
		style = activePaneStyle
		labelRender = activeLabelStyle
	}
	return style.Width(40).Render(labelRender.Render(label) + "\n" + input)
}

func checkbox(on bool) string {
	if on {
		return successStyle.Render("[x]")
	}
	return "[ ]"
}

// viewLoading renders the loading view
func (m Model) viewLoading() string {
	status := fmt.Sprintf("Getting weather data for %s → %s...",
		m.originInput.Value(), m.destinationInput.Value())

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		fmt.Sprintf("%s %s", m.spinner.View(), status),
		"",
		mutedStyle.Render("Geocoding, fetching forecasts and generating AI analysis"),
	)
}

// viewDisplay renders the forecast tables and the analysis
func (m Model) viewDisplay() string {
	if m.report == nil {
		return "No forecast loaded"
	}

	var sections []string

	header := titleStyle.Render(fmt.Sprintf("🌦️  %s → %s", m.report.Origin.Address, m.report.Destination.Address))
	sub := mutedStyle.Render(fmt.Sprintf("%d-day forecast • %s", m.report.Days, m.report.Model))
	sections = append(sections, header, sub)

	if m.report.Detailed {
		sections = append(sections, "", m.renderSides())
	}

	sections = append(sections,
		sectionHeaderStyle.Render("🌍 Travel Weather Analysis"),
		m.renderAnalysis(),
	)

	help := helpStyle.Render("N: New comparison • Q: Quit")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorStyle.Render("✗ Error")

	var errorMsg string
	if m.err != nil {
		errorMsg = m.err.Error()
	} else {
		errorMsg = "An unknown error occurred"
	}

	help := helpStyle.Render("Press any key to return to the form • Q: Quit")

	var sections []string
	sections = append(sections, title)
	sections = append(sections, "")
	sections = append(sections, errorMsg)
	sections = append(sections, "")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
