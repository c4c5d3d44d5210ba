package ui

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

const apiKeyPrefix = "AIza"

type inputModel struct {
	textInput textinput.Model
	submitted bool
	cancelled bool
}

func newInputModel(prompt, placeholder string) inputModel {
	ti := textinput.New()
	ti.Prompt = pterm.Bold.Sprint(pterm.Cyan(prompt))
	ti.Placeholder = placeholder
	ti.Focus()
	ti.SetSuggestions(CommandNames())
	ti.ShowSuggestions = true
	return inputModel{textInput: ti}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	return m.textInput.View()
}

// ReadInput prompts for one line. ok is false when the user cancelled.
func ReadInput(prompt, placeholder string) (string, bool) {
	m := newInputModel(prompt, placeholder)
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return "", false
	}
	result := finalModel.(inputModel)
	if result.cancelled {
		return "", false
	}
	return strings.TrimSpace(result.textInput.Value()), true
}

func ConfirmYesNo(question string) bool {
	s := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("%s [Y/n]: ", pterm.Bold.Sprint(question))
		if !s.Scan() {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(s.Text()))
		switch answer {
		case "", "y", "yes":
			return true
		case "n", "no":
			return false
		}
	}
}

func IsExitCommand(input string) bool {
	lower := strings.ToLower(strings.TrimSpace(input))
	switch lower {
	case "exit", "quit", "/exit", "/quit":
		return true
	}
	return false
}

// ValidateAPIKey checks the shape of a Gemini API key without calling the API.
func ValidateAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("please enter your Gemini API key")
	}
	if !strings.HasPrefix(key, apiKeyPrefix) {
		return fmt.Errorf("invalid API key format: Gemini API keys start with %q", apiKeyPrefix)
	}
	return nil
}

// ReadAPIKey asks for the session's API key. The value stays in memory only.
func ReadAPIKey() (string, error) {
	var key string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Gemini API Key").
				Description("Used for this session only and never stored.").
				Placeholder(apiKeyPrefix+"...").
				EchoMode(huh.EchoModePassword).
				Value(&key).
				Validate(ValidateAPIKey),
		).Title("Secure Setup"),
	)
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("api key input: %w", err)
	}
	return strings.TrimSpace(key), nil
}

func SelectModel(current string, options []huh.Option[string]) (string, error) {
	model := current
	err := huh.NewSelect[string]().
		Title("Gemini Model").
		Options(options...).
		Value(&model).
		Run()
	if err != nil {
		return current, fmt.Errorf("model selection: %w", err)
	}
	return model, nil
}
