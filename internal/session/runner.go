package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"mentor-eval/internal/config"
	"mentor-eval/internal/evaluation"
	"mentor-eval/internal/gemini"
	"mentor-eval/internal/report"
	"mentor-eval/internal/resolver"
	"mentor-eval/internal/ui"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

var ErrNoSource = errors.New("please provide a video file to begin evaluation")

type State string

const (
	StateIdle      State = "idle"
	StateAnalyzing State = "analyzing"
	StateResult    State = "result"
	StateError     State = "error"
)

// Analyzer is what the session needs from the evaluation client.
type Analyzer interface {
	Analyze(ctx context.Context, in resolver.Input, apiKey string) (*evaluation.Result, error)
	Model() string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// BuildInput turns a path or URL typed by the user into a resolver input.
// The returned closer must be closed once the analysis has finished.
func BuildInput(source string) (resolver.Input, io.Closer, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return resolver.Input{}, nil, ErrNoSource
	}
	if resolver.LooksLikeURL(source) {
		return resolver.Input{URL: source}, nopCloser{}, nil
	}
	f, closer, err := resolver.OpenFile(source)
	if err != nil {
		return resolver.Input{}, nil, err
	}
	return resolver.Input{File: f}, closer, nil
}

// Analyze runs one evaluation of source with apiKey.
func Analyze(ctx context.Context, a Analyzer, source, apiKey string) (*evaluation.Result, error) {
	in, closer, err := BuildInput(source)
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	return a.Analyze(ctx, in, apiKey)
}

type Runner struct {
	cfg      *config.Config
	http     *http.Client
	logger   *slog.Logger
	analyzer Analyzer
	confirm  func(question string) bool

	apiKey string
	state  State
	last   *evaluation.Result
}

func NewRunner(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) *Runner {
	return &Runner{
		cfg:      cfg,
		http:     httpClient,
		logger:   logger,
		analyzer: gemini.NewEvaluator(cfg.GeminiModel, httpClient, logger),
		confirm:  ui.ConfirmYesNo,
		state:    StateIdle,
	}
}

func (r *Runner) setState(s State) {
	r.logger.Debug("session state", "from", r.state, "to", s)
	r.state = s
}

func (r *Runner) Run(ctx context.Context) error {
	ui.PrintWelcome(r.analyzer.Model())

	if err := r.promptKey(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			ui.PrintCancelled()
			return nil
		}
		return err
	}
	ui.PrintStatus("Enter a video path or URL to analyze. Type /help for commands.")
	pterm.Println()

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		input, ok := ui.ReadInput("Video: ", "session.mp4 or https://…")
		if !ok || ui.IsExitCommand(input) {
			ui.PrintFarewell()
			return nil
		}

		if cmd, isCmd := ui.ParseCommand(input); isCmd {
			done, err := r.handleCommand(cmd)
			if err != nil {
				return err
			}
			if done {
				ui.PrintFarewell()
				return nil
			}
			continue
		}

		r.analyze(ctx, input)
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// promptKey replaces the session key. An aborted prompt keeps the old one.
func (r *Runner) promptKey() error {
	key, err := ui.ReadAPIKey()
	if err != nil {
		return err
	}
	r.apiKey = key
	return nil
}

func spinnerText(source string) string {
	if resolver.LooksLikeURL(source) {
		return "Searching & evaluating URL..."
	}
	return "AI is watching & evaluating..."
}

func (r *Runner) analyze(ctx context.Context, source string) {
	r.setState(StateAnalyzing)
	spinner, _ := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start(spinnerText(source))
	res, err := Analyze(ctx, r.analyzer, source, r.apiKey)
	spinner.Stop()

	if err != nil {
		r.setState(StateError)
		ui.PrintError(err.Error())
		ui.PrintStatus("Try another video, or /key to change your API key.")
		pterm.Println()
		return
	}

	r.setState(StateResult)
	r.last = res
	ui.PrintResult(res)
	ui.PrintStatus("Use /export report.yaml to save it, or enter another video.")
	pterm.Println()
}

func (r *Runner) handleCommand(cmd ui.Command) (bool, error) {
	switch cmd.Name {
	case "/help":
		ui.PrintCommands()
	case "/new":
		r.last = nil
		r.setState(StateIdle)
		ui.PrintStatus("Ready for a new evaluation.")
	case "/key":
		if err := r.promptKey(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				ui.PrintCancelled()
				return false, nil
			}
			return false, err
		}
		r.last = nil
		r.setState(StateIdle)
	case "/model":
		model, err := ui.SelectModel(r.cfg.GeminiModel, config.GeminiModelOptions())
		if errors.Is(err, huh.ErrUserAborted) {
			ui.PrintCancelled()
			return false, nil
		}
		if err != nil {
			ui.PrintError(err.Error())
			return false, nil
		}
		r.switchModel(model)
	case "/export":
		r.export(cmd.Args)
	case "/clear":
		fmt.Print("\033[H\033[2J")
	case "/exit", "/quit":
		return true, nil
	default:
		ui.PrintError("Unknown command " + cmd.Name)
		ui.PrintCommands()
	}
	return false, nil
}

func (r *Runner) switchModel(model string) {
	if model == r.cfg.GeminiModel {
		return
	}
	r.cfg.GeminiModel = model
	r.analyzer = gemini.NewEvaluator(model, r.http, r.logger)
	if err := config.Save(r.cfg); err != nil {
		ui.PrintError("Could not save config: " + err.Error())
	}
	pterm.Success.Printfln("Using %s", model)
}

func (r *Runner) export(path string) {
	if r.last == nil {
		ui.PrintError("Nothing to export yet. Analyze a video first.")
		return
	}
	if path == "" {
		path = "report.yaml"
	}
	if _, err := os.Stat(path); err == nil && !r.confirm(path+" exists. Overwrite?") {
		ui.PrintCancelled()
		return
	}
	if err := report.Write(r.last, path); err != nil {
		ui.PrintError(err.Error())
		return
	}
	pterm.Success.Printfln("Report saved to %s", path)
}
