package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"mentor-eval/internal/config"
	"mentor-eval/internal/gemini"
	"mentor-eval/internal/report"
	"mentor-eval/internal/session"
	"mentor-eval/internal/ui"

	"github.com/charmbracelet/huh"
	"github.com/lmittmann/tint"
	"github.com/pterm/pterm"
)

var Version = "dev"

func usage() {
	fmt.Println("Usage:")
	fmt.Println("  mentoreval                              interactive session")
	fmt.Println("  mentoreval analyze [-o report.yaml] <video path or URL>")
	fmt.Println("  mentoreval config                       choose model and log level")
	fmt.Println("  mentoreval version")
}

func newLogger(cfg *config.Config) *slog.Logger {
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      cfg.SlogLevel(),
		TimeFormat: "15:04:05",
	}))
}

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Println("mentoreval version", Version)
			return
		case "config":
			if _, err := config.RunSetup(); err != nil {
				pterm.Error.Println(err.Error())
				os.Exit(1)
			}
			return
		case "help", "-h", "--help":
			usage()
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Println("Failed to load config: " + err.Error())
		os.Exit(1)
	}
	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	httpClient := &http.Client{}

	if len(os.Args) > 1 && os.Args[1] == "analyze" {
		if err := runAnalyze(ctx, cfg, httpClient, logger, os.Args[2:]); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
		return
	}
	if len(os.Args) > 1 {
		usage()
		os.Exit(2)
	}

	runner := session.NewRunner(cfg, httpClient, logger)
	if err := runner.Run(ctx); err != nil {
		if ctx.Err() != nil {
			pterm.Println()
			pterm.Println(pterm.Gray("Interrupted. Bye!"))
			os.Exit(0)
		}
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func runAnalyze(ctx context.Context, cfg *config.Config, httpClient *http.Client, logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	out := fs.String("o", "", "write the report to a .yaml or .json file")
	model := fs.String("model", cfg.GeminiModel, "Gemini model")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		usage()
		return fmt.Errorf("analyze takes exactly one video path or URL")
	}

	apiKey, err := ui.ReadAPIKey()
	if errors.Is(err, huh.ErrUserAborted) {
		ui.PrintCancelled()
		return nil
	}
	if err != nil {
		return err
	}

	evaluator := gemini.NewEvaluator(*model, httpClient, logger)
	spinner, _ := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start("Analyzing " + fs.Arg(0) + "...")
	res, err := session.Analyze(ctx, evaluator, fs.Arg(0), apiKey)
	spinner.Stop()
	if err != nil {
		return err
	}

	ui.PrintResult(res)
	if *out != "" {
		if err := report.Write(res, *out); err != nil {
			return err
		}
		pterm.Success.Printfln("Report saved to %s", *out)
	}
	return nil
}
