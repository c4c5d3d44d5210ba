package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"mentor-eval/internal/evaluation"
	"mentor-eval/internal/resolver"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

var (
	ErrMissingCredential = errors.New("gemini API key is required: provide your API key to begin analysis")
	ErrNoResult          = errors.New("no analysis generated")
)

// ContentGenerator is the slice of the genai client the evaluator needs.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type generatorFactory func(ctx context.Context, apiKey string) (ContentGenerator, error)

func newGenAIGenerator(ctx context.Context, apiKey string) (ContentGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return client.Models, nil
}

// Evaluator turns a session video into a validated evaluation. It keeps no
// per-call state, so one Evaluator can serve concurrent calls.
type Evaluator struct {
	model        string
	http         *http.Client
	logger       *slog.Logger
	newGenerator generatorFactory
}

func NewEvaluator(model string, httpClient *http.Client, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Evaluator{
		model:        model,
		http:         httpClient,
		logger:       logger,
		newGenerator: newGenAIGenerator,
	}
}

func (e *Evaluator) Model() string {
	return e.model
}

// Analyze evaluates one video. apiKey is used for this call only.
func (e *Evaluator) Analyze(ctx context.Context, in resolver.Input, apiKey string) (*evaluation.Result, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingCredential
	}

	log := e.logger.With("call_id", uuid.NewString(), "model", e.model)
	start := time.Now()

	res, err := resolver.New(e.http, log).Resolve(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("resolve input: %w", err)
	}

	gen, err := e.newGenerator(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	parts := append(res.Parts, genai.NewPartFromText(instruction))
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	log.Debug("sending analysis request", "parts", len(parts), "search", res.SearchRequired)
	resp, err := gen.GenerateContent(ctx, "models/"+e.model, contents, requestConfig(res.SearchRequired))
	if err != nil {
		log.Error("analysis request failed", "duration", time.Since(start), "error", err)
		return nil, fmt.Errorf("generate content: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		log.Warn("empty model response", "duration", time.Since(start))
		return nil, ErrNoResult
	}

	result, err := evaluation.Parse(text)
	if err != nil {
		log.Warn("model response rejected", "error", err, "bytes", len(text))
		return nil, err
	}
	result.Sources = extractSources(resp)

	log.Info("analysis complete",
		"duration", time.Since(start),
		"interactions", len(result.Interactions),
		"sources", len(result.Sources),
		"clamped", result.Clamped,
	)
	return result, nil
}

func requestConfig(search bool) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   EvaluationSchema(),
	}
	if search {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	return cfg
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	if c := resp.Candidates[0]; c == nil || c.Content == nil {
		return ""
	}
	return resp.Text()
}

func extractSources(resp *genai.GenerateContentResponse) []evaluation.Source {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return nil
	}
	meta := resp.Candidates[0].GroundingMetadata
	if meta == nil {
		return nil
	}

	var sources []evaluation.Source
	for _, chunk := range meta.GroundingChunks {
		switch {
		case chunk == nil:
		case chunk.Web != nil:
			sources = append(sources, evaluation.Source{Title: chunk.Web.Title, URI: chunk.Web.URI})
		case chunk.RetrievedContext != nil:
			sources = append(sources, evaluation.Source{Title: chunk.RetrievedContext.Title, URI: chunk.RetrievedContext.URI})
		}
	}
	return sources
}
