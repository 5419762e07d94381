package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shashikanthshadow/talentscout/internal/ai"
	"github.com/shashikanthshadow/talentscout/internal/logger"
	"github.com/shashikanthshadow/talentscout/internal/utils"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	provider             = "gemini"
	defaultModel         = "gemini-2.0-flash"
	defaultTimeout       = 60 * time.Second
	defaultHistoryWindow = 10
	defaultMaxLogLength  = 200
)

// contentGenerator is the subset of genai.Models used by the Generator.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Config describes how to reach the Gemini API.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
	// HistoryWindow is the number of most recent turns forwarded with each request.
	// Zero uses the default of 10, a negative value forwards no history.
	HistoryWindow int
	MaxLogLength  int
}

// Generator sends conversation requests to Gemini and returns the first text reply.
type Generator struct {
	models        contentGenerator
	model         string
	timeout       time.Duration
	historyWindow int
	maxLogLen     int
	logger        *zap.Logger
}

var _ ai.Completer = (*Generator)(nil)

// NewGenerator creates a Generator backed by the Gemini API.
// It fails with ErrMissingCredential when no API key is configured.
func NewGenerator(ctx context.Context, cfg Config, log *zap.Logger) (*Generator, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrMissingCredential
	}

	cfg = withDefaults(cfg)

	clientCfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	}
	if baseURL := strings.TrimSpace(cfg.BaseURL); baseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return newGenerator(client.Models, cfg, log), nil
}

func newGenerator(models contentGenerator, cfg Config, log *zap.Logger) *Generator {
	cfg = withDefaults(cfg)

	return &Generator{
		models:        models,
		model:         cfg.Model,
		timeout:       cfg.Timeout,
		historyWindow: cfg.HistoryWindow,
		maxLogLen:     cfg.MaxLogLength,
		logger:        logger.WithCommonFields(log, provider, cfg.Model),
	}
}

func withDefaults(cfg Config) Config {
	if cfg.Model = strings.TrimSpace(cfg.Model); cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.HistoryWindow == 0 {
		cfg.HistoryWindow = defaultHistoryWindow
	}
	if cfg.MaxLogLength <= 0 {
		cfg.MaxLogLength = defaultMaxLogLength
	}
	return cfg
}

// Complete sends the request to Gemini and returns the trimmed text of the first
// part of the first candidate. The call is not retried.
func (g *Generator) Complete(ctx context.Context, req *ai.Request) (string, error) {
	if g == nil || g.models == nil {
		return "", errors.New("gemini generator is not initialized")
	}
	if req == nil {
		return "", errors.New("request is required")
	}

	contents, err := buildContents(req, g.historyWindow)
	if err != nil {
		return "", err
	}
	config := buildConfig(req.Params)

	g.logger.Debug("gemini generate content request",
		zap.Int("contents", len(contents)),
		zap.Int("prompt_length", utf8.RuneCountInString(req.UserText)),
		zap.String("prompt_preview", utils.TruncateForLog(req.UserText, g.maxLogLen)),
	)

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	started := time.Now()
	resp, err := g.models.GenerateContent(callCtx, g.model, contents, config)
	if err != nil {
		if isTimeout(err) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w after %s: %w", ErrTimeout, g.timeout, err)
		}
		if code := statusCode(err); code != 0 {
			return "", fmt.Errorf("%w: status %d: %w", ErrTransport, code, err)
		}
		return "", fmt.Errorf("%w: %w", ErrTransport, err)
	}

	text, err := firstText(resp)
	if err != nil {
		return "", err
	}

	g.logger.Debug("gemini generate content response",
		zap.Duration("elapsed", time.Since(started)),
		zap.Int("response_length", utf8.RuneCountInString(text)),
		zap.String("response_preview", utils.TruncateForLog(text, g.maxLogLen)),
	)

	return text, nil
}

// Model returns the configured model name.
func (g *Generator) Model() string {
	if g == nil {
		return ""
	}
	return g.model
}

// firstText returns the trimmed text of the first part of the first candidate.
// A blank text is reported as ErrMalformedResponse rather than returned as "".
func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", ErrMalformedResponse)
	}

	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: candidate has no content", ErrMalformedResponse)
	}

	part := candidate.Content.Parts[0]
	if part == nil {
		return "", fmt.Errorf("%w: empty part", ErrMalformedResponse)
	}

	text := strings.TrimSpace(part.Text)
	if text == "" {
		return "", fmt.Errorf("%w: empty text", ErrMalformedResponse)
	}

	return text, nil
}
