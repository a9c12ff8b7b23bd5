// Package generator orchestrates one brief-to-posts run: build prompts,
// invoke the model under a time bound, normalize the output, and degrade
// to raw passthrough or synthesis when anything fails.
package generator

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/timeout"

	"github.com/sabrebluedobie/Quickspin-API/internal/brief"
	"github.com/sabrebluedobie/Quickspin-API/internal/posts"
	"github.com/sabrebluedobie/Quickspin-API/internal/prompt"
	"github.com/sabrebluedobie/Quickspin-API/pkg/llm"
	"github.com/sabrebluedobie/Quickspin-API/pkg/logging"
)

// ErrNoProvider reports that no model credential was configured. The service
// stays up and answers every request from the fallback synthesizer.
var ErrNoProvider = errors.New("no model provider configured")

type Config struct {
	Provider   llm.Provider
	Logger     logging.Logger
	ContactURL string
	Variants   int
	Timeout    time.Duration
}

type Generator struct {
	provider   llm.Provider
	logger     logging.Logger
	contactURL string
	variants   int
	timeout    timeout.Timeout[string]
	limit      time.Duration
}

func New(cfg Config) *Generator {
	if cfg.Variants <= 0 {
		cfg.Variants = 3
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Generator{
		provider:   cfg.Provider,
		logger:     cfg.Logger,
		contactURL: cfg.ContactURL,
		variants:   cfg.Variants,
		timeout:    timeout.New[string](cfg.Timeout),
		limit:      cfg.Timeout,
	}
}

// CreatePosts always returns a usable envelope. Preference order: parsed
// model output, raw model text, deterministic synthesis from the brief.
func (g *Generator) CreatePosts(ctx context.Context, b brief.Brief) posts.ResultEnvelope {
	raw, err := g.generate(ctx, b)
	if err != nil {
		if errors.Is(err, ErrNoProvider) {
			g.logger.Warn("No model credential configured, using fallback")
		} else {
			g.logger.WithError(err).Warn("Model call failed, using fallback")
		}
		return posts.Synthesize(b, g.contactURL)
	}

	env, err := posts.Normalize(raw)
	if err == nil {
		return env
	}

	if strings.TrimSpace(raw) != "" {
		g.logger.WithError(err).Warn("Model output not parseable, returning raw text")
		return posts.RawEnvelope(raw)
	}

	g.logger.WithError(err).Warn("Model returned nothing usable, using fallback")
	return posts.Synthesize(b, g.contactURL)
}

func (g *Generator) generate(ctx context.Context, b brief.Brief) (string, error) {
	if g.provider == nil {
		return "", ErrNoProvider
	}

	ctx, cancel := context.WithTimeout(ctx, g.limit)
	defer cancel()

	messages := []llm.Message{
		{Role: "system", Content: prompt.System(g.contactURL)},
		{Role: "user", Content: prompt.User(b)},
		{Role: "user", Content: prompt.Instruction(g.variants)},
	}

	return failsafe.With(g.timeout).WithContext(ctx).Get(func() (string, error) {
		stream, err := g.provider.Complete(ctx, messages)
		if err != nil {
			return "", err
		}
		defer stream.Close()

		var content strings.Builder
		for {
			chunk, recvErr := stream.Recv()
			if errors.Is(recvErr, io.EOF) {
				break
			}
			if recvErr != nil {
				return "", recvErr
			}
			content.WriteString(chunk.Content)
		}
		return content.String(), nil
	})
}
