package generator

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sabrebluedobie/Quickspin-API/internal/brief"
	"github.com/sabrebluedobie/Quickspin-API/internal/posts"
	"github.com/sabrebluedobie/Quickspin-API/pkg/llm"
	"github.com/sabrebluedobie/Quickspin-API/pkg/logging"
)

// stubProvider plays back canned chunks or an error.
type stubProvider struct {
	chunks []string
	err    error
	calls  int
	delay  time.Duration
}

func (p *stubProvider) Complete(ctx context.Context, messages []llm.Message) (llm.Stream, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return &stubStream{ctx: ctx, chunks: p.chunks, delay: p.delay}, nil
}

type stubStream struct {
	ctx    context.Context
	chunks []string
	delay  time.Duration
	pos    int
}

func (s *stubStream) Recv() (llm.Chunk, error) {
	if s.delay > 0 {
		select {
		case <-s.ctx.Done():
			return llm.Chunk{}, s.ctx.Err()
		case <-time.After(s.delay):
		}
	}
	if s.pos >= len(s.chunks) {
		return llm.Chunk{}, io.EOF
	}
	c := llm.Chunk{Content: s.chunks[s.pos]}
	s.pos++
	return c, nil
}

func (s *stubStream) Close() error { return nil }

func testLogger() logging.Logger {
	logger := logging.NewLogger()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestGenerator(p llm.Provider) *Generator {
	return New(Config{
		Provider:   p,
		Logger:     testLogger(),
		ContactURL: "https://bluedobiedev.com/contact",
		Variants:   3,
		Timeout:    time.Second,
	})
}

func TestCreatePostsServiceMode(t *testing.T) {
	p := &stubProvider{chunks: []string{
		`{"posts":[{"short":"Fresh`, ` brunch","medium":"m","cta":"c","hashtags":["#x"],"image_prompt":"i"}]}`,
	}}
	g := newTestGenerator(p)

	env := g.CreatePosts(context.Background(), brief.Normalize([]byte(`{"business":"Joe's Cafe"}`)))

	if env.Mode != posts.ModeService {
		t.Fatalf("expected mode %q, got %q", posts.ModeService, env.Mode)
	}
	if env.Posts[0].Short != "Fresh brunch" {
		t.Errorf("stream chunks should be concatenated: %+v", env.Posts[0])
	}
}

func TestCreatePostsNoProviderFallsBack(t *testing.T) {
	g := newTestGenerator(nil)

	env := g.CreatePosts(context.Background(), brief.Normalize([]byte(`{"business":"Joe's Cafe"}`)))

	if env.Mode != posts.ModeFallback {
		t.Fatalf("expected mode %q, got %q", posts.ModeFallback, env.Mode)
	}
	if len(env.Posts) != 1 {
		t.Fatalf("expected one synthetic post, got %d", len(env.Posts))
	}
}

func TestCreatePostsUpstreamErrorFallsBack(t *testing.T) {
	p := &stubProvider{err: errors.New("upstream exploded")}
	g := newTestGenerator(p)

	env := g.CreatePosts(context.Background(), brief.Normalize(nil))

	if env.Mode != posts.ModeFallback {
		t.Fatalf("expected mode %q, got %q", posts.ModeFallback, env.Mode)
	}
	if p.calls != 1 {
		t.Errorf("expected a single attempt with no retry, got %d", p.calls)
	}
}

func TestCreatePostsNoProviderFallbackContent(t *testing.T) {
	g := newTestGenerator(nil)

	env := g.CreatePosts(context.Background(), brief.Normalize([]byte(`{"business":"Joe's Cafe","offer":"10% off brunch"}`)))

	if env.Mode != posts.ModeFallback {
		t.Fatalf("expected mode %q, got %q", posts.ModeFallback, env.Mode)
	}
	p := env.Posts[0]
	if !strings.Contains(p.Short, "Joe's Cafe") {
		t.Errorf("short should carry the business name: %q", p.Short)
	}
	if !strings.Contains(p.CTA, "https://bluedobiedev.com/contact") {
		t.Errorf("cta should carry the contact URL: %q", p.CTA)
	}
	if len(p.Hashtags) == 0 || p.Hashtags[0] != "#Joe'sCafe" {
		t.Errorf("first hashtag should derive from the business name: %v", p.Hashtags)
	}
}

func TestCreatePostsFencedAndProseOutputs(t *testing.T) {
	payload := `{"posts":[{"short":"s","medium":"m","cta":"c","hashtags":["#x"],"image_prompt":"i"}]}`

	for _, raw := range []string{
		"```json\n" + payload + "\n```",
		"Here you go:\n" + payload + "\nEnjoy!",
	} {
		g := newTestGenerator(&stubProvider{chunks: []string{raw}})
		env := g.CreatePosts(context.Background(), brief.Normalize(nil))
		if env.Mode != posts.ModeService {
			t.Errorf("expected mode %q for %q..., got %q", posts.ModeService, raw[:10], env.Mode)
		}
	}
}

func TestCreatePostsRawPassthrough(t *testing.T) {
	p := &stubProvider{chunks: []string{"Here are some great ideas for your cafe!"}}
	g := newTestGenerator(p)

	env := g.CreatePosts(context.Background(), brief.Normalize(nil))

	if env.Mode != posts.ModeServiceRaw {
		t.Fatalf("expected mode %q, got %q", posts.ModeServiceRaw, env.Mode)
	}
	if env.Posts[0].Medium != "Here are some great ideas for your cafe!" {
		t.Errorf("raw text should land in medium: %+v", env.Posts[0])
	}
}

func TestCreatePostsBlankOutputFallsBack(t *testing.T) {
	p := &stubProvider{chunks: []string{"   \n  "}}
	g := newTestGenerator(p)

	env := g.CreatePosts(context.Background(), brief.Normalize(nil))

	if env.Mode != posts.ModeFallback {
		t.Fatalf("whitespace-only output should synthesize, got %q", env.Mode)
	}
}

func TestCreatePostsTimesOut(t *testing.T) {
	p := &stubProvider{chunks: []string{"slow"}, delay: 5 * time.Second}
	g := New(Config{
		Provider:   p,
		Logger:     testLogger(),
		ContactURL: "https://bluedobiedev.com/contact",
		Variants:   3,
		Timeout:    50 * time.Millisecond,
	})

	start := time.Now()
	env := g.CreatePosts(context.Background(), brief.Normalize(nil))

	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("generation should be bounded by the timeout, took %v", elapsed)
	}
	if env.Mode != posts.ModeFallback {
		t.Fatalf("a timed-out generation should synthesize, got %q", env.Mode)
	}
}
