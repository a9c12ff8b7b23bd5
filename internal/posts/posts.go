// Package posts defines the response payload and the repair ladder that
// turns raw model output into a usable envelope.
package posts

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sabrebluedobie/Quickspin-API/internal/brief"
)

// Post is one ready-to-publish variant.
type Post struct {
	Short       string   `json:"short"`
	Medium      string   `json:"medium"`
	CTA         string   `json:"cta"`
	Hashtags    []string `json:"hashtags"`
	ImagePrompt string   `json:"image_prompt"`
}

// ResultEnvelope is the response body for every successful request. Posts is
// never empty regardless of mode.
type ResultEnvelope struct {
	Mode  string `json:"mode"`
	Posts []Post `json:"posts"`
}

// Generation modes, in order of preference.
const (
	ModeService    = "service"
	ModeServiceRaw = "service-raw"
	ModeFallback   = "fallback"
)

// ErrNoJSON reports that raw model output contained nothing parseable.
var ErrNoJSON = errors.New("no parseable JSON in model output")

// Normalize runs raw model output through the repair ladder: strip markdown
// code fences, try a direct parse, then try the widest {...} slice. A parse
// that yields zero posts counts as failure.
func Normalize(raw string) (ResultEnvelope, error) {
	cleaned := stripFences(strings.TrimSpace(raw))

	env, err := parseEnvelope(cleaned)
	if err == nil {
		return env, nil
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start != -1 && end > start {
		if env, err := parseEnvelope(cleaned[start : end+1]); err == nil {
			return env, nil
		}
	}

	return ResultEnvelope{}, fmt.Errorf("%w: %q", ErrNoJSON, truncate(raw, 120))
}

// RawEnvelope wraps non-JSON model text as a single post so the caller still
// sees what was generated.
func RawEnvelope(raw string) ResultEnvelope {
	return ResultEnvelope{
		Mode: ModeServiceRaw,
		Posts: []Post{{
			Medium:   strings.TrimSpace(raw),
			Hashtags: []string{},
		}},
	}
}

// Synthesize builds a deterministic single-post envelope from the brief
// alone. Used whenever the model is unavailable or its output is unusable.
func Synthesize(b brief.Brief, contactURL string) ResultEnvelope {
	business := b.Business
	if business == "" {
		business = "business"
	}
	offer := b.Offer
	if offer == "" {
		offer = "book today"
	}
	need := b.Business
	if need == "" {
		need = "help"
	}
	pitch := b.Offer
	if pitch == "" {
		pitch = "We keep it simple and affordable."
	}
	subject := b.Business
	if subject == "" {
		subject = "a local service"
	}
	tag := strings.Join(strings.Fields(b.Business), "")
	if tag == "" {
		tag = "local"
	}

	return ResultEnvelope{
		Mode: ModeFallback,
		Posts: []Post{{
			Short:       fmt.Sprintf("Local %s — %s.", business, offer),
			Medium:      fmt.Sprintf("Need %s? %s", need, pitch),
			CTA:         "Book your free 30-minute consult → " + contactURL,
			Hashtags:    []string{"#" + tag, "#SmallBusiness", "#Local"},
			ImagePrompt: fmt.Sprintf("Clean, bright photo of %s at work", subject),
		}},
	}
}

func parseEnvelope(s string) (ResultEnvelope, error) {
	var env ResultEnvelope
	if err := json.Unmarshal([]byte(s), &env); err != nil {
		return ResultEnvelope{}, err
	}
	if len(env.Posts) == 0 {
		return ResultEnvelope{}, errors.New("envelope has no posts")
	}
	env.Mode = ModeService
	for i := range env.Posts {
		if env.Posts[i].Hashtags == nil {
			env.Posts[i].Hashtags = []string{}
		}
	}
	return env, nil
}

func stripFences(s string) string {
	switch {
	case strings.HasPrefix(s, "```json"):
		s = strings.TrimPrefix(s, "```json")
	case strings.HasPrefix(s, "```"):
		s = strings.TrimPrefix(s, "```")
	default:
		return s
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
