package prompt

import (
	"strings"
	"testing"

	"github.com/sabrebluedobie/Quickspin-API/internal/brief"
)

func TestSystemEmbedsContactURL(t *testing.T) {
	s := System("https://bluedobiedev.com/contact")

	if !strings.Contains(s, "https://bluedobiedev.com/contact") {
		t.Error("system prompt should carry the contact URL for the CTA line")
	}
	if !strings.Contains(s, "Return JSON ONLY") {
		t.Error("system prompt should demand JSON-only output")
	}
	if !strings.Contains(s, "no medical/financial/legal claims") {
		t.Error("system prompt should carry the guardrails")
	}
	if !strings.Contains(s, `"image_prompt"`) {
		t.Error("system prompt should spell out the post schema")
	}
}

func TestUserRendersBrief(t *testing.T) {
	b := brief.Normalize([]byte(`{"business":"Joe's Cafe","offer":"10% off brunch","tone":"Warm","platform":"Instagram","keywords":"coffee, brunch"}`))

	u := User(b)

	for _, want := range []string{
		"Business: Joe's Cafe",
		"Offer: 10% off brunch",
		"Tone: Warm",
		"Platform: Instagram",
		"Keywords: coffee, brunch",
	} {
		if !strings.Contains(u, want) {
			t.Errorf("user prompt missing %q:\n%s", want, u)
		}
	}
}

func TestUserPlaceholders(t *testing.T) {
	u := User(brief.Normalize(nil))

	for _, want := range []string{
		"Business: Local service",
		"Offer: General brand awareness",
		"Tone: Friendly",
		"Platform: Facebook",
		"Keywords: (none)",
	} {
		if !strings.Contains(u, want) {
			t.Errorf("user prompt missing placeholder %q:\n%s", want, u)
		}
	}
}

func TestPromptsAreDeterministic(t *testing.T) {
	b := brief.Normalize([]byte(`{"business":"Shop"}`))

	if System("https://example.com") != System("https://example.com") {
		t.Error("system prompt should be deterministic")
	}
	if User(b) != User(b) {
		t.Error("user prompt should be deterministic")
	}
}

func TestInstruction(t *testing.T) {
	if got := Instruction(3); got != "Produce 3 distinct posts in the JSON array." {
		t.Errorf("unexpected instruction: %q", got)
	}
}
