// Package prompt builds the instruction set sent to the language model.
// Builders are pure functions of their inputs so an identical brief always
// produces identical prompts.
package prompt

import (
	"fmt"

	"github.com/sabrebluedobie/Quickspin-API/internal/brief"
)

const schema = `{
  "posts": [
    {
      "short": "string (≈100 chars, hooky)",
      "medium": "string (≈220 chars, tailored to platform)",
      "cta": "string (one line with %s)",
      "hashtags": ["array", "of", "3-6", "tags"],
      "image_prompt": "string (1 line descriptive visual idea)"
    }
  ]
}`

// System returns the system prompt. The contact URL is woven into the output
// schema so the model's call-to-action lines point at the right place.
func System(contactURL string) string {
	return "You write concise, brand-safe social posts for SMALL LOCAL BUSINESSES.\n" +
		"Return JSON ONLY (no prose, no markdown code blocks) with this exact shape:\n" +
		fmt.Sprintf(schema, contactURL) + "\n" +
		"Guardrails: no medical/financial/legal claims; plain language; friendly, helpful tone.\n" +
		"Make content platform-aware (e.g., don't stuff hashtags for Facebook).\n" +
		"Make variants distinct, not rephrasings.\n" +
		"IMPORTANT: Return ONLY valid JSON, no other text."
}

// User renders the brief as a line-per-field user prompt. Empty fields get
// neutral placeholders so the model never sees a blank label.
func User(b brief.Brief) string {
	business := b.Business
	if business == "" {
		business = "Local service"
	}
	offer := b.Offer
	if offer == "" {
		offer = "General brand awareness"
	}
	keywords := b.Keywords
	if keywords == "" {
		keywords = "(none)"
	}
	return fmt.Sprintf("Business: %s\nOffer: %s\nTone: %s\nPlatform: %s\nKeywords: %s",
		business, offer, b.Tone, b.Platform, keywords)
}

// Instruction asks for the configured number of variants.
func Instruction(variants int) string {
	return fmt.Sprintf("Produce %d distinct posts in the JSON array.", variants)
}
