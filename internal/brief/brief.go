// Package brief normalizes the caller-supplied business brief.
package brief

import "encoding/json"

// Brief is the validated input for one generation request. Values are used
// verbatim downstream; nothing is trimmed here.
type Brief struct {
	Business string `json:"business"`
	Offer    string `json:"offer"`
	Tone     string `json:"tone"`
	Platform string `json:"platform"`
	Keywords string `json:"keywords"`
}

const (
	DefaultTone     = "Friendly"
	DefaultPlatform = "Facebook"
)

// Normalize builds a Brief from a raw request body. A missing or malformed
// body yields an empty brief rather than an error; the pipeline proceeds
// with defaults so the caller always gets a usable answer.
func Normalize(raw []byte) Brief {
	var b Brief
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &b); err != nil {
			b = Brief{}
		}
	}
	if b.Tone == "" {
		b.Tone = DefaultTone
	}
	if b.Platform == "" {
		b.Platform = DefaultPlatform
	}
	return b
}
