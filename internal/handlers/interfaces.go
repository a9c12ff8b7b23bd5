package handlers

import (
	"context"

	"github.com/sabrebluedobie/Quickspin-API/internal/brief"
	"github.com/sabrebluedobie/Quickspin-API/internal/posts"
)

// PostGenerator turns a brief into a response envelope. It never fails; a
// degraded run is reflected in the envelope's mode.
type PostGenerator interface {
	CreatePosts(ctx context.Context, b brief.Brief) posts.ResultEnvelope
}
