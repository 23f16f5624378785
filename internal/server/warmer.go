package server

import (
	"context"

	"github.com/preston-bernstein/live-sports-service/internal/warmer"
)

// Warmer defines the minimal warm-up loop behavior needed by the server.
type Warmer interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() warmer.Status
}
