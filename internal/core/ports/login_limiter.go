package ports

import "context"

// LoginLimiter throttles login attempts per account identifier. Allow reports
// whether another attempt is permitted right now. Implementations should fail
// open: an unavailable backend must not lock every user out.
type LoginLimiter interface {
	Allow(ctx context.Context, email string) (bool, error)
}
