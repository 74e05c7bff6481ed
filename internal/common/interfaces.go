package common

import (
	"context"
	"time"

	"golang.org/x/oauth2"
)

// Dispatcher submits a unit of work to run at a future time. Submit returns
// an opaque token usable for best-effort cancellation. The execution
// substrate behind it is assumed reliable with at-least-once delivery.
type Dispatcher interface {
	Submit(ctx context.Context, runAt time.Time, payload JobPayload) (string, error)
	Cancel(ctx context.Context, token string) error
}

// JobExecutor is the callback side of the dispatcher: invoked on a worker
// when a submitted job fires. Implementations must tolerate duplicate
// invocations for the same payload.
type JobExecutor interface {
	Execute(ctx context.Context, payload JobPayload) error
}

// RemoteClient talks to the social platform on behalf of one owner.
type RemoteClient interface {
	// Publish posts text and returns the platform id and creation time.
	// The call is not idempotent; callers must not retry it blindly.
	Publish(ctx context.Context, token *oauth2.Token, text string) (string, time.Time, error)

	// ListRecent fetches the owner's recently published posts, newest first.
	ListRecent(ctx context.Context, token *oauth2.Token, limit int) ([]RemotePost, error)
}
