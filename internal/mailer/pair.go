package mailer

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// SendPair sends two messages concurrently and fails if either send fails.
// The contact flow uses this for the internal notification plus the visitor
// confirmation, which must both go out or the request is reported as failed.
func SendPair(ctx context.Context, client *Client, first, second *Message) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return client.Send(ctx, first) })
	g.Go(func() error { return client.Send(ctx, second) })
	return g.Wait()
}
