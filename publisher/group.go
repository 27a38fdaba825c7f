package publisher

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/xsellco/grip/format"
)

// Group fans one publish out to several proxy endpoints. Each configured
// client receives the same channel and items; the group call fails when
// any endpoint fails.
//
// Configure the group fully before concurrent use; Add is not
// synchronized against in-flight publishes.
type Group struct {
	clients []*Client
}

// NewGroup creates a Group over the given clients.
func NewGroup(clients ...*Client) *Group {
	return &Group{clients: clients}
}

// Add appends a client to the group.
func (g *Group) Add(c *Client) {
	g.clients = append(g.clients, c)
}

// Clients returns the configured clients in addition order.
func (g *Group) Clients() []*Client {
	return g.clients
}

// Publish sends the items to every endpoint concurrently and blocks until
// all exchanges complete. Endpoints are independent: one failure does not
// abort the others, and the first failure observed is returned.
func (g *Group) Publish(ctx context.Context, channel string, items ...format.Item) error {
	var eg errgroup.Group
	for _, c := range g.clients {
		c := c
		eg.Go(func() error {
			return c.Publish(ctx, channel, items...)
		})
	}
	return eg.Wait()
}

// PublishAsync sends the items to every endpoint without blocking the
// caller. The receipt resolves once all exchanges complete, with the
// first failure observed.
func (g *Group) PublishAsync(ctx context.Context, channel string, items ...format.Item) *Receipt {
	r := newReceipt()
	go func() {
		r.resolve(g.Publish(ctx, channel, items...))
	}()
	return r
}
