// Package ipc carries recent-items events from the UI side to the
// privileged side over an in-process, single-consumer queue.
package ipc

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/renato0307/bancada/internal/domain"
	"github.com/renato0307/bancada/internal/logging"
	"github.com/renato0307/bancada/internal/ports"
)

// ErrClosed is returned by Publish after Close
var ErrClosed = errors.New("sync channel closed")

const (
	defaultBuffer      = 64
	defaultMaxAttempts = 3
	retryBackoff       = 50 * time.Millisecond
)

// message is either an event or a flush barrier
type message struct {
	ack chan struct{}
	ev  domain.RecentEvent
}

// Channel implements ports.RecentSyncer. Events are applied one at a time in
// publish order; a failed apply is retried, then dropped and left to startup
// reconciliation.
type Channel struct {
	applier     ports.RecentEventApplier
	done        chan struct{}
	maxAttempts int
	mu          sync.RWMutex
	closed      bool
	queue       chan message
}

// Verify interface compliance at compile time
var _ ports.RecentSyncer = (*Channel)(nil)

// NewChannel starts the consumer goroutine delivering to applier
func NewChannel(applier ports.RecentEventApplier) *Channel {
	c := &Channel{
		applier:     applier,
		done:        make(chan struct{}),
		maxAttempts: defaultMaxAttempts,
		queue:       make(chan message, defaultBuffer),
	}
	go c.consume()
	return c
}

// Publish enqueues ev without waiting for it to be applied
func (c *Channel) Publish(ctx context.Context, ev domain.RecentEvent) error {
	return c.send(ctx, message{ev: ev})
}

// Flush blocks until every event published before the call has been handled
func (c *Channel) Flush(ctx context.Context) error {
	ack := make(chan struct{})
	if err := c.send(ctx, message{ack: ack}); err != nil {
		return err
	}
	select {
	case <-ack:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting events and waits for the queue to drain
func (c *Channel) Close() error {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.queue)
	}
	c.mu.Unlock()
	<-c.done
	return nil
}

func (c *Channel) send(ctx context.Context, msg message) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClosed
	}
	select {
	case c.queue <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Channel) consume() {
	defer close(c.done)
	for msg := range c.queue {
		if msg.ack != nil {
			close(msg.ack)
			continue
		}
		c.deliver(msg.ev)
	}
}

func (c *Channel) deliver(ev domain.RecentEvent) {
	var err error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		err = c.applier.ApplyEvent(context.Background(), ev)
		if err == nil {
			return
		}
		logging.Logger.Warn("Failed to apply recent event", "id", ev.ID, "attempt", attempt, "error", err)
		time.Sleep(retryBackoff * time.Duration(attempt))
	}
	logging.Logger.Error("Dropping recent event after retries", "id", ev.ID, "kind", ev.Kind, "op", ev.Op, "error", err)
}
