package events

import (
	"context"
	"errors"
)

// Event is a message pushed to responders' devices and downstream consumers
type Event struct {
	Topic   string
	Payload any
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Nop drops every event; used when no transport is enabled
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

// Multi fans an event out to every publisher and joins their errors
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, ev Event) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
