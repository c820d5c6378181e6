package events

import (
	"context"

	"github.com/rs/zerolog"

	model "task-tracker.com/task-tracker/internal/models"
)

// Sink accepts timeline events for a story.
type Sink interface {
	Emit(ctx context.Context, events ...*model.TimelineEvent) error
}

// Publisher forwards already stored events to an external consumer.
type Publisher interface {
	Publish(ctx context.Context, events ...*model.TimelineEvent) error
}

// FanOut stores events in the primary sink and then hands them to every
// publisher. Only a primary failure is returned to the caller; publisher
// failures are logged.
type FanOut struct {
	primary    Sink
	publishers []Publisher
	log        zerolog.Logger
}

func NewFanOut(log zerolog.Logger, primary Sink, publishers ...Publisher) *FanOut {
	return &FanOut{
		primary:    primary,
		publishers: publishers,
		log:        log,
	}
}

func (f *FanOut) Emit(ctx context.Context, events ...*model.TimelineEvent) error {
	if len(events) == 0 {
		return nil
	}

	if err := f.primary.Emit(ctx, events...); err != nil {
		return err
	}

	for _, p := range f.publishers {
		if err := p.Publish(ctx, events...); err != nil {
			f.log.Warn().
				Err(err).
				Uint("story_id", events[0].StoryID).
				Int("events", len(events)).
				Msg("failed to publish timeline events")
		}
	}

	return nil
}
