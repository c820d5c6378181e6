package queue

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/redis/rueidis"

	model "task-tracker.com/task-tracker/internal/models"
)

// RedisEventPublisher appends timeline events to a Redis stream so other
// services can follow story activity.
type RedisEventPublisher struct {
	client rueidis.Client
	stream string
}

func NewRedisEventPublisher(client rueidis.Client, stream string) *RedisEventPublisher {
	return &RedisEventPublisher{
		client: client,
		stream: stream,
	}
}

func (r *RedisEventPublisher) Publish(ctx context.Context, events ...*model.TimelineEvent) error {
	if len(events) == 0 {
		return nil
	}

	cmds := make(rueidis.Commands, 0, len(events))
	for _, event := range events {
		fields, err := streamFields(event)
		if err != nil {
			return err
		}

		entry := r.client.B().Xadd().Key(r.stream).Id("*").FieldValue()
		for _, f := range fields {
			entry = entry.FieldValue(f[0], f[1])
		}
		cmds = append(cmds, entry.Build())
	}

	for _, res := range r.client.DoMulti(ctx, cmds...) {
		if err := res.Error(); err != nil {
			return err
		}
	}

	return nil
}

// streamFields flattens an event into ordered stream entry fields.
func streamFields(event *model.TimelineEvent) ([][2]string, error) {
	info, err := json.Marshal(event.EventInfo)
	if err != nil {
		return nil, err
	}

	return [][2]string{
		{"id", strconv.FormatUint(uint64(event.ID), 10)},
		{"story_id", strconv.FormatUint(uint64(event.StoryID), 10)},
		{"event_type", string(event.EventType)},
		{"author_id", strconv.FormatUint(uint64(event.AuthorID), 10)},
		{"event_info", string(info)},
	}, nil
}
