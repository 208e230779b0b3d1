// Package feed carries change notifications for the live collection views.
// Writers publish a tick after every successful store mutation; stream
// handlers subscribe for the lifetime of one request and reload the list on
// each tick. Redis pub/sub fans the ticks out across instances.
package feed

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	TopicUsers = "fundcollector:changed:users"
	TopicFunds = "fundcollector:changed:funds"
)

// Notifier is the write side. Usecases publish fire-and-forget; a lost
// notification only delays a viewer until the next change.
type Notifier interface {
	Notify(ctx context.Context, topic string)
}

type RedisFeed struct {
	rdb *redis.Client
	log *logrus.Entry
}

func NewRedisFeed(rdb *redis.Client, log *logrus.Entry) *RedisFeed {
	return &RedisFeed{rdb: rdb, log: log}
}

func (f *RedisFeed) Notify(ctx context.Context, topic string) {
	if err := f.rdb.Publish(ctx, topic, "1").Err(); err != nil {
		f.log.WithField("topic", topic).WithError(err).Warn("change notify failed")
	}
}

// Subscribe returns a channel that ticks on every change to topic. The
// subscription lives until ctx is done; the channel is then closed and the
// redis listener released, so a dismissed view never leaks a listener.
func (f *RedisFeed) Subscribe(ctx context.Context, topic string) <-chan struct{} {
	sub := f.rdb.Subscribe(ctx, topic)
	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer func() { _ = sub.Close() }()
		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-msgs:
				if !ok {
					return
				}
				// coalesce bursts; one pending tick is enough
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()
	return out
}
