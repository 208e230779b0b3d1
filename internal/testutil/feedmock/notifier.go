package feedmock

import (
	"context"
	"sync"
)

// Notifier records published topics; satisfies feed.Notifier.
type Notifier struct {
	mu     sync.Mutex
	Topics []string
}

func (n *Notifier) Notify(_ context.Context, topic string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Topics = append(n.Topics, topic)
}

func (n *Notifier) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.Topics)
}
