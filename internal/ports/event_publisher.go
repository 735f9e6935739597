package ports

import "github.com/bnema/remote-assist-console/internal/domain"

// EventPublisher receives console notifications. Publish must not block and
// must not call back into the console.
type EventPublisher interface {
	Publish(event domain.Event)
}

type EventPublisherFunc func(event domain.Event)

func (f EventPublisherFunc) Publish(event domain.Event) {
	f(event)
}
