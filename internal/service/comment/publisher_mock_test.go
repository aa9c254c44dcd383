package comment

import (
	"sync"

	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
)

var _ publisher = &publisherMock{}

type publisherMock struct {
	PublishFunc func(topic string, event domain.Event)

	calls struct {
		Publish []struct {
			Topic string
			Event domain.Event
		}
	}
	lockPublish sync.RWMutex
}

func (mock *publisherMock) Publish(topic string, event domain.Event) {
	if mock.PublishFunc == nil {
		panic("publisherMock.PublishFunc: method is nil but publisher.Publish was just called")
	}
	callInfo := struct {
		Topic string
		Event domain.Event
	}{
		Topic: topic,
		Event: event,
	}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, callInfo)
	mock.lockPublish.Unlock()
	mock.PublishFunc(topic, event)
}

func (mock *publisherMock) PublishCalls() []struct {
	Topic string
	Event domain.Event
} {
	mock.lockPublish.RLock()
	calls := mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}
