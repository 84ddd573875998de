package events

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"idscope_backend/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type pingEvent struct {
	BaseEvent
}

func (pingEvent) EventName() string { return "test.ping" }

func TestPublishRunsAllHandlers(t *testing.T) {
	defer goleak.VerifyNone(t)

	bus := NewInMemoryBus(logger.Nop())
	var calls atomic.Int32
	for i := 0; i < 3; i++ {
		bus.Subscribe("test.ping", HandlerFunc(func(context.Context, Event) error {
			calls.Add(1)
			return nil
		}))
	}

	bus.Publish(context.Background(), pingEvent{BaseEvent: NewBaseEvent()})
	bus.Wait()

	assert.EqualValues(t, 3, calls.Load())
}

func TestPublishIgnoresOtherEvents(t *testing.T) {
	defer goleak.VerifyNone(t)

	bus := NewInMemoryBus(logger.Nop())
	called := false
	bus.Subscribe("test.other", HandlerFunc(func(context.Context, Event) error {
		called = true
		return nil
	}))

	bus.Publish(context.Background(), pingEvent{BaseEvent: NewBaseEvent()})
	bus.Wait()

	assert.False(t, called)
}

func TestPublishSyncJoinsErrors(t *testing.T) {
	bus := NewInMemoryBus(logger.Nop())
	errA := errors.New("a")
	errB := errors.New("b")
	bus.Subscribe("test.ping", HandlerFunc(func(context.Context, Event) error { return errA }))
	bus.Subscribe("test.ping", HandlerFunc(func(context.Context, Event) error { return nil }))
	bus.Subscribe("test.ping", HandlerFunc(func(context.Context, Event) error { return errB }))

	err := bus.PublishSync(context.Background(), pingEvent{BaseEvent: NewBaseEvent()})
	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
}

func TestPublishHandlerSeesUncancelledContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	bus := NewInMemoryBus(logger.Nop())
	var sawErr atomic.Value
	bus.Subscribe("test.ping", HandlerFunc(func(ctx context.Context, _ Event) error {
		sawErr.Store(ctx.Err() == nil)
		return nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	bus.Publish(ctx, pingEvent{BaseEvent: NewBaseEvent()})
	bus.Wait()

	assert.Equal(t, true, sawErr.Load())
}
