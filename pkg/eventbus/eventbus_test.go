package eventbus

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type pingEvent struct{}

func (pingEvent) Name() string { return "ping" }

type otherEvent struct{}

func (otherEvent) Name() string { return "other" }

func TestBus_PublishCallsSubscribers(t *testing.T) {
	bus := New(zap.NewNop())
	var calls int32

	for i := 0; i < 3; i++ {
		bus.Subscribe("ping", func(ctx context.Context, e Event) error {
			atomic.AddInt32(&calls, 1)
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return nil
		})
	}
	bus.Subscribe("other", func(ctx context.Context, e Event) error {
		t.Error("подписчик другого события не должен вызываться")
		return nil
	})

	bus.Publish(context.Background(), pingEvent{})
	bus.Wait()

	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestBus_ListenerErrorDoesNotStopOthers(t *testing.T) {
	bus := New(zap.NewNop())
	var ok int32

	bus.Subscribe("other", func(ctx context.Context, e Event) error {
		return errors.New("сбой")
	})
	bus.Subscribe("other", func(ctx context.Context, e Event) error {
		atomic.AddInt32(&ok, 1)
		return nil
	})

	bus.Publish(context.Background(), otherEvent{})
	bus.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&ok))
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	bus := New(zap.NewNop())
	bus.Publish(context.Background(), pingEvent{})
	bus.Wait()
}

func TestBus_PublishSyncRunsInOrder(t *testing.T) {
	bus := New(zap.NewNop())
	var order []int

	bus.Subscribe("ping", func(ctx context.Context, e Event) error {
		order = append(order, 1)
		return nil
	})
	bus.Subscribe("ping", func(ctx context.Context, e Event) error {
		order = append(order, 2)
		return errors.New("сбой")
	})
	bus.Subscribe("ping", func(ctx context.Context, e Event) error {
		order = append(order, 3)
		return nil
	})

	err := bus.PublishSync(context.Background(), pingEvent{})
	assert.EqualError(t, err, "сбой")
	assert.Equal(t, []int{1, 2, 3}, order)

	assert.NoError(t, bus.PublishSync(context.Background(), otherEvent{}))
}
