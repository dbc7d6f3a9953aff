package bus

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testObserver struct {
	publishCount   int
	deliveredCount int
	lastErr        error
}

func (o *testObserver) OnPublish(_ string, _ Event) {
	o.publishCount++
}

func (o *testObserver) OnDelivered(_ string, handlers int, err error) {
	o.deliveredCount += handlers
	o.lastErr = err
}

func TestBasicPublishSubscribe(t *testing.T) {
	b := New()
	var got Event
	_, err := b.Subscribe("physics.contact", func(e Event) error {
		got = e
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, b.Publish(NewEvent("physics.contact", "engine", 7, 123)))
	assert.Equal(t, "engine", got.Source)
	assert.Equal(t, uint64(7), got.Frame)
	assert.Equal(t, 123, got.Data)
}

func TestDeliveryFollowsSubscriptionOrder(t *testing.T) {
	b := New()
	var order []int
	for i := 0; i < 5; i++ {
		_, err := b.Subscribe("e", func(Event) error {
			order = append(order, i)
			return nil
		})
		require.NoError(t, err)
	}

	require.NoError(t, b.Publish(NewEvent("e", "s", 0, nil)))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestHandlerErrorsAreJoined(t *testing.T) {
	b := New()
	errA := errors.New("a")
	errB := errors.New("b")
	_, _ = b.Subscribe("x", func(Event) error { return errA })
	_, _ = b.Subscribe("x", func(Event) error { return nil })
	_, _ = b.Subscribe("x", func(Event) error { return errB })

	err := b.Publish(NewEvent("x", "src", 0, nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)

	err = b.PublishBatch(NewEvent("x", "src", 1, nil), NewEvent("y", "src", 1, nil))
	assert.ErrorIs(t, err, errA)
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	count := 0
	sub, err := b.Subscribe("e", func(Event) error { count++; return nil })
	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID())
	assert.Equal(t, "e", sub.EventType())

	_ = b.Publish(NewEvent("e", "s", 0, nil))
	require.NoError(t, b.Unsubscribe(sub))
	require.NoError(t, sub.Cancel())
	assert.False(t, sub.IsActive())
	_ = b.Publish(NewEvent("e", "s", 0, nil))

	assert.Equal(t, 1, count)
	assert.NoError(t, b.Unsubscribe(nil))
}

func TestSubscribeRejectsNilHandler(t *testing.T) {
	_, err := New().Subscribe("e", nil)
	assert.Error(t, err)
}

func TestObserverMetricsOptional(t *testing.T) {
	b := New()
	_, _ = b.Subscribe("e", func(Event) error { return nil })
	_ = b.Publish(NewEvent("e", "s", 0, nil))
	assert.Zero(t, b.GetMetrics().Published)

	obs := &testObserver{}
	b.AddObserver(obs)
	_ = b.Publish(NewEvent("e", "s", 0, nil))

	m := b.GetMetrics()
	assert.Equal(t, uint64(1), m.Published)
	assert.Equal(t, uint64(1), m.DeliveredHandlers)
	assert.Equal(t, uint64(1), m.SubscribersActive)
	assert.Equal(t, 1, obs.publishCount)
	assert.Equal(t, 1, obs.deliveredCount)

	b.RemoveObserver(obs)
	_ = b.Publish(NewEvent("e", "s", 0, nil))
	assert.Equal(t, 1, obs.publishCount)
}
