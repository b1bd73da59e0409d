package cache

import (
	"context"
	"testing"
	"time"

	"checkout_hub/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan entities.Notification) entities.Notification {
	t.Helper()
	select {
	case n, ok := <-ch:
		require.True(t, ok, "channel closed")
		return n
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for notification")
	}
	return entities.Notification{}
}

func TestLocalBroker_FanOut(t *testing.T) {
	b := NewLocalBroker()
	ctx := context.Background()

	first, cancelFirst, err := b.Subscribe(ctx)
	require.NoError(t, err)
	defer cancelFirst()
	second, cancelSecond, err := b.Subscribe(ctx)
	require.NoError(t, err)
	defer cancelSecond()

	require.NoError(t, b.Publish(ctx, entities.Notification{ID: "n1", Message: "Pagamento aprovado"}))

	assert.Equal(t, "n1", receive(t, first).ID)
	assert.Equal(t, "n1", receive(t, second).ID)
}

func TestLocalBroker_CancelClosesChannel(t *testing.T) {
	b := NewLocalBroker()
	ch, cancel, err := b.Subscribe(context.Background())
	require.NoError(t, err)

	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)
	require.NoError(t, b.Publish(context.Background(), entities.Notification{ID: "n1"}))
	assert.Empty(t, b.subs)
}

func TestLocalBroker_ContextDoneUnsubscribes(t *testing.T) {
	b := NewLocalBroker()
	ctx, cancel := context.WithCancel(context.Background())
	ch, _, err := b.Subscribe(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("subscription was not closed")
	}
}

func TestLocalBroker_SlowSubscriberDoesNotBlock(t *testing.T) {
	b := NewLocalBroker()
	_, cancel, err := b.Subscribe(context.Background())
	require.NoError(t, err)
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*2; i++ {
			_ = b.Publish(context.Background(), entities.Notification{ID: "n"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
}
