package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"scrollseek/internal/domain"
)

func TestPublishReachesSubscriber(t *testing.T) {
	b := New()
	defer b.Close()

	received := make(chan DomainEvent, 1)
	b.Subscribe(EventSearchStarted, func(e DomainEvent) {
		received <- e
	})

	b.Publish(SearchStartedEvent{Query: "foo", Generation: 1})

	select {
	case e := <-received:
		started, ok := e.(SearchStartedEvent)
		require.True(t, ok, "expected a SearchStartedEvent")
		require.Equal(t, "foo", started.Query)
		require.Equal(t, uint64(1), started.Generation)
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber never received the event")
	}
}

func TestSubscriberOnlySeesItsType(t *testing.T) {
	b := New()
	defer b.Close()

	var mu sync.Mutex
	var got []domain.EventType
	b.Subscribe(EventSearchCleared, func(e DomainEvent) {
		mu.Lock()
		got = append(got, e.Type())
		mu.Unlock()
	})

	b.Publish(SearchStartedEvent{Query: "x", Generation: 1})
	b.Publish(SearchClearedEvent{})
	b.Close()

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []domain.EventType{EventSearchCleared}, got,
		"subscriber should only receive its subscribed type")
}

func TestEventsKeepPublishOrder(t *testing.T) {
	b := New()

	var mu sync.Mutex
	var gens []uint64
	b.Subscribe(EventResultsPublished, func(e DomainEvent) {
		mu.Lock()
		gens = append(gens, e.(ResultsPublishedEvent).Generation)
		mu.Unlock()
	})

	for g := uint64(1); g <= 20; g++ {
		b.Publish(ResultsPublishedEvent{Generation: g})
	}
	b.Close()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, gens, 20, "no events should be dropped at this volume")
	for i := 1; i < len(gens); i++ {
		require.Greater(t, gens[i], gens[i-1], "events must arrive in publish order")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()

	var mu sync.Mutex
	count := 0
	unsubscribe := b.Subscribe(EventSearchCleared, func(e DomainEvent) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	b.Publish(SearchClearedEvent{})
	// Let the first event flush through before unsubscribing
	time.Sleep(50 * time.Millisecond)
	unsubscribe()
	b.Publish(SearchClearedEvent{})
	b.Close()

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 1, count, "events after unsubscribe must not be delivered")
}

func TestPanickingHandlerDoesNotKillBus(t *testing.T) {
	b := New()

	b.Subscribe(EventError, func(e DomainEvent) {
		panic("handler blew up")
	})
	received := make(chan struct{}, 1)
	b.Subscribe(EventError, func(e DomainEvent) {
		received <- struct{}{}
	})

	b.Publish(ErrorEvent{Message: "boom"})

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("second subscriber should still be delivered after a panic")
	}
	b.Close()
}

func TestCloseDrainsQueuedEvents(t *testing.T) {
	b := New()

	var mu sync.Mutex
	count := 0
	b.Subscribe(EventResultsPublished, func(e DomainEvent) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	for i := 0; i < 10; i++ {
		b.Publish(ResultsPublishedEvent{Generation: uint64(i + 1)})
	}
	b.Close()

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 10, count, "Close should drain already-queued events")
}
