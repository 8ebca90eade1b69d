package eventbus

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/beaconship/backend/internal/domain/events"
	"github.com/beaconship/backend/internal/domain/fleet"
	"github.com/stretchr/testify/assert"
)

func sunkEvent(id string) *events.ShipEvent {
	return events.NewShipEvent(events.ShipSunk, fleet.ShipRecord{ID: fleet.ShipID(id)}, time.Now())
}

func TestEventBus_Subscribe(t *testing.T) {
	bus := NewEventBus()

	var received atomic.Bool
	unsub := bus.Subscribe(events.ShipSunk, events.HandlerFunc(func(event events.Event) error {
		received.Store(true)
		return nil
	}))
	defer unsub()

	bus.Publish(sunkEvent("A"))

	// Close 等待已发布事件处理完成
	bus.Close()
	assert.True(t, received.Load(), "handler should have received the event")
}

func TestEventBus_MultipleHandlers(t *testing.T) {
	bus := NewEventBus()

	var count atomic.Int32
	for i := 0; i < 3; i++ {
		bus.Subscribe(events.ShipSunk, events.HandlerFunc(func(event events.Event) error {
			count.Add(1)
			return nil
		}))
	}

	bus.Publish(sunkEvent("A"))
	bus.Close()

	assert.Equal(t, int32(3), count.Load())
}

func TestEventBus_SubscribeMultiple(t *testing.T) {
	bus := NewEventBus()

	var mu sync.Mutex
	var seen []events.EventType
	bus.SubscribeMultiple(events.AllShipEvents, events.HandlerFunc(func(event events.Event) error {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, event.Type())
		return nil
	}))

	for _, typ := range events.AllShipEvents {
		bus.Publish(events.NewShipEvent(typ, fleet.ShipRecord{ID: "A"}, time.Now()))
	}
	bus.Close()

	assert.ElementsMatch(t, events.AllShipEvents, seen)
}

func TestEventBus_Unsubscribe(t *testing.T) {
	bus := NewEventBus()

	var first, second atomic.Int32
	unsub := bus.Subscribe(events.ShipSunk, events.HandlerFunc(func(event events.Event) error {
		first.Add(1)
		return nil
	}))
	bus.Subscribe(events.ShipSunk, events.HandlerFunc(func(event events.Event) error {
		second.Add(1)
		return nil
	}))

	unsub()
	unsub() // 重复调用无副作用

	bus.Publish(sunkEvent("A"))
	bus.Close()

	assert.Equal(t, int32(0), first.Load())
	assert.Equal(t, int32(1), second.Load())
}

func TestEventBus_HandlerErrorAndPanic(t *testing.T) {
	bus := NewEventBus()

	var ok atomic.Bool
	bus.Subscribe(events.ShipSunk, events.HandlerFunc(func(event events.Event) error {
		return errors.New("boom")
	}))
	bus.Subscribe(events.ShipSunk, events.HandlerFunc(func(event events.Event) error {
		panic("handler crashed")
	}))
	bus.Subscribe(events.ShipSunk, events.HandlerFunc(func(event events.Event) error {
		ok.Store(true)
		return nil
	}))

	bus.Publish(sunkEvent("A"))
	bus.Close()

	assert.True(t, ok.Load(), "other handlers must still run")
}

func TestEventBus_PublishDoesNotBlock(t *testing.T) {
	bus := NewEventBus()

	release := make(chan struct{})
	bus.Subscribe(events.ShipSunk, events.HandlerFunc(func(event events.Event) error {
		<-release
		return nil
	}))

	done := make(chan struct{})
	go func() {
		bus.Publish(sunkEvent("A"))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a slow handler")
	}

	close(release)
	bus.Close()
}

func TestEventBus_PublishAfterClose(t *testing.T) {
	bus := NewEventBus()

	var count atomic.Int32
	bus.Subscribe(events.ShipSunk, events.HandlerFunc(func(event events.Event) error {
		count.Add(1)
		return nil
	}))

	bus.Close()
	bus.Publish(sunkEvent("A"))
	bus.Close()

	assert.Equal(t, int32(0), count.Load())
}
