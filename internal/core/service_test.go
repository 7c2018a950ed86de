package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriInspect/internal/eventbus"
	"github.com/Rorical/RoriInspect/internal/models"
)

func nextUpdate(t *testing.T, eb *eventbus.EventBus) eventbus.StateUpdateEvent {
	t.Helper()
	select {
	case ev := <-eb.CoreToUI():
		update, ok := ev.(eventbus.StateUpdateEvent)
		require.True(t, ok, "unexpected event %T", ev)
		return update
	case <-time.After(2 * time.Second):
		t.Fatal("no state update from core")
	}
	return eventbus.StateUpdateEvent{}
}

func TestSimServicePushesSeedWorld(t *testing.T) {
	eb := eventbus.NewEventBus()
	svc := NewSimService(NewWorldState(), eb, []SeedEntity{
		{Name: "Spoon", Category: models.Item},
		{Name: "Toby", Category: models.Character},
	})
	svc.Start()
	defer svc.Stop()

	require.True(t, svc.IsReady())
	update := nextUpdate(t, eb)
	require.Equal(t, []string{"Spoon", "Toby"}, names(update.Created))
	require.Equal(t, 1, update.Characters)
	require.Equal(t, 1, update.Items)
}

func TestSimServiceSpawnsOnCreateEvent(t *testing.T) {
	eb := eventbus.NewEventBus()
	svc := NewSimService(NewWorldState(), eb, nil)
	svc.Start()
	defer svc.Stop()

	require.Empty(t, nextUpdate(t, eb).Created)

	require.NoError(t, eb.SendToCore(eventbus.CreateEntityEvent{Name: "Fork", Category: models.Item}))
	update := nextUpdate(t, eb)
	require.Equal(t, []string{"Fork"}, names(update.Created))
	require.Equal(t, 1, update.Items)

	// delivered once only
	require.NoError(t, eb.SendToCore(eventbus.CreateEntityEvent{Name: "Dan", Category: models.Character}))
	require.Equal(t, []string{"Dan"}, names(nextUpdate(t, eb).Created))
}

func TestSimServiceDefersWhenBusIsFull(t *testing.T) {
	eb := eventbus.NewEventBusWithCapacity(1)
	svc := NewSimService(NewWorldState(), eb, []SeedEntity{{Name: "Toby", Category: models.Character}})
	svc.Start()
	defer svc.Stop()

	// the seed update fills the only slot, so this spawn cannot be pushed yet
	require.NoError(t, eb.SendToCore(eventbus.CreateEntityEvent{Name: "Swann", Category: models.Character}))
	require.Eventually(t, func() bool { return svc.state.CreatedCount() == 2 }, 2*time.Second, 10*time.Millisecond)

	var delivered []string
	deadline := time.After(3 * time.Second)
	for len(delivered) < 2 {
		select {
		case ev := <-eb.CoreToUI():
			delivered = append(delivered, names(ev.(eventbus.StateUpdateEvent).Created)...)
		case <-deadline:
			t.Fatalf("delivered %v, want both entities", delivered)
		}
	}
	require.Equal(t, []string{"Toby", "Swann"}, delivered)
}

func TestSimServiceDeliversAfterBreakerOpens(t *testing.T) {
	eb := eventbus.NewEventBusWithBreaker(1, eventbus.NewCircuitBreaker(2, 300*time.Millisecond))
	svc := NewSimService(NewWorldState(), eb, []SeedEntity{{Name: "Toby", Category: models.Character}})
	svc.Start()
	defer svc.Stop()

	// the seed update is never drained, so the push and one retry both fail
	require.NoError(t, eb.SendToCore(eventbus.CreateEntityEvent{Name: "Swann", Category: models.Character}))
	require.Eventually(t, func() bool {
		return eb.GetCircuitBreakerState() == eventbus.CircuitOpen
	}, 2*time.Second, 5*time.Millisecond)

	require.Equal(t, []string{"Toby"}, names(nextUpdate(t, eb).Created))

	update := nextUpdate(t, eb)
	require.Equal(t, []string{"Swann"}, names(update.Created))
	require.Equal(t, 2, update.Characters)
	require.ErrorIs(t, update.Error, eventbus.ErrCircuitOpen)
	require.Equal(t, eventbus.CircuitClosed, eb.GetCircuitBreakerState())

	// core side is usable again and later updates carry no stale error
	require.NoError(t, eb.SendToCore(eventbus.CreateEntityEvent{Name: "Fork", Category: models.Item}))
	update = nextUpdate(t, eb)
	require.Equal(t, []string{"Fork"}, names(update.Created))
	require.NoError(t, update.Error)
}

func TestSimServiceStopWithoutStart(t *testing.T) {
	svc := NewSimService(NewWorldState(), eventbus.NewEventBus(), nil)
	svc.Stop()
	require.False(t, svc.IsReady())
}
