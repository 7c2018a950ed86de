package update

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriInspect/internal/dispatcher"
	"github.com/Rorical/RoriInspect/internal/eventbus"
	"github.com/Rorical/RoriInspect/internal/models"
)

func TestHandleCoreEventQueuesAndReportsDelay(t *testing.T) {
	m := &models.AppModel{}
	HandleCoreEvent(m, dispatcher.CoreEventMsg{Event: eventbus.StateUpdateEvent{
		Created:    []models.DisplayEntity{{DisplayName: "Swann", Category: models.Character}},
		Characters: 2,
		Error:      errors.New("delivery delayed: circuit breaker is open"),
	}})

	require.Equal(t, 2, m.Characters)
	require.Equal(t, "Error: delivery delayed: circuit breaker is open", m.Status)
	require.Len(t, DrainPending(m), 1)
	require.Empty(t, m.Pending)
}
