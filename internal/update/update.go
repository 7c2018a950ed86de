package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriInspect/internal/dispatcher"
	"github.com/Rorical/RoriInspect/internal/eventbus"
	"github.com/Rorical/RoriInspect/internal/models"
)

// HandleCoreEvent folds a core event into UI state. Created entities are
// queued for the next tick rather than projected immediately.
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg dispatcher.CoreEventMsg) {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.StateUpdateEvent:
		appModel.Pending = append(appModel.Pending, event.Created...)
		appModel.Characters = event.Characters
		appModel.Items = event.Items

		if event.Error != nil {
			appModel.Status = "Error: " + event.Error.Error()
		}
	}
}

// DrainPending hands over the entities announced since the last tick
func DrainPending(appModel *models.AppModel) []models.DisplayEntity {
	batch := appModel.Pending
	appModel.Pending = nil
	return batch
}

type TickMsg time.Time

func TickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
}

// SendCreate asks core to spawn an entity, reporting failures on the status bar
func SendCreate(appModel *models.AppModel, eb *eventbus.EventBus, event eventbus.UIEvent) bool {
	if !appModel.CoreReady {
		appModel.Status = "Simulation not available"
		return false
	}
	if err := eb.SendToCore(event); err != nil {
		appModel.Status = "Error sending event: " + err.Error()
		return false
	}
	return true
}
