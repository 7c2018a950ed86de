package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriInspect/internal/models"
)

// Rect is a cell rectangle on screen
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Zone is the screen area of an interactive widget
type Zone struct {
	Widget models.WidgetID
	Rect   Rect
}

// InteractionTracker turns pointer input into per-widget interaction
// changes. Zones are kept in paint order; the last zone under the pointer
// is on top and blocks the ones below it.
type InteractionTracker struct {
	zones   []Zone
	states  map[models.WidgetID]models.Interaction
	pending []models.InteractionEvent

	x, y    int
	seen    bool // pointer position known
	pressed models.WidgetID
	down    bool
}

func NewInteractionTracker() *InteractionTracker {
	return &InteractionTracker{
		states: make(map[models.WidgetID]models.Interaction),
	}
}

// SetZones replaces the hit zones after a layout pass
func (it *InteractionTracker) SetZones(zones []Zone) {
	it.zones = append(it.zones[:0], zones...)
	if it.seen {
		it.refresh()
	}
}

// HandleMouse records a pointer message
func (it *InteractionTracker) HandleMouse(msg tea.MouseMsg) {
	if tea.MouseEvent(msg).IsWheel() {
		return
	}
	it.x, it.y, it.seen = msg.X, msg.Y, true

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			it.down = true
			it.pressed = it.hit()
		}
	case tea.MouseActionRelease:
		it.down = false
		it.pressed = 0
	}
	it.refresh()
}

func (it *InteractionTracker) hit() models.WidgetID {
	for i := len(it.zones) - 1; i >= 0; i-- {
		if it.zones[i].Rect.Contains(it.x, it.y) {
			return it.zones[i].Widget
		}
	}
	return 0
}

// refresh recomputes every zone's interaction and queues the changes
func (it *InteractionTracker) refresh() {
	top := it.hit()
	for _, z := range it.zones {
		state := models.InteractionNone
		switch {
		case it.down && z.Widget == it.pressed:
			state = models.InteractionPressed
		case !it.down && z.Widget == top:
			state = models.InteractionHovered
		}
		if it.states[z.Widget] == state {
			continue
		}
		it.states[z.Widget] = state
		it.pending = append(it.pending, models.InteractionEvent{WidgetID: z.Widget, State: state})
	}
}

// ZoneOf returns the hit zone of a widget
func (it *InteractionTracker) ZoneOf(id models.WidgetID) (Rect, bool) {
	for _, z := range it.zones {
		if z.Widget == id {
			return z.Rect, true
		}
	}
	return Rect{}, false
}

// State returns the current interaction of a widget
func (it *InteractionTracker) State(id models.WidgetID) models.Interaction {
	return it.states[id]
}

// Drain returns the changes queued since the last call, oldest first
func (it *InteractionTracker) Drain() []models.InteractionEvent {
	if len(it.pending) == 0 {
		return nil
	}
	batch := it.pending
	it.pending = nil
	return batch
}
