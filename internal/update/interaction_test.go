package update

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriInspect/internal/models"
)

const (
	background models.WidgetID = 1
	inputA     models.WidgetID = 2
	inputB     models.WidgetID = 3
)

func newTracker() *InteractionTracker {
	it := NewInteractionTracker()
	it.SetZones([]Zone{
		{Widget: background, Rect: Rect{W: 80, H: 24}},
		{Widget: inputA, Rect: Rect{X: 2, Y: 10, W: 20, H: 3}},
		{Widget: inputB, Rect: Rect{X: 30, Y: 10, W: 20, H: 3}},
	})
	return it
}

func mouse(x, y int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func click(it *InteractionTracker, x, y int) {
	it.HandleMouse(mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft))
	it.HandleMouse(mouse(x, y, tea.MouseActionRelease, tea.MouseButtonLeft))
}

func TestTrackerHoverAndClick(t *testing.T) {
	it := newTracker()

	it.HandleMouse(mouse(5, 11, tea.MouseActionMotion, tea.MouseButtonNone))
	require.Equal(t, []models.InteractionEvent{{WidgetID: inputA, State: models.InteractionHovered}}, it.Drain())

	click(it, 5, 11)
	require.Equal(t, []models.InteractionEvent{
		{WidgetID: inputA, State: models.InteractionPressed},
		{WidgetID: inputA, State: models.InteractionHovered},
	}, it.Drain())
	require.Equal(t, models.InteractionHovered, it.State(inputA))
	require.Nil(t, it.Drain())
}

func TestTrackerTopmostZoneBlocksBackground(t *testing.T) {
	it := newTracker()

	it.HandleMouse(mouse(35, 11, tea.MouseActionPress, tea.MouseButtonLeft))
	require.Equal(t, models.InteractionPressed, it.State(inputB))
	require.Equal(t, models.InteractionNone, it.State(background))

	it.HandleMouse(mouse(35, 11, tea.MouseActionRelease, tea.MouseButtonLeft))
	it.HandleMouse(mouse(70, 2, tea.MouseActionMotion, tea.MouseButtonNone))
	require.Equal(t, models.InteractionHovered, it.State(background))
	require.Equal(t, models.InteractionNone, it.State(inputB))
}

func TestTrackerOnlyQueuesChanges(t *testing.T) {
	it := newTracker()

	it.HandleMouse(mouse(5, 11, tea.MouseActionMotion, tea.MouseButtonNone))
	it.HandleMouse(mouse(6, 11, tea.MouseActionMotion, tea.MouseButtonNone))
	it.HandleMouse(mouse(7, 12, tea.MouseActionMotion, tea.MouseButtonNone))
	require.Len(t, it.Drain(), 1)
}

func TestTrackerPressStaysUntilRelease(t *testing.T) {
	it := newTracker()

	it.HandleMouse(mouse(5, 11, tea.MouseActionPress, tea.MouseButtonLeft))
	it.HandleMouse(mouse(35, 11, tea.MouseActionMotion, tea.MouseButtonLeft))
	require.Equal(t, models.InteractionPressed, it.State(inputA))
	require.Equal(t, models.InteractionNone, it.State(inputB))
}

func TestTrackerIgnoresWheelAndRightButton(t *testing.T) {
	it := newTracker()

	it.HandleMouse(mouse(5, 11, tea.MouseActionPress, tea.MouseButtonWheelUp))
	require.Nil(t, it.Drain())

	it.HandleMouse(mouse(5, 11, tea.MouseActionPress, tea.MouseButtonRight))
	require.Equal(t, []models.InteractionEvent{{WidgetID: inputA, State: models.InteractionHovered}}, it.Drain())
}

func TestTrackerZoneOf(t *testing.T) {
	it := newTracker()
	r, ok := it.ZoneOf(inputB)
	require.True(t, ok)
	require.True(t, r.Contains(30, 12))
	require.False(t, r.Contains(50, 12))

	_, ok = it.ZoneOf(99)
	require.False(t, ok)
}
