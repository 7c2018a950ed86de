package core

import "github.com/Rorical/RoriInspect/internal/models"

// ForeignPress decides what a press on a widget outside the focus registry does
type ForeignPress int

const (
	// IgnoreForeignPress leaves focus untouched
	IgnoreForeignPress ForeignPress = iota
	// BlurOnForeignPress deactivates every registered input
	BlurOnForeignPress
)

// FocusPolicy tunes Reconcile
type FocusPolicy struct {
	// EmitUnchanged emits a command for every registered widget on a press
	// tick, not only for the ones whose flag changes.
	EmitUnchanged bool
	ForeignPress  ForeignPress
}

// DefaultFocusPolicy re-marks the whole registry and ignores foreign presses
func DefaultFocusPolicy() FocusPolicy {
	return FocusPolicy{EmitUnchanged: true, ForeignPress: IgnoreForeignPress}
}

// Reconcile computes the focus commands for one tick. The last Pressed
// event in the batch selects the active widget and every other registered
// widget is deactivated in the same batch. Without a Pressed event no
// commands are emitted and the previous focus persists.
func Reconcile(events []models.InteractionEvent, widgets []models.FocusableWidget, policy FocusPolicy) []models.SetActiveCommand {
	registered := make(map[models.WidgetID]bool, len(widgets))
	for _, w := range widgets {
		registered[w.ID] = true
	}

	var (
		target  models.WidgetID
		pressed bool
	)
	for _, ev := range events {
		if ev.State != models.InteractionPressed {
			continue
		}
		if !registered[ev.WidgetID] && policy.ForeignPress == IgnoreForeignPress {
			continue
		}
		// overwrite: last press wins
		target = ev.WidgetID
		pressed = true
	}
	if !pressed {
		return nil
	}

	// target may be a foreign widget under BlurOnForeignPress, which leaves
	// every registered widget inactive.
	cmds := make([]models.SetActiveCommand, 0, len(widgets))
	for _, w := range widgets {
		active := w.ID == target
		if !policy.EmitUnchanged && w.Active == active {
			continue
		}
		cmds = append(cmds, models.SetActiveCommand{Widget: w.ID, Active: active})
	}
	return cmds
}

// ApplyFocus returns the registry after cmds are applied
func ApplyFocus(widgets []models.FocusableWidget, cmds []models.SetActiveCommand) []models.FocusableWidget {
	next := make([]models.FocusableWidget, len(widgets))
	copy(next, widgets)
	if len(cmds) == 0 {
		return next
	}

	index := make(map[models.WidgetID]int, len(next))
	for i, w := range next {
		index[w.ID] = i
	}
	for _, cmd := range cmds {
		if i, ok := index[cmd.Widget]; ok {
			next[i].Active = cmd.Active
		}
	}
	return next
}
