package actions

import (
	"fmt"
	"sync"

	"github.com/Rorical/RoriInspect/internal/eventbus"
	"github.com/Rorical/RoriInspect/internal/models"
)

// Action is what a debug button does when pressed
type Action interface {
	Name() string
	// Event builds the UI event for the submitted form text
	Event(input string) eventbus.UIEvent
}

// CreateEntity spawns an entity of a category named after the form input
type CreateEntity struct {
	Category models.Category
}

func (a CreateEntity) Name() string {
	return "create-" + a.Category.String()
}

func (a CreateEntity) Event(input string) eventbus.UIEvent {
	return eventbus.CreateEntityEvent{Name: input, Category: a.Category}
}

// Binding ties a button to its action and the input it submits
type Binding struct {
	Button models.WidgetID
	Input  models.WidgetID
	Action Action
}

// Registry manages the actions bound to buttons
type Registry struct {
	bindings map[models.WidgetID]Binding
	mu       sync.RWMutex
}

// NewRegistry creates a new action registry
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[models.WidgetID]Binding),
	}
}

// Register binds a button; rebinding a button replaces the old binding
func (r *Registry) Register(b Binding) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bindings[b.Button] = b
}

// Lookup retrieves the binding of a button
func (r *Registry) Lookup(button models.WidgetID) (Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, exists := r.bindings[button]
	return b, exists
}

// ForInput finds the binding that submits the given input
func (r *Registry) ForInput(input models.WidgetID) (Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.bindings {
		if b.Input == input {
			return b, true
		}
	}
	return Binding{}, false
}

// Trigger builds the event for a pressed button
func (r *Registry) Trigger(button models.WidgetID, input string) (eventbus.UIEvent, error) {
	b, ok := r.Lookup(button)
	if !ok {
		return nil, fmt.Errorf("button %d has no action", button)
	}
	return b.Action.Event(input), nil
}
