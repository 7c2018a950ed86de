// Package scene holds the host-owned UI tree. Widgets are addressed by
// WidgetID; nothing outside the tree keeps references to them.
package scene

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Rorical/RoriInspect/internal/models"
)

var (
	ErrUnknownWidget  = errors.New("unknown widget")
	ErrNotContainer   = errors.New("widget is not a container")
	ErrDuplicateEntry = errors.New("entity already projected")
)

type Kind int

const (
	KindContainer Kind = iota
	KindText
	KindTextInput
	KindButton
)

type Widget struct {
	ID       models.WidgetID
	Kind     Kind
	Parent   models.WidgetID
	Label    models.Label
	Children []models.WidgetID
	Source   models.EntityID // set on list entries only
}

// Tree is an arena of widgets. Id 0 is never allocated.
type Tree struct {
	mu        sync.RWMutex
	widgets   map[models.WidgetID]*Widget
	next      models.WidgetID
	projected map[models.EntityID]models.WidgetID
}

func NewTree() *Tree {
	return &Tree{
		widgets:   make(map[models.WidgetID]*Widget),
		next:      1,
		projected: make(map[models.EntityID]models.WidgetID),
	}
}

func (t *Tree) alloc(kind Kind, label models.Label) *Widget {
	w := &Widget{ID: t.next, Kind: kind, Label: label}
	t.widgets[w.ID] = w
	t.next++
	return w
}

// Spawn adds a detached widget and returns its id
func (t *Tree) Spawn(kind Kind, label models.Label) models.WidgetID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.alloc(kind, label).ID
}

// AddChildren attaches existing widgets under parent, in order
func (t *Tree) AddChildren(parent models.WidgetID, children ...models.WidgetID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, err := t.container(parent)
	if err != nil {
		return err
	}
	for _, id := range children {
		child, ok := t.widgets[id]
		if !ok {
			return fmt.Errorf("child %d: %w", id, ErrUnknownWidget)
		}
		child.Parent = parent
		p.Children = append(p.Children, id)
	}
	return nil
}

func (t *Tree) container(id models.WidgetID) (*Widget, error) {
	w, ok := t.widgets[id]
	if !ok {
		return nil, fmt.Errorf("widget %d: %w", id, ErrUnknownWidget)
	}
	if w.Kind != KindContainer {
		return nil, fmt.Errorf("widget %d: %w", id, ErrNotContainer)
	}
	return w, nil
}

// Apply appends one text child per command, in command order. A command
// that fails is skipped and the rest of the batch still applies; the
// failures are returned joined.
func (t *Tree) Apply(cmds []models.AppendChildCommand) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var errs []error
	for _, cmd := range cmds {
		if err := t.appendEntry(cmd); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (t *Tree) appendEntry(cmd models.AppendChildCommand) error {
	parent, err := t.container(cmd.Parent)
	if err != nil {
		return err
	}
	if existing, ok := t.projected[cmd.Source]; ok {
		return fmt.Errorf("entity %d (entry %d): %w", cmd.Source, existing, ErrDuplicateEntry)
	}

	entry := t.alloc(KindText, cmd.Content)
	entry.Parent = parent.ID
	entry.Source = cmd.Source
	parent.Children = append(parent.Children, entry.ID)
	t.projected[cmd.Source] = entry.ID
	return nil
}

// Get returns a copy of the widget
func (t *Tree) Get(id models.WidgetID) (Widget, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	w, ok := t.widgets[id]
	if !ok {
		return Widget{}, false
	}
	cp := *w
	cp.Children = append([]models.WidgetID(nil), w.Children...)
	return cp, true
}

// Labels returns the labels of the direct text children of a container
func (t *Tree) Labels(id models.WidgetID) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	w, ok := t.widgets[id]
	if !ok {
		return nil
	}
	labels := make([]string, 0, len(w.Children))
	for _, c := range w.Children {
		if child := t.widgets[c]; child != nil && child.Kind == KindText {
			labels = append(labels, child.Label.Text)
		}
	}
	return labels
}

// ChildCount returns the number of direct children of a widget
func (t *Tree) ChildCount(id models.WidgetID) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if w, ok := t.widgets[id]; ok {
		return len(w.Children)
	}
	return 0
}
