package models

// Category routes an entity to the UI list that displays it
type Category int

const (
	Character Category = iota
	Item
)

func (c Category) String() string {
	switch c {
	case Character:
		return "character"
	case Item:
		return "item"
	}
	return "unknown"
}

// EntityID identifies an entity in the simulated world
type EntityID uint64

// WidgetID addresses a widget in the host-owned UI tree
type WidgetID uint32

// DisplayEntity is the read-only view of a world entity the overlay lists
type DisplayEntity struct {
	ID          EntityID
	DisplayName string
	Category    Category
}

// ListRoot is the container that receives one entry per entity of a category
type ListRoot struct {
	Category    Category
	ContainerID WidgetID
}

// Interaction is the pointer state of a widget
type Interaction int

const (
	InteractionNone Interaction = iota
	InteractionHovered
	InteractionPressed
)

func (i Interaction) String() string {
	switch i {
	case InteractionHovered:
		return "hovered"
	case InteractionPressed:
		return "pressed"
	}
	return "none"
}

// InteractionEvent reports that a widget's interaction changed this tick
type InteractionEvent struct {
	WidgetID WidgetID
	State    Interaction
}

// FocusableWidget is a text input that can hold keyboard focus
type FocusableWidget struct {
	ID     WidgetID
	Active bool
}

// LabelFontSize is the size, in logical units, list entries are rendered at
const LabelFontSize = 20

// Label is rendered plain text content
type Label struct {
	Text     string
	FontSize int
	Color    string // empty means the default foreground
}

// AppendChildCommand appends a label as the last child of Parent
type AppendChildCommand struct {
	Parent  WidgetID
	Source  EntityID // entity the entry projects
	Content Label
}

// SetActiveCommand marks a text input as accepting (or refusing) keystrokes
type SetActiveCommand struct {
	Widget WidgetID
	Active bool
}
