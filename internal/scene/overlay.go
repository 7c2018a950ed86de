package scene

import (
	"fmt"

	"github.com/Rorical/RoriInspect/internal/models"
)

const headerFontSize = 25

// Form is a creation form: a header, a text input and a submit button
type Form struct {
	Container models.WidgetID
	Header    models.WidgetID
	Input     models.WidgetID
	Button    models.WidgetID
	Category  models.Category
}

// Overlay holds the ids of the static inspector layout
type Overlay struct {
	Display       models.WidgetID
	CharacterBox  models.WidgetID
	CharacterHead models.WidgetID
	CharacterList models.WidgetID
	ItemBox       models.WidgetID
	ItemHead      models.WidgetID
	ItemList      models.WidgetID
	Forms         models.WidgetID
	CharacterForm Form
	ItemForm      Form
}

// Roots returns the list-root registry of the overlay
func (o Overlay) Roots() map[models.Category]models.ListRoot {
	return map[models.Category]models.ListRoot{
		models.Character: {Category: models.Character, ContainerID: o.CharacterList},
		models.Item:      {Category: models.Item, ContainerID: o.ItemList},
	}
}

// FormList returns the forms in display order
func (o Overlay) FormList() []Form {
	return []Form{o.CharacterForm, o.ItemForm}
}

func text(s string, size int) models.Label {
	return models.Label{Text: s, FontSize: size}
}

// BuildOverlay constructs the inspector layout in t
func BuildOverlay(t *Tree) (Overlay, error) {
	var o Overlay

	// The display root is interactive so pressing the background can take
	// focus away from the inputs.
	o.Display = t.Spawn(KindContainer, models.Label{})

	o.CharacterBox, o.CharacterHead, o.CharacterList = buildListBox(t, "Character List")
	o.ItemBox, o.ItemHead, o.ItemList = buildListBox(t, "Item List")

	o.Forms = t.Spawn(KindContainer, models.Label{})
	o.CharacterForm = buildForm(t, "Create Character", models.Character)
	o.ItemForm = buildForm(t, "Create item", models.Item)

	steps := []struct {
		parent   models.WidgetID
		children []models.WidgetID
	}{
		{o.CharacterBox, []models.WidgetID{o.CharacterHead, o.CharacterList}},
		{o.ItemBox, []models.WidgetID{o.ItemHead, o.ItemList}},
		{o.CharacterForm.Container, []models.WidgetID{o.CharacterForm.Header, o.CharacterForm.Input, o.CharacterForm.Button}},
		{o.ItemForm.Container, []models.WidgetID{o.ItemForm.Header, o.ItemForm.Input, o.ItemForm.Button}},
		{o.Forms, []models.WidgetID{o.CharacterForm.Container, o.ItemForm.Container}},
		{o.Display, []models.WidgetID{o.CharacterBox, o.ItemBox, o.Forms}},
	}
	for _, step := range steps {
		if err := t.AddChildren(step.parent, step.children...); err != nil {
			return Overlay{}, fmt.Errorf("build overlay: %w", err)
		}
	}
	return o, nil
}

func buildListBox(t *Tree, header string) (box, head, list models.WidgetID) {
	box = t.Spawn(KindContainer, models.Label{})
	head = t.Spawn(KindText, text(header, headerFontSize))
	list = t.Spawn(KindContainer, models.Label{})
	return box, head, list
}

func buildForm(t *Tree, header string, category models.Category) Form {
	f := Form{Category: category}
	f.Container = t.Spawn(KindContainer, models.Label{})
	f.Header = t.Spawn(KindText, text(header, headerFontSize))
	f.Input = t.Spawn(KindTextInput, text("Name", models.LabelFontSize))
	f.Button = t.Spawn(KindButton, text("Go", models.LabelFontSize))
	return f
}
