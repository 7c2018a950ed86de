package scene

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriInspect/internal/models"
)

func entry(parent models.WidgetID, src models.EntityID, text string) models.AppendChildCommand {
	return models.AppendChildCommand{Parent: parent, Source: src, Content: models.Label{Text: text, FontSize: models.LabelFontSize}}
}

func TestTreeApplyAppendsInOrder(t *testing.T) {
	tree := NewTree()
	list := tree.Spawn(KindContainer, models.Label{})

	require.NoError(t, tree.Apply([]models.AppendChildCommand{entry(list, 1, "Toby"), entry(list, 3, "Swann")}))
	require.NoError(t, tree.Apply([]models.AppendChildCommand{entry(list, 4, "Dan")}))

	require.Equal(t, []string{"Toby", "Swann", "Dan"}, tree.Labels(list))

	w, ok := tree.Get(list)
	require.True(t, ok)
	last, ok := tree.Get(w.Children[len(w.Children)-1])
	require.True(t, ok)
	require.Equal(t, models.EntityID(4), last.Source)
	require.Equal(t, list, last.Parent)
}

func TestTreeApplyRejectsDuplicateEntity(t *testing.T) {
	tree := NewTree()
	list := tree.Spawn(KindContainer, models.Label{})
	require.NoError(t, tree.Apply([]models.AppendChildCommand{entry(list, 1, "Toby")}))

	err := tree.Apply([]models.AppendChildCommand{entry(list, 1, "Toby"), entry(list, 2, "Swann")})
	require.ErrorIs(t, err, ErrDuplicateEntry)
	require.Equal(t, []string{"Toby", "Swann"}, tree.Labels(list))
}

func TestTreeApplyRejectsBadParent(t *testing.T) {
	tree := NewTree()
	text := tree.Spawn(KindText, models.Label{Text: "header"})

	require.ErrorIs(t, tree.Apply([]models.AppendChildCommand{entry(999, 1, "x")}), ErrUnknownWidget)
	require.ErrorIs(t, tree.Apply([]models.AppendChildCommand{entry(text, 2, "x")}), ErrNotContainer)
	require.Zero(t, tree.ChildCount(text))
}

func TestBuildOverlay(t *testing.T) {
	tree := NewTree()
	o, err := BuildOverlay(tree)
	require.NoError(t, err)

	display, ok := tree.Get(o.Display)
	require.True(t, ok)
	require.Equal(t, []models.WidgetID{o.CharacterBox, o.ItemBox, o.Forms}, display.Children)

	require.Equal(t, []string{"Character List"}, tree.Labels(o.CharacterBox))
	require.Equal(t, []string{"Item List"}, tree.Labels(o.ItemBox))
	require.Zero(t, tree.ChildCount(o.CharacterList))
	require.Zero(t, tree.ChildCount(o.ItemList))

	roots := o.Roots()
	require.Equal(t, o.CharacterList, roots[models.Character].ContainerID)
	require.Equal(t, o.ItemList, roots[models.Item].ContainerID)

	for _, f := range o.FormList() {
		input, ok := tree.Get(f.Input)
		require.True(t, ok)
		require.Equal(t, KindTextInput, input.Kind)
		require.Equal(t, "Name", input.Label.Text)

		button, ok := tree.Get(f.Button)
		require.True(t, ok)
		require.Equal(t, KindButton, button.Kind)
		require.Equal(t, f.Container, button.Parent)
	}
	require.Equal(t, models.Character, o.CharacterForm.Category)
	require.Equal(t, models.Item, o.ItemForm.Category)
}
