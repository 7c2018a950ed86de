package core

import "github.com/Rorical/RoriInspect/internal/models"

// Sync projects newly created entities into append commands against the
// list root of their category. Entities whose category has no registered
// root are skipped. Command order follows the delivery order of newEntities.
func Sync(newEntities []models.DisplayEntity, roots map[models.Category]models.ListRoot) []models.AppendChildCommand {
	if len(newEntities) == 0 {
		return nil
	}

	cmds := make([]models.AppendChildCommand, 0, len(newEntities))
	for _, entity := range newEntities {
		root, ok := roots[entity.Category]
		if !ok {
			continue
		}
		cmds = append(cmds, models.AppendChildCommand{
			Parent:  root.ContainerID,
			Source:  entity.ID,
			Content: RenderLabel(entity.DisplayName),
		})
	}
	return cmds
}

// RenderLabel renders a display name as a plain list entry
func RenderLabel(displayName string) models.Label {
	return models.Label{
		Text:     displayName,
		FontSize: models.LabelFontSize,
	}
}
