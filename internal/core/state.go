package core

import (
	"sync"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/Rorical/RoriInspect/internal/models"
)

// NameData is the display name component
type NameData struct {
	Value string
}

var (
	Name         = donburi.NewComponentType[NameData]()
	CharacterTag = donburi.NewTag()
	ItemTag      = donburi.NewTag()
)

var (
	characterQuery = donburi.NewQuery(filter.Contains(CharacterTag))
	itemQuery      = donburi.NewQuery(filter.Contains(ItemTag))
)

// WorldState owns the simulated world. The ECS is the single source of
// truth; the creation log only remembers insertion order.
type WorldState struct {
	mu      sync.RWMutex
	world   donburi.World
	created []donburi.Entity // append-only, world insertion order
}

func NewWorldState() *WorldState {
	return &WorldState{
		world:   donburi.NewWorld(),
		created: make([]donburi.Entity, 0),
	}
}

func tagFor(category models.Category) donburi.IComponentType {
	if category == models.Item {
		return ItemTag
	}
	return CharacterTag
}

// Spawn creates a named entity tagged with its category
func (ws *WorldState) Spawn(name string, category models.Category) models.DisplayEntity {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	entity := ws.world.Create(Name, tagFor(category))
	Name.SetValue(ws.world.Entry(entity), NameData{Value: name})
	ws.created = append(ws.created, entity)

	return models.DisplayEntity{
		ID:          models.EntityID(entity),
		DisplayName: name,
		Category:    category,
	}
}

// CreatedSince returns the entities created after the first n, in creation
// order, and the log offset to resume from.
func (ws *WorldState) CreatedSince(n int) ([]models.DisplayEntity, int) {
	ws.mu.RLock()
	defer ws.mu.RUnlock()

	if n < 0 {
		n = 0
	}
	if n >= len(ws.created) {
		return nil, len(ws.created)
	}

	result := make([]models.DisplayEntity, 0, len(ws.created)-n)
	for _, entity := range ws.created[n:] {
		if display, ok := ws.lookup(entity); ok {
			result = append(result, display)
		}
	}
	return result, len(ws.created)
}

// CreatedCount is the length of the creation log
func (ws *WorldState) CreatedCount() int {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return len(ws.created)
}

// Lookup reads an entity back from the ECS
func (ws *WorldState) Lookup(id models.EntityID) (models.DisplayEntity, bool) {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return ws.lookup(donburi.Entity(id))
}

func (ws *WorldState) lookup(entity donburi.Entity) (models.DisplayEntity, bool) {
	if !ws.world.Valid(entity) {
		return models.DisplayEntity{}, false
	}
	entry := ws.world.Entry(entity)
	if !entry.HasComponent(Name) {
		return models.DisplayEntity{}, false
	}

	category := models.Character
	switch {
	case entry.HasComponent(ItemTag):
		category = models.Item
	case !entry.HasComponent(CharacterTag):
		return models.DisplayEntity{}, false
	}

	return models.DisplayEntity{
		ID:          models.EntityID(entity),
		DisplayName: Name.Get(entry).Value,
		Category:    category,
	}, true
}

// Count returns how many entities carry the category tag
func (ws *WorldState) Count(category models.Category) int {
	ws.mu.RLock()
	defer ws.mu.RUnlock()

	if category == models.Item {
		return itemQuery.Count(ws.world)
	}
	return characterQuery.Count(ws.world)
}
