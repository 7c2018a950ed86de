package models

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	Pending    []DisplayEntity // Entities announced by core since the last tick
	Characters int             // World totals reported by core
	Items      int
	Status     string // Status bar text
	Width      int    // Terminal width
	Height     int    // Terminal height
	Ticks      uint64 // Ticks run so far
	CoreReady  bool   // Whether the simulation service is running
}
