package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged EventType = "SelectionChanged"
	EventSelectedChanged  EventType = "SelectedChanged"
	EventModeChanged      EventType = "ModeChanged"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted when a list's selection changes
type SelectionChangedEvent struct {
	Selection SelectionSnapshot
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// SelectedChangedEvent is emitted when a select box commits a new item
type SelectedChangedEvent struct {
	Source string
	Old    string // "" if nothing was selected
	New    string // "" if the selection became empty
}

func (e SelectedChangedEvent) Type() EventType { return EventSelectedChanged }

// ModeChangedEvent is emitted when a list switches selection mode
type ModeChangedEvent struct {
	Source string
	Mode   string
}

func (e ModeChangedEvent) Type() EventType { return EventModeChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path  string
	Mode  string
	Items int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
