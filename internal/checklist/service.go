package checklist

// Service exposes the checklist engine to adapters.
type Service interface {
	// ParseCheckboxes extracts all checklist lines from a description
	ParseCheckboxes(content string) []Checkbox

	// GetStats calculates checklist statistics
	GetStats(content string) ChecklistStats

	// IsFullyCompleted checks if all checkboxes are checked
	IsFullyCompleted(content string) bool

	// Toggle flips the items whose text ends the clicked row's display text
	Toggle(content, displayText string) string

	// ToggleLine flips the item with the given row index
	ToggleLine(content string, index int) (string, error)

	// UpdateCheckbox forces a state on the items matched by display text
	UpdateCheckbox(input UpdateCheckboxInput) UpdateCheckboxOutput

	// Reset unchecks every item
	Reset(content string) string

	// AddItem inserts a new unchecked item after the last one
	AddItem(content, text string) string
}

type service struct{}

func New() Service {
	return service{}
}

func (service) ParseCheckboxes(content string) []Checkbox { return ParseCheckboxes(content) }

func (service) GetStats(content string) ChecklistStats { return GetStats(content) }

func (service) IsFullyCompleted(content string) bool { return IsFullyCompleted(content) }

func (service) Toggle(content, displayText string) string { return Toggle(content, displayText) }

func (service) ToggleLine(content string, index int) (string, error) {
	return ToggleLine(content, index)
}

func (service) UpdateCheckbox(input UpdateCheckboxInput) UpdateCheckboxOutput {
	return UpdateCheckbox(input)
}

func (service) Reset(content string) string { return Reset(content) }

func (service) AddItem(content, text string) string { return AddItem(content, text) }
