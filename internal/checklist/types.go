package checklist

// Checkbox represents a single checklist line in a description.
type Checkbox struct {
	Line    int    `json:"line" yaml:"line"`   // line number in the description
	Index   int    `json:"index" yaml:"index"` // ordinal among checklist lines, used as row id
	Status  string `json:"status" yaml:"status"`
	Checked bool   `json:"checked" yaml:"checked"`
	Text    string `json:"text" yaml:"text"`
	RawLine string `json:"raw_line" yaml:"raw_line"`
}

// ChecklistStats represents checklist progress.
type ChecklistStats struct {
	Total     int     `json:"total" yaml:"total"`
	Completed int     `json:"completed" yaml:"completed"`
	Pending   int     `json:"pending" yaml:"pending"`
	Progress  float64 `json:"progress" yaml:"progress"` // 0-100
}

// UpdateCheckboxInput is input for forcing a checkbox state.
type UpdateCheckboxInput struct {
	Content      string
	CheckboxText string // display text; matched by suffix
	Checked      bool
}

// UpdateCheckboxOutput is result of a checkbox update.
type UpdateCheckboxOutput struct {
	Content string
	Updated bool
	Count   int
}
