package types

// Prompt active states. Inactive prompts are kept in storage and in backups
// but are excluded from library listings.
const (
	PromptActive   = "Active"
	PromptInactive = "Inactive"
)

// FilterAll is the sentinel accepted by category/LLM prompt queries meaning
// "no filter".
const FilterAll = "All"

// Prompt is a stored text template. Content may contain zero or more
// placeholders written as {name}; see pkg/template for the substitution
// contract. Category and LLM hold record IDs; LLM may instead carry the
// GenericLLM sentinel. Dangling references are legal and resolved to
// fallback labels at display time, never here.
type Prompt struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Category   string `json:"category"`
	LLM        string `json:"llm"`
	Active     string `json:"active"`
	UsageCount int    `json:"usageCount"`
}

// Validate checks that the prompt is well-formed. An empty Active field is
// allowed here; the repository defaults it to PromptActive on add.
func (p Prompt) Validate() error {
	if p.Title == "" || p.Content == "" {
		return ErrInvalidData
	}
	if p.Active != "" && p.Active != PromptActive && p.Active != PromptInactive {
		return ErrInvalidActive
	}
	if p.UsageCount < 0 {
		return ErrInvalidData
	}
	return nil
}

// IsActive reports whether the prompt should appear in library listings.
func (p Prompt) IsActive() bool {
	return p.Active == PromptActive
}
