package types

// Category classifies prompts. The ID is an opaque unique token generated at
// creation and never reused. Deleting a category does not cascade to prompts;
// a prompt may reference a missing category and callers display "Unknown".
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Validate checks that the category is well-formed.
func (c Category) Validate() error {
	if c.Name == "" {
		return ErrInvalidName
	}
	return nil
}
