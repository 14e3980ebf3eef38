package types

// GenericLLM is the sentinel value a prompt carries in its LLM field when no
// specific model target is selected.
const GenericLLM = "generic"

// LLM is a named model target with a URL. Same ID lifecycle as Category.
type LLM struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Validate checks that the LLM record is well-formed.
func (l LLM) Validate() error {
	if l.Name == "" {
		return ErrInvalidName
	}
	return nil
}
