package types

// BackupDocument is the full-database export/import payload: the complete,
// unfiltered contents of all three stores. The JSON field names are the wire
// format; any consumer must accept this shape unchanged or reject it.
type BackupDocument struct {
	Prompts    []Prompt   `json:"prompts"`
	Categories []Category `json:"categories"`
	LLMs       []LLM      `json:"llms"`
}

// Validate checks that all three collections are present. A nil slice means
// the corresponding key was absent from the document; an empty store is
// represented by an empty (non-nil) slice.
func (d *BackupDocument) Validate() error {
	if d == nil || d.Prompts == nil || d.Categories == nil || d.LLMs == nil {
		return ErrInvalidBackup
	}
	return nil
}
