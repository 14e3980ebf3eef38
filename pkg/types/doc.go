// Package types defines the entity records, sentinel values, and standard
// errors shared by the PromptHub storage layer and its callers.
//
// All three record types (Prompt, Category, LLM) are plain structs with
// string IDs. Records are validated at the repository boundary; the types
// themselves carry no storage dependency.
package types
