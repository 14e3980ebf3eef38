// Package sqlite implements the PromptHub storage layer: the embedded
// database handle, the versioned schema, repositories for the three record
// stores, and the backup codec.
package sqlite

// Schema DDL. Every statement is create-if-absent so migration steps are
// safe to run any number of times against any prior version.
const (
	createCategories = `CREATE TABLE IF NOT EXISTS categories (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL
);`

	createLLMs = `CREATE TABLE IF NOT EXISTS llms (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    url TEXT NOT NULL
);`

	createPrompts = `CREATE TABLE IF NOT EXISTS prompts (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    category TEXT NOT NULL,
    llm TEXT NOT NULL,
    active TEXT NOT NULL,
    usage_count INTEGER NOT NULL DEFAULT 0
);`
)

// Secondary (non-unique) index DDL.
const (
	idxCategoriesName  = `CREATE INDEX IF NOT EXISTS idx_categories_name ON categories(name);`
	idxLLMsName        = `CREATE INDEX IF NOT EXISTS idx_llms_name ON llms(name);`
	idxPromptsCategory = `CREATE INDEX IF NOT EXISTS idx_prompts_category ON prompts(category);`
	idxPromptsLLM      = `CREATE INDEX IF NOT EXISTS idx_prompts_llm ON prompts(llm);`
	idxPromptsUsage    = `CREATE INDEX IF NOT EXISTS idx_prompts_usage_count ON prompts(usage_count);`
)

// migrations holds the statements for each schema version, indexed by the
// version they upgrade to. Version 1 introduced the category and LLM stores;
// version 2 added the prompt store and its indexes. A database recorded at
// a lower version gets only the missing stores and indexes; existing rows
// are never touched.
var migrations = map[int][]string{
	1: {
		createCategories,
		idxCategoriesName,
		createLLMs,
		idxLLMsName,
	},
	2: {
		createPrompts,
		idxPromptsCategory,
		idxPromptsLLM,
		idxPromptsUsage,
	},
}
