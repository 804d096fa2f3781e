// Package snapshot reads and writes JSON snapshots of the task collection,
// the format behind the export and import commands. Imports are validated
// against an embedded JSON Schema before they can replace the store.
package snapshot

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nibzard/tt/internal/task"
)

//go:embed tasks.schema.json
var schemaJSON []byte

const schemaURL = "tasks.schema.json"

// SchemaVersion is the current snapshot format version.
const SchemaVersion = 1

// File is the snapshot document structure.
type File struct {
	SchemaVersion int      `json:"schema_version"`
	Tasks         []Record `json:"tasks"`
}

// Record is the JSON form of a single task.
type Record struct {
	ID       int    `json:"id"`
	Done     bool   `json:"done"`
	Priority string `json:"priority"`
	Due      string `json:"due,omitempty"`
	Title    string `json:"title"`
}

// Write renders tasks as a snapshot document at path, with 2-space
// indentation and a trailing newline.
func Write(path string, tasks []task.Task) error {
	f := File{
		SchemaVersion: SchemaVersion,
		Tasks:         make([]Record, 0, len(tasks)),
	}
	for _, t := range tasks {
		f.Tasks = append(f.Tasks, Record{
			ID:       t.ID,
			Done:     t.Done,
			Priority: string(t.Priority),
			Due:      t.Due,
			Title:    t.Title,
		})
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Read parses and validates a snapshot document and returns its tasks in
// document order. The document must pass schema validation; nothing is
// returned from a snapshot that fails it.
func Read(path string) ([]task.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	if err := validate(data); err != nil {
		return nil, fmt.Errorf("invalid snapshot %s: %w", path, err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}

	tasks := make([]task.Task, 0, len(f.Tasks))
	for _, r := range f.Tasks {
		t := task.Task{
			ID:    r.ID,
			Done:  r.Done,
			Due:   r.Due,
			Title: r.Title,
		}
		t.Priority = task.PriorityMedium
		if r.Priority != "" {
			t.Priority = r.Priority[0]
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// validate checks the raw document against the embedded schema.
func validate(data []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return fmt.Errorf("load schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse JSON: %w", err)
	}
	return schema.Validate(doc)
}
