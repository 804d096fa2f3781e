// Package store persists the task collection in a flat data file, one
// encoded record per line. Persistence is full-rewrite: a load reads the
// whole file, a save truncates and rewrites it. There is no locking;
// concurrent invocations against the same file may race.
package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nibzard/tt/internal/task"
)

// DefaultFileName is the data file used when no override is configured.
const DefaultFileName = "tasks.tsv"

// Store reads and writes the task collection at Path. The path is always
// supplied by the caller; the package holds no global state.
type Store struct {
	Path string
}

// New returns a store over the given data file path.
func New(path string) *Store {
	return &Store{Path: path}
}

// Load reads every task from the data file, in file order. A missing file
// yields an empty collection. Blank lines and short records are skipped;
// a record with a non-numeric id fails the load.
func (s *Store) Load() ([]task.Task, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read data file: %w", err)
	}

	var tasks []task.Task
	for i, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		t, err := task.Decode(line)
		if err != nil {
			if errors.Is(err, task.ErrShortRecord) {
				continue
			}
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Save truncates the data file and rewrites it with one encoded line per
// task, in the given order.
func (s *Store) Save(tasks []task.Task) error {
	var b strings.Builder
	for _, t := range tasks {
		b.WriteString(task.Encode(t))
		b.WriteByte('\n')
	}
	if err := os.WriteFile(s.Path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	return nil
}

// LineIssue describes a data file line the tolerant read path would drop
// or reject. Used by the doctor command.
type LineIssue struct {
	Line int
	Err  error
}

// Scan reads the data file like Load but collects per-line problems
// instead of skipping or failing, so they can be reported.
func (s *Store) Scan() ([]task.Task, []LineIssue, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("read data file: %w", err)
	}

	var tasks []task.Task
	var issues []LineIssue
	for i, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		t, err := task.Decode(line)
		if err != nil {
			issues = append(issues, LineIssue{Line: i + 1, Err: err})
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, issues, nil
}

// NextID returns one more than the highest id present, or 1 for an empty
// collection. Ids are never reused after deletion.
func NextID(tasks []task.Task) int {
	max := 0
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}
