package task

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Delimiter separates the five record fields on a data file line.
const Delimiter = "|"

// dueNone is how an absent due date is written on disk.
const dueNone = "-"

// ErrShortRecord marks a line with fewer than five fields. The store skips
// such lines instead of failing the whole load, for compatibility with
// hand-edited data files.
var ErrShortRecord = errors.New("record has fewer than five fields")

// sanitizeTitle makes a title safe to store on a single delimited line:
// delimiter characters become '/' and newlines/carriage returns are removed.
func sanitizeTitle(s string) string {
	s = strings.ReplaceAll(s, Delimiter, "/")
	s = strings.ReplaceAll(s, "\n", "")
	s = strings.ReplaceAll(s, "\r", "")
	return s
}

// Encode renders a task as one data file line (without trailing newline).
func Encode(t Task) string {
	done := "0"
	if t.Done {
		done = "1"
	}
	due := t.Due
	if due == "" {
		due = dueNone
	}
	return strings.Join([]string{
		strconv.Itoa(t.ID),
		done,
		string(t.Priority),
		due,
		sanitizeTitle(t.Title),
	}, Delimiter)
}

// Decode parses one data file line into a task. Lines with fewer than five
// fields return ErrShortRecord. An empty priority field defaults to medium;
// otherwise the first character of the field is taken. A non-numeric id is
// a hard error. Fields past the fifth are discarded.
func Decode(line string) (Task, error) {
	parts := strings.Split(line, Delimiter)
	if len(parts) < 5 {
		return Task{}, ErrShortRecord
	}

	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return Task{}, fmt.Errorf("parse id %q: %w", parts[0], err)
	}

	priority := PriorityMedium
	if parts[2] != "" {
		priority = parts[2][0]
	}

	due := parts[3]
	if due == dueNone {
		due = ""
	}

	return Task{
		ID:       id,
		Done:     parts[1] == "1",
		Priority: priority,
		Due:      due,
		Title:    parts[4],
	}, nil
}
