// Package task defines the task model, the delimited record codec used by
// the data file, and the sort/filter policy for display.
//
// A task is a single to-do item: a numeric id, a done flag, a priority
// (H/M/L), an optional due date in YYYY-MM-DD form, and a free-text title.
// On disk each task is one line of five fields joined by '|':
//
//	id|done|priority|due|title
//
// where done is 1/0 and an absent due date is written as "-". Titles are
// sanitized on encode: the delimiter becomes '/' and newlines are removed,
// so a stored line always has exactly five fields.
//
// Decoding is tolerant of hand-edited files: lines with fewer than five
// fields yield ErrShortRecord and are dropped by the store, while a
// non-numeric id is a hard error.
package task
