package task

import "sort"

// SortKey selects the user-visible tie-breaker applied within each
// done/pending bucket.
type SortKey string

const (
	SortByDue      SortKey = "due"
	SortByPriority SortKey = "priority"
	SortByID       SortKey = "id"
)

// dueSentinel sorts tasks without a due date after every dated task.
const dueSentinel = "9999-99-99"

func dueOrSentinel(t Task) string {
	if t.Due == "" {
		return dueSentinel
	}
	return t.Due
}

// Filter is the display-time predicate applied after sorting.
type Filter int

const (
	FilterAll Filter = iota
	FilterPending
	FilterDone
)

// Match reports whether the task survives the filter.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterPending:
		return !t.Done
	case FilterDone:
		return t.Done
	default:
		return true
	}
}

// Sort orders tasks in place for display. Pending tasks always come before
// completed ones. Within a bucket the requested key breaks ties (an
// unrecognized key is skipped), then the fixed secondary order applies:
// due date with absent-sorts-last, priority weight, id ascending. The sort
// is stable, so rows equal under the comparator keep their file order.
func Sort(tasks []Task, key SortKey) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return less(tasks[i], tasks[j], key)
	})
}

func less(a, b Task, key SortKey) bool {
	if a.Done != b.Done {
		return !a.Done
	}

	switch key {
	case SortByDue:
		if ad, bd := dueOrSentinel(a), dueOrSentinel(b); ad != bd {
			return ad < bd
		}
	case SortByPriority:
		if aw, bw := PriorityWeight(a.Priority), PriorityWeight(b.Priority); aw != bw {
			return aw < bw
		}
	case SortByID:
		if a.ID != b.ID {
			return a.ID < b.ID
		}
	}

	if ad, bd := dueOrSentinel(a), dueOrSentinel(b); ad != bd {
		return ad < bd
	}
	if aw, bw := PriorityWeight(a.Priority), PriorityWeight(b.Priority); aw != bw {
		return aw < bw
	}
	return a.ID < b.ID
}
