package task

// Priority levels. Stored as their single-letter form.
const (
	PriorityHigh   byte = 'H'
	PriorityMedium byte = 'M'
	PriorityLow    byte = 'L'
)

// Task represents a single to-do item.
type Task struct {
	ID       int
	Done     bool
	Priority byte
	Due      string // YYYY-MM-DD, empty when no due date is set
	Title    string
}

// HasDue reports whether the task has a due date.
func (t Task) HasDue() bool {
	return t.Due != ""
}

// ValidPriority reports whether p is one of the known priority letters.
func ValidPriority(p byte) bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// PriorityWeight maps a priority letter to its sort weight: H=0, M=1, L=2.
// Unknown letters weigh the same as medium.
func PriorityWeight(p byte) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 1
	}
}

// ValidDate reports whether d is in YYYY-MM-DD lexical form: exactly ten
// characters, dashes at positions 4 and 7, digits everywhere else. The
// calendar is not consulted; "2024-99-99" passes.
func ValidDate(d string) bool {
	if len(d) != 10 || d[4] != '-' || d[7] != '-' {
		return false
	}
	for i := 0; i < len(d); i++ {
		if i == 4 || i == 7 {
			continue
		}
		if d[i] < '0' || d[i] > '9' {
			return false
		}
	}
	return true
}
