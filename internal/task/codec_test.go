package task

import (
	"errors"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		task Task
		want string
	}{
		{
			name: "pending with due date",
			task: Task{ID: 1, Priority: PriorityHigh, Due: "2024-05-01", Title: "Buy milk"},
			want: "1|0|H|2024-05-01|Buy milk",
		},
		{
			name: "done without due date",
			task: Task{ID: 42, Done: true, Priority: PriorityMedium, Title: "Ship it"},
			want: "42|1|M|-|Ship it",
		},
		{
			name: "delimiter in title becomes slash",
			task: Task{ID: 3, Priority: PriorityLow, Title: "either|or"},
			want: "3|0|L|-|either/or",
		},
		{
			name: "newlines stripped from title",
			task: Task{ID: 4, Priority: PriorityMedium, Title: "line\none\r\ntwo"},
			want: "4|0|M|-|lineonetwo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.task); got != tt.want {
				t.Errorf("Encode: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Task
	}{
		{
			name: "full record",
			line: "7|1|H|2024-01-02|Water plants",
			want: Task{ID: 7, Done: true, Priority: PriorityHigh, Due: "2024-01-02", Title: "Water plants"},
		},
		{
			name: "absent due date",
			line: "2|0|L|-|Idle thought",
			want: Task{ID: 2, Priority: PriorityLow, Title: "Idle thought"},
		},
		{
			name: "empty priority defaults to medium",
			line: "5|0||-|No priority",
			want: Task{ID: 5, Priority: PriorityMedium, Title: "No priority"},
		},
		{
			name: "priority takes first character",
			line: "6|0|High|-|Long priority field",
			want: Task{ID: 6, Priority: PriorityHigh, Title: "Long priority field"},
		},
		{
			name: "done is one exactly",
			line: "8|yes|M|-|Odd done field",
			want: Task{ID: 8, Priority: PriorityMedium, Title: "Odd done field"},
		},
		{
			name: "extra fields discarded",
			line: "9|0|M|-|title|trailing|junk",
			want: Task{ID: 9, Priority: PriorityMedium, Title: "title"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.line)
			if err != nil {
				t.Fatalf("Decode(%q) failed: %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("Decode(%q): got %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestDecodeShortRecord(t *testing.T) {
	for _, line := range []string{"1|0|M|-", "1|0", "garbage"} {
		if _, err := Decode(line); !errors.Is(err, ErrShortRecord) {
			t.Errorf("Decode(%q): got %v, want ErrShortRecord", line, err)
		}
	}
}

func TestDecodeBadID(t *testing.T) {
	_, err := Decode("abc|0|M|-|Bad id")
	if err == nil {
		t.Fatal("expected error for non-numeric id, got nil")
	}
	if errors.Is(err, ErrShortRecord) {
		t.Error("non-numeric id should not be reported as a short record")
	}
}

func TestRoundTrip(t *testing.T) {
	tasks := []Task{
		{ID: 1, Priority: PriorityHigh, Due: "2024-05-01", Title: "Buy milk"},
		{ID: 2, Done: true, Priority: PriorityMedium, Title: "Call plumber"},
		{ID: 30, Priority: PriorityLow, Title: "A title with / slashes"},
	}
	for _, original := range tasks {
		got, err := Decode(Encode(original))
		if err != nil {
			t.Fatalf("round trip of %+v failed: %v", original, err)
		}
		if got != original {
			t.Errorf("round trip: got %+v, want %+v", got, original)
		}
	}
}
