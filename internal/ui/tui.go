// Package ui provides the optional terminal interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/tt/internal/store"
	"github.com/nibzard/tt/internal/task"
)

// RunTUI starts the interactive task browser over the given store.
func RunTUI(ctx context.Context, st *store.Store) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newBrowser(st)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(*browser); ok && m.saveErr != nil {
		return m.saveErr
	}
	return nil
}

// browser is the bubbletea model: the full task set plus cursor and filter
// state. Toggling a task persists through the store immediately, matching
// the one-shot CLI semantics.
type browser struct {
	st       *store.Store
	tasks    []task.Task
	cursor   int
	filter   task.Filter
	showHelp bool
	loadErr  error
	saveErr  error
}

func newBrowser(st *store.Store) *browser {
	return &browser{st: st}
}

func (m *browser) Init() tea.Cmd {
	m.refresh()
	return nil
}

func (m *browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.visible())-1 {
				m.cursor++
			}
		case "x", " ":
			m.toggle()
		case "r", "f5":
			m.refresh()
		case "0":
			m.setFilter(task.FilterAll)
		case "1":
			m.setFilter(task.FilterPending)
		case "2":
			m.setFilter(task.FilterDone)
		case "h", "?":
			m.showHelp = !m.showHelp
		}
	}
	return m, nil
}

func (m *browser) View() string {
	var b strings.Builder
	writeTitle(&b)

	if m.showHelp {
		writeHelp(&b)
		writeFooter(&b)
		return b.String()
	}

	if m.loadErr != nil {
		b.WriteString("Error loading task file:\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
		writeFooter(&b)
		return b.String()
	}

	writeFilterLine(&b, m.filter)

	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString("  No tasks.\n")
	}
	for i, t := range visible {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		b.WriteString(marker + formatRow(t) + "\n")
	}
	if m.saveErr != nil {
		b.WriteString("\nSave failed: " + m.saveErr.Error() + "\n")
	}

	b.WriteString("\n")
	writeFooter(&b)
	return b.String()
}

// visible returns the tasks surviving the current filter, in display order.
func (m *browser) visible() []task.Task {
	var out []task.Task
	for _, t := range m.tasks {
		if m.filter.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

func (m *browser) setFilter(f task.Filter) {
	m.filter = f
	m.cursor = 0
}

func (m *browser) refresh() {
	tasks, err := m.st.Load()
	if err != nil {
		m.loadErr = err
		m.tasks = nil
		return
	}
	m.loadErr = nil
	task.Sort(tasks, task.SortByDue)
	m.tasks = tasks
	if n := len(m.visible()); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	}
}

// toggle flips the done flag on the task under the cursor and persists.
func (m *browser) toggle() {
	visible := m.visible()
	if m.cursor >= len(visible) {
		return
	}
	id := visible[m.cursor].ID
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks[i].Done = !m.tasks[i].Done
			break
		}
	}
	if err := m.st.Save(m.tasks); err != nil {
		m.saveErr = err
		return
	}
	m.saveErr = nil
	m.refresh()
}

func writeTitle(b *strings.Builder) {
	title := "Task Tracker"
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func writeFilterLine(b *strings.Builder, f task.Filter) {
	label := "all"
	switch f {
	case task.FilterPending:
		label = "pending"
	case task.FilterDone:
		label = "done"
	}
	b.WriteString(fmt.Sprintf("Filter: %s (0 all, 1 pending, 2 done)\n\n", label))
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  q, ctrl+c    Quit\n")
	b.WriteString("  j/k, arrows  Move cursor\n")
	b.WriteString("  x, space     Toggle done on selected task\n")
	b.WriteString("  r, F5        Reload from disk\n")
	b.WriteString("  0/1/2        Show all / pending / done\n")
	b.WriteString("  h, ?         Toggle this help screen\n\n")
}

func writeFooter(b *strings.Builder) {
	b.WriteString("Press h for help | q to quit\n")
}

// formatRow renders one task line with the same markers as 'tt list'.
func formatRow(t task.Task) string {
	marker := "[ ]"
	if t.Done {
		marker = "[x]"
	}
	due := t.Due
	if due == "" {
		due = "--"
	}
	return fmt.Sprintf("%3d  %s  %c  %s  %s", t.ID, marker, t.Priority, due, t.Title)
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
