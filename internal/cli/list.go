package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tt/internal/config"
	"github.com/nibzard/tt/internal/store"
	"github.com/nibzard/tt/internal/task"
)

// listCommand prints tasks, sorted then filtered. Sorting happens before
// filtering so the filter never changes the relative order of surviving
// rows.
func listCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	filter := task.FilterAll
	key := task.SortByDue

	for _, a := range args {
		switch {
		case a == "--all":
			filter = task.FilterAll
		case a == "--pending":
			filter = task.FilterPending
		case a == "--done":
			filter = task.FilterDone
		case strings.HasPrefix(a, "--sort="):
			key = task.SortKey(strings.TrimPrefix(a, "--sort="))
		default:
			return fmt.Errorf("unknown arg: %s", a)
		}
	}

	st := store.New(cfg.DataFile)
	tasks, err := st.Load()
	if err != nil {
		return err
	}
	logger.Debug("loaded tasks", "count", len(tasks), "file", cfg.DataFile)

	task.Sort(tasks, key)
	for _, t := range tasks {
		if !filter.Match(t) {
			continue
		}
		fmt.Println(formatTask(t))
	}
	return nil
}

// formatTask renders one display row: id, done marker, priority, due date
// ("--" when absent), title.
func formatTask(t task.Task) string {
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
