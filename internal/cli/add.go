package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tt/internal/config"
	"github.com/nibzard/tt/internal/store"
	"github.com/nibzard/tt/internal/task"
)

// addCommand creates a new pending task. Title words and the -p/-d flags
// may be interleaved, so the arguments are scanned by hand: every token
// that is not a flag or a flag value is part of the title.
func addCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	if len(args) == 0 {
		return errors.New("title required")
	}

	priority := task.PriorityMedium
	due := ""
	var titleWords []string

	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "-p" && i+1 < len(args):
			i++
			v := strings.ToUpper(args[i])
			if v == "" || !task.ValidPriority(v[0]) {
				return errors.New("invalid priority, use H/M/L")
			}
			priority = v[0]
		case a == "-d" && i+1 < len(args):
			i++
			if !task.ValidDate(args[i]) {
				return errors.New("invalid date, expected YYYY-MM-DD")
			}
			due = args[i]
		case strings.HasPrefix(a, "-"):
			return fmt.Errorf("unknown flag: %s", a)
		default:
			titleWords = append(titleWords, a)
		}
	}

	title := strings.TrimSpace(strings.Join(titleWords, " "))
	if title == "" {
		return errors.New("title required")
	}

	st := store.New(cfg.DataFile)
	tasks, err := st.Load()
	if err != nil {
		return err
	}

	t := task.Task{
		ID:       store.NextID(tasks),
		Priority: priority,
		Due:      due,
		Title:    title,
	}
	tasks = append(tasks, t)
	if err := st.Save(tasks); err != nil {
		return err
	}

	logger.Debug("added task", "id", t.ID, "priority", string(t.Priority), "due", t.Due)
	fmt.Printf("Added task #%d\n", t.ID)
	return nil
}
