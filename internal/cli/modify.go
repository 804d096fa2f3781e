package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/nibzard/tt/internal/config"
	"github.com/nibzard/tt/internal/store"
	"github.com/nibzard/tt/internal/task"
)

// errTaskNotFound reports an id that is not present in the store.
var errTaskNotFound = errors.New("task not found")

// parseID validates an id argument: a non-negative integer.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// doneCommand marks a task completed. Marking an already-done task
// succeeds again and leaves it done.
func doneCommand(cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: tt done <id>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	st := store.New(cfg.DataFile)
	tasks, err := st.Load()
	if err != nil {
		return err
	}

	found := false
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Done = true
			found = true
			break
		}
	}
	if !found {
		return errTaskNotFound
	}

	if err := st.Save(tasks); err != nil {
		return err
	}
	fmt.Printf("Marked #%d done.\n", id)
	return nil
}

// rmCommand removes a task by id.
func rmCommand(cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: tt rm <id>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	st := store.New(cfg.DataFile)
	tasks, err := st.Load()
	if err != nil {
		return err
	}

	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tasks) {
		return errTaskNotFound
	}

	if err := st.Save(kept); err != nil {
		return err
	}
	fmt.Printf("Removed #%d.\n", id)
	return nil
}

// clearCommand removes completed tasks, or every task with --all.
func clearCommand(cfg *config.Config, args []string) error {
	clearAll := false
	for _, a := range args {
		switch a {
		case "--all":
			clearAll = true
		case "--done":
			// default behavior
		default:
			return fmt.Errorf("unknown arg: %s", a)
		}
	}

	st := store.New(cfg.DataFile)
	tasks, err := st.Load()
	if err != nil {
		return err
	}

	var kept []task.Task
	if !clearAll {
		for _, t := range tasks {
			if !t.Done {
				kept = append(kept, t)
			}
		}
	}

	if err := st.Save(kept); err != nil {
		return err
	}
	if clearAll {
		fmt.Println("Cleared all tasks.")
	} else {
		fmt.Println("Cleared completed tasks.")
	}
	return nil
}
