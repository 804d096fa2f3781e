package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tt/internal/config"
	"github.com/nibzard/tt/internal/snapshot"
	"github.com/nibzard/tt/internal/store"
)

// defaultSnapshotFile is the export target when none is given.
const defaultSnapshotFile = "tasks.json"

// resolvePath makes a relative path absolute against the project root.
func resolvePath(cfg *config.Config, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cfg.ProjectRoot, path)
}

// exportCommand writes the store contents as a JSON snapshot.
func exportCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	path := defaultSnapshotFile
	if len(args) == 1 {
		path = args[0]
	} else if len(args) > 1 {
		return fmt.Errorf("unexpected arguments: %v", args[1:])
	}
	path = resolvePath(cfg, path)

	st := store.New(cfg.DataFile)
	tasks, err := st.Load()
	if err != nil {
		return err
	}

	if err := snapshot.Write(path, tasks); err != nil {
		return err
	}
	logger.Debug("wrote snapshot", "file", path, "count", len(tasks))
	fmt.Printf("Exported %d tasks to %s\n", len(tasks), path)
	return nil
}

// importCommand replaces the store contents with a validated snapshot.
// Validation happens before any write, so a bad snapshot leaves the store
// untouched.
func importCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: tt import <file>")
	}
	if len(args) > 1 {
		return fmt.Errorf("unexpected arguments: %v", args[1:])
	}
	path := resolvePath(cfg, args[0])

	tasks, err := snapshot.Read(path)
	if err != nil {
		return err
	}

	st := store.New(cfg.DataFile)
	if err := st.Save(tasks); err != nil {
		return err
	}
	logger.Debug("imported snapshot", "file", path, "count", len(tasks))
	fmt.Printf("Imported %d tasks from %s\n", len(tasks), path)
	return nil
}
