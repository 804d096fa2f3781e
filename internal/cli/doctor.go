package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/nibzard/tt/internal/config"
	"github.com/nibzard/tt/internal/store"
	"github.com/nibzard/tt/internal/task"
)

// doctorCommand checks the config and data file and reports what it finds.
// Short records are warnings (the read path tolerates them); non-numeric
// ids and duplicate ids are hard failures.
func doctorCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tt doctor", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "Show per-task details")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if rest := fs.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected arguments: %v", rest)
	}

	allOK := true

	fmt.Println("tt doctor")
	fmt.Println()

	if cfg.ConfigFile != "" {
		fmt.Printf("Config file: %s\n", cfg.ConfigFile)
	} else {
		fmt.Println("Config file: none (using defaults)")
	}
	fmt.Println()

	fmt.Printf("Data file: %s\n", cfg.DataFile)
	if _, err := os.Stat(cfg.DataFile); err != nil {
		if os.IsNotExist(err) {
			fmt.Println("  ⚠️  Not found (treated as an empty task set)")
		} else {
			fmt.Printf("  ❌ Error: %v\n", err)
			allOK = false
		}
		fmt.Println()
		return doctorVerdict(allOK)
	}

	st := store.New(cfg.DataFile)
	tasks, issues, err := st.Scan()
	if err != nil {
		fmt.Printf("  ❌ Error: %v\n", err)
		return doctorVerdict(false)
	}

	for _, issue := range issues {
		if errors.Is(issue.Err, task.ErrShortRecord) {
			fmt.Printf("  ⚠️  line %d: short record (dropped on load)\n", issue.Line)
			continue
		}
		fmt.Printf("  ❌ line %d: %v\n", issue.Line, issue.Err)
		allOK = false
	}

	seen := make(map[int]bool, len(tasks))
	for _, t := range tasks {
		if seen[t.ID] {
			fmt.Printf("  ❌ duplicate id %d\n", t.ID)
			allOK = false
		}
		seen[t.ID] = true
	}

	pending, done := 0, 0
	for _, t := range tasks {
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	fmt.Printf("  Tasks: %d (%d pending, %d done)\n", len(tasks), pending, done)
	if *verbose {
		for _, t := range tasks {
			fmt.Printf("    %s\n", formatTask(t))
		}
	}
	if allOK {
		fmt.Println("  ✅ OK")
	}
	fmt.Println()

	return doctorVerdict(allOK)
}

func doctorVerdict(allOK bool) error {
	if allOK {
		fmt.Println("✅ All checks passed!")
		return nil
	}
	fmt.Println("⚠️  Some checks failed.")
	return errors.New("doctor checks failed")
}
