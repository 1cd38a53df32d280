package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mpfechner/movie-manager-cli/internal/util"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Bulk-add movies from a title list",
	Long: `Import movies from a text file, one title per line.

Each title goes through the same OMDb lookup as 'movies add'. Lines that
are empty or start with '#' are skipped. Lookup failures and duplicates
are counted and reported, not fatal.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	setupLogging()
	ctx := context.Background()

	titles, err := readTitleFile(args[0])
	if err != nil {
		return err
	}
	if len(titles) == 0 {
		util.WarnLog("No titles found in %s.", args[0])
		return nil
	}

	lock, err := lockStore()
	if err != nil {
		return err
	}
	defer lock.Unlock()

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	user, err := activeUser(db)
	if err != nil {
		return err
	}

	audit := newAudit()
	defer audit.Close()

	svc := newService(db, audit)

	// Progress bar only on a terminal, and not when piped
	var bar *progressbar.ProgressBar
	if util.IsTerminal(os.Stdout.Fd()) && !util.IsQuiet() {
		bar = progressbar.NewOptions(len(titles),
			progressbar.OptionSetDescription("Importing"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(200*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
	}

	result, err := svc.Import(ctx, user, titles, func(title string) {
		if bar != nil {
			bar.Add(1)
		}
	})
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	util.SuccessLog("Import complete: %d added, %d duplicates, %d not found.",
		result.Added, result.Duplicates, result.LookupFailed)

	return nil
}

// readTitleFile reads one title per line, skipping blanks and comments
func readTitleFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open title list: %w", err)
	}
	defer f.Close()

	var titles []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		titles = append(titles, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read title list: %w", err)
	}

	return titles, nil
}
