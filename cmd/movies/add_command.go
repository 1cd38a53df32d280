package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/mpfechner/movie-manager-cli/internal/util"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a movie via OMDb lookup",
	Long: `Add a movie to the active user's collection.

The title is resolved against the OMDb API; the stored record carries the
canonical title, release year, IMDb rating and poster URL from the lookup.
A failed lookup adds nothing.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	setupLogging()
	ctx := context.Background()

	query := readTitleArg(args)
	if query == "" {
		return fmt.Errorf("title cannot be empty")
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

	movie, err := svc.Add(ctx, user, query)
	switch {
	case errors.Is(err, util.ErrLookupFailed):
		util.WarnLog("Could not find '%s' on OMDb.", query)
		return nil
	case errors.Is(err, util.ErrDuplicateMovie):
		util.WarnLog("'%s' is already in your collection.", query)
		return nil
	case err != nil:
		return fmt.Errorf("add failed: %w", err)
	}

	util.SuccessLog("Added '%s' (%d, rating %.1f).", movie.Title, movie.Year, movie.Rating)
	return nil
}
