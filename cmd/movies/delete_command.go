package main

import (
	"errors"
	"fmt"

	"github.com/mpfechner/movie-manager-cli/internal/util"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <title>",
	Short: "Delete a movie (fuzzy matched, with confirmation)",
	Long: `Delete a movie from the active user's collection.

The typed title is fuzzy-matched against the collection; the resolved
title is shown for confirmation before anything is removed. A match
below the confidence threshold aborts the command untouched.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	setupLogging()

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

	prop, err := svc.Propose(user, query)
	switch {
	case errors.Is(err, util.ErrEmptyCollection):
		util.WarnLog("You have no movies to delete.")
		return nil
	case errors.Is(err, util.ErrNoMatch):
		util.WarnLog("No close match found for '%s'.", query)
		return nil
	case err != nil:
		return err
	}

	if !confirm(fmt.Sprintf("Did you mean '%s' (%d)?", prop.Movie.Title, prop.Movie.Year)) {
		util.InfoLog("Deletion cancelled.")
		return nil
	}

	deleted, err := svc.Delete(user, prop.Movie.Title)
	if err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}

	if deleted {
		util.SuccessLog("Deleted '%s'.", prop.Movie.Title)
	} else {
		util.WarnLog("'%s' was not found.", prop.Movie.Title)
	}

	return nil
}
