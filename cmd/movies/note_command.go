package main

import (
	"errors"
	"fmt"

	"github.com/mpfechner/movie-manager-cli/internal/util"
	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note <title>",
	Short: "Attach a note to a movie",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNote,
}

func init() {
	rootCmd.AddCommand(noteCmd)

	noteCmd.Flags().String("text", "", "note text (empty clears the note)")
	noteCmd.MarkFlagRequired("text")
}

func runNote(cmd *cobra.Command, args []string) error {
	setupLogging()

	query := readTitleArg(args)
	if query == "" {
		return fmt.Errorf("title cannot be empty")
	}
	text, _ := cmd.Flags().GetString("text")

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
		util.WarnLog("You have no movies to annotate.")
		return nil
	case errors.Is(err, util.ErrNoMatch):
		util.WarnLog("No close match found for '%s'.", query)
		return nil
	case err != nil:
		return err
	}

	if !confirm(fmt.Sprintf("Did you mean '%s' (%d)?", prop.Movie.Title, prop.Movie.Year)) {
		util.InfoLog("Note cancelled.")
		return nil
	}

	set, err := svc.SetNote(user, prop.Movie.Title, text)
	if err != nil {
		return fmt.Errorf("failed to set note: %w", err)
	}

	if set {
		util.SuccessLog("Note saved for '%s'.", prop.Movie.Title)
	} else {
		util.WarnLog("'%s' was not found.", prop.Movie.Title)
	}

	return nil
}
