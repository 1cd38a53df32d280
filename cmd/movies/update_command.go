package main

import (
	"errors"
	"fmt"

	"github.com/mpfechner/movie-manager-cli/internal/util"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <title>",
	Short: "Update a movie's year, rating or poster",
	Long: `Update a movie in the active user's collection.

The typed title is fuzzy-matched and confirmed like delete. Values for
flags you do not set keep their current value.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().Int("year", 0, "new release year")
	updateCmd.Flags().Float64("rating", 0, "new rating (0.0-10.0)")
	updateCmd.Flags().String("poster", "", "new poster URL")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	setupLogging()

	query := readTitleArg(args)
	if query == "" {
		return fmt.Errorf("title cannot be empty")
	}

	if !cmd.Flags().Changed("year") && !cmd.Flags().Changed("rating") && !cmd.Flags().Changed("poster") {
		return fmt.Errorf("nothing to update (set --year, --rating or --poster)")
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
		util.WarnLog("You have no movies to update.")
		return nil
	case errors.Is(err, util.ErrNoMatch):
		util.WarnLog("No close match found for '%s'.", query)
		return nil
	case err != nil:
		return err
	}

	current := prop.Movie
	util.InfoLog("Current: %s (%d), rating %.1f, poster %s", current.Title, current.Year, current.Rating, current.PosterURL)

	if !confirm(fmt.Sprintf("Did you mean '%s' (%d)?", current.Title, current.Year)) {
		util.InfoLog("Update cancelled.")
		return nil
	}

	// Unset flags keep the current values
	year := current.Year
	rating := current.Rating
	poster := current.PosterURL

	if cmd.Flags().Changed("year") {
		year, _ = cmd.Flags().GetInt("year")
	}
	if cmd.Flags().Changed("rating") {
		rating, _ = cmd.Flags().GetFloat64("rating")
	}
	if cmd.Flags().Changed("poster") {
		poster, _ = cmd.Flags().GetString("poster")
	}

	updated, err := svc.Update(user, current.Title, year, rating, poster)
	if err != nil {
		if errors.Is(err, util.ErrInvalidRating) {
			return err
		}
		return fmt.Errorf("update failed: %w", err)
	}

	if updated {
		util.SuccessLog("Updated '%s'.", current.Title)
	} else {
		util.WarnLog("'%s' was not found.", current.Title)
	}

	return nil
}
