package main

import (
	"fmt"

	"github.com/mpfechner/movie-manager-cli/internal/store"
	"github.com/mpfechner/movie-manager-cli/internal/util"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the collection",
	Long: `List the active user's movie collection.

By default movies appear in the order they were added. Use --sort to
order by rating (descending) or year (ascending), and --min-rating to
show only movies at or above a rating threshold.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().String("sort", "", "sort order: rating or year")
	listCmd.Flags().Float64("min-rating", 0, "only show movies rated at least this high")
}

func runList(cmd *cobra.Command, args []string) error {
	setupLogging()

	sortBy, _ := cmd.Flags().GetString("sort")
	minRating, _ := cmd.Flags().GetFloat64("min-rating")
	filtered := cmd.Flags().Changed("min-rating")

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	user, err := activeUser(db)
	if err != nil {
		return err
	}

	var movies []*store.Movie
	switch {
	case filtered:
		if minRating < 0.0 || minRating > 10.0 {
			return util.ErrInvalidRating
		}
		movies, err = db.FilterByMinRating(user.ID, minRating)
	case sortBy == "rating":
		movies, err = db.SortedByRating(user.ID)
	case sortBy == "year":
		movies, err = db.SortedByYear(user.ID)
	case sortBy == "":
		movies, err = db.GetAllMovies(user.ID)
	default:
		return fmt.Errorf("unknown sort order %q (use rating or year)", sortBy)
	}
	if err != nil {
		return err
	}

	if len(movies) == 0 {
		if filtered {
			util.InfoLog("No movies rated %.1f or higher.", minRating)
		} else {
			util.InfoLog("No movies in your collection yet. Add one with 'movies add <title>'.")
		}
		return nil
	}

	fmt.Println(renderMovieTable(movies))
	util.InfoLog("%d movies.", len(movies))

	return nil
}
