package main

import (
	"errors"
	"fmt"

	"github.com/mpfechner/movie-manager-cli/internal/util"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection statistics",
	RunE:  runStats,
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Suggest a random movie from the collection",
	RunE:  runRandom,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(randomCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	setupLogging()

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	user, err := activeUser(db)
	if err != nil {
		return err
	}

	svc := newService(db, nil)

	stats, err := svc.Stats(user)
	if errors.Is(err, util.ErrEmptyCollection) {
		util.InfoLog("No movies in your collection yet.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Movies:         %d\n", stats.Total)
	fmt.Printf("Average rating: %.2f\n", stats.Average)
	fmt.Printf("Best:           %s (%.1f)\n", stats.Best.Title, stats.Best.Rating)
	fmt.Printf("Worst:          %s (%.1f)\n", stats.Worst.Title, stats.Worst.Rating)

	return nil
}

func runRandom(cmd *cobra.Command, args []string) error {
	setupLogging()

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	user, err := activeUser(db)
	if err != nil {
		return err
	}

	svc := newService(db, nil)

	movie, err := svc.Random(user)
	if errors.Is(err, util.ErrEmptyCollection) {
		util.InfoLog("No movies in your collection yet.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Tonight's pick: %s (%d), rating %.1f\n", movie.Title, movie.Year, movie.Rating)
	if movie.PosterURL != "" {
		fmt.Printf("Poster: %s\n", movie.PosterURL)
	}

	return nil
}
