package main

import (
	"errors"
	"fmt"

	"github.com/mpfechner/movie-manager-cli/internal/util"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-search the collection",
	Long: `Search the active user's collection for titles similar to the
query. Up to five matches are shown with their confidence scores; search
uses a looser threshold than delete/update and never mutates anything.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	setupLogging()

	query := readTitleArg(args)
	if query == "" {
		return fmt.Errorf("search query cannot be empty")
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	user, err := activeUser(db)
	if err != nil {
		return err
	}

	// Read-only command, no audit log
	svc := newService(db, nil)

	hits, err := svc.Search(user, query)
	if errors.Is(err, util.ErrEmptyCollection) {
		util.InfoLog("No movies in your collection yet.")
		return nil
	}
	if err != nil {
		return err
	}

	if len(hits) == 0 {
		util.InfoLog("No matching titles found.")
		return nil
	}

	rows := make([]scoredRow, 0, len(hits))
	for _, h := range hits {
		rows = append(rows, scoredRow{movie: h.Movie, score: h.Score})
	}

	fmt.Println(renderSearchTable(rows))
	return nil
}
