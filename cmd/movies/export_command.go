package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/mpfechner/movie-manager-cli/internal/htmlexport"
	"github.com/mpfechner/movie-manager-cli/internal/report"
	"github.com/mpfechner/movie-manager-cli/internal/util"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the collection to a static HTML page",
	Long: `Export the active user's collection as a single HTML page with
one card per movie. When an OMDb API key is configured each card links to
the movie's IMDb page; without a key the cards are rendered without links.`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "movies_output.html", "output file")
	exportCmd.Flags().Bool("no-links", false, "skip IMDb link resolution")
}

func runExport(cmd *cobra.Command, args []string) error {
	setupLogging()
	ctx := context.Background()

	output, _ := cmd.Flags().GetString("output")
	noLinks, _ := cmd.Flags().GetBool("no-links")

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	user, err := activeUser(db)
	if err != nil {
		return err
	}

	var links htmlexport.LinkResolver
	if !noLinks && (viper.GetString("api-key") != "" || viper.GetBool("test-mode")) {
		links = newLookup()
	} else if !noLinks {
		util.WarnLog("No OMDb API key configured, exporting without IMDb links.")
	}

	exporter := htmlexport.New(&htmlexport.Config{
		Store: db,
		Links: links,
	})

	count, err := db.CountMovies(user.ID)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if links != nil && util.IsTerminal(os.Stdout.Fd()) && !util.IsQuiet() {
		bar = progressbar.NewOptions(count,
			progressbar.OptionSetDescription("Resolving links"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(200*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
	}

	err = exporter.Export(ctx, user, output, func(title string) {
		if bar != nil {
			bar.Add(1)
		}
	})
	if bar != nil {
		bar.Finish()
	}

	if errors.Is(err, util.ErrEmptyCollection) {
		util.WarnLog("No movies to export.")
		return nil
	}
	if err != nil {
		return err
	}

	audit := newAudit()
	defer audit.Close()
	audit.Log(&report.Event{
		Event:   report.EventExport,
		User:    user.Name,
		Outcome: output,
	})

	util.SuccessLog("Export complete: %s", output)
	return nil
}
