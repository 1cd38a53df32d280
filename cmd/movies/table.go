package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mpfechner/movie-manager-cli/internal/store"
)

// renderMovieTable renders a collection slice as a terminal table.
// Year and rating columns are right-aligned.
func renderMovieTable(movies []*store.Movie) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)

	tw.AppendHeader(table.Row{"Title", "Year", "Rating", "Note"})

	for _, m := range movies {
		tw.AppendRow(table.Row{
			m.Title,
			strconv.Itoa(m.Year),
			fmt.Sprintf("%.1f", m.Rating),
			m.Note,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

// renderSearchTable renders fuzzy search hits with their confidence scores
func renderSearchTable(hits []scoredRow) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)

	tw.AppendHeader(table.Row{"Title", "Year", "Rating", "Score"})

	for _, h := range hits {
		tw.AppendRow(table.Row{
			h.movie.Title,
			strconv.Itoa(h.movie.Year),
			fmt.Sprintf("%.1f", h.movie.Rating),
			fmt.Sprintf("%.0f", h.score),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

// scoredRow is a search hit ready for rendering
type scoredRow struct {
	movie *store.Movie
	score float64
}
