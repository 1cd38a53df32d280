package htmlexport

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/mpfechner/movie-manager-cli/internal/store"
	"github.com/mpfechner/movie-manager-cli/internal/util"
)

// LinkResolver maps a title to its IMDb identifier, "" when unknown
type LinkResolver interface {
	LookupIMDbID(ctx context.Context, title string) (string, error)
}

// Exporter renders a user's collection to a static HTML page
type Exporter struct {
	store *store.Store
	links LinkResolver
	tmpl  *template.Template
}

// Config holds exporter dependencies
type Config struct {
	Store *store.Store
	Links LinkResolver // nil disables IMDb links
}

// New creates a new Exporter
func New(cfg *Config) *Exporter {
	return &Exporter{
		store: cfg.Store,
		links: cfg.Links,
		tmpl:  template.Must(template.New("collection").Parse(pageTemplate)),
	}
}

// card is one movie entry in the rendered page
type card struct {
	Title     string
	Year      int
	Rating    float64
	PosterURL string
	Note      string
	IMDbLink  string
}

type page struct {
	UserName string
	Cards    []card
}

// Export writes the user's collection as HTML to outputPath.
// The file is written atomically (temp file, then rename) so a failed
// export never leaves a truncated page behind. onMovie, if non-nil, is
// called once per rendered movie.
func (e *Exporter) Export(ctx context.Context, user *store.User, outputPath string, onMovie func(title string)) error {
	movies, err := e.store.GetAllMovies(user.ID)
	if err != nil {
		return err
	}
	if len(movies) == 0 {
		return util.ErrEmptyCollection
	}

	cards := make([]card, 0, len(movies))
	for _, m := range movies {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		c := card{
			Title:     m.Title,
			Year:      m.Year,
			Rating:    m.Rating,
			PosterURL: m.PosterURL,
			Note:      m.Note,
			IMDbLink:  "#",
		}

		if e.links != nil {
			id, err := e.links.LookupIMDbID(ctx, m.Title)
			if err != nil {
				util.WarnLog("IMDb link lookup failed for '%s': %v", m.Title, err)
			} else if id != "" {
				c.IMDbLink = "https://www.imdb.com/title/" + id
			}
		}

		cards = append(cards, c)
		if onMovie != nil {
			onMovie(m.Title)
		}
	}

	return e.write(outputPath, &page{UserName: user.Name, Cards: cards})
}

func (e *Exporter) write(outputPath string, p *page) error {
	dir := filepath.Dir(outputPath)
	tmp, err := os.CreateTemp(dir, ".movies-export-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := e.tmpl.Execute(tmp, p); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to render template: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move export into place: %w", err)
	}

	return nil
}
