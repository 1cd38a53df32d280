package collection

import (
	"context"
	"errors"

	"github.com/mpfechner/movie-manager-cli/internal/match"
	"github.com/mpfechner/movie-manager-cli/internal/omdb"
	"github.com/mpfechner/movie-manager-cli/internal/report"
	"github.com/mpfechner/movie-manager-cli/internal/store"
	"github.com/mpfechner/movie-manager-cli/internal/util"
)

const (
	// MinConfidence is the score a resolved match must reach before a
	// destructive command may act on it. The threshold is inclusive: a
	// score of exactly 70 passes.
	MinConfidence = 70.0

	// SearchConfidence is the looser cutoff for read-only search
	SearchConfidence = 60.0

	// SearchLimit caps the number of search results
	SearchLimit = 5
)

// Lookup resolves a free-text title to structured metadata.
// An absent result is (nil, nil), not an error.
type Lookup interface {
	Lookup(ctx context.Context, title string) (*omdb.Result, error)
}

// Service orchestrates the resolver and the record store.
// It never prints, never prompts, and never terminates the process;
// user-facing wording belongs to the CLI.
type Service struct {
	store  *store.Store
	lookup Lookup
	audit  *report.AuditLogger
}

// Config holds service dependencies
type Config struct {
	Store  *store.Store
	Lookup Lookup
	Audit  *report.AuditLogger // nil disables audit logging
}

// New creates a new Service
func New(cfg *Config) *Service {
	return &Service{
		store:  cfg.Store,
		lookup: cfg.Lookup,
		audit:  cfg.Audit,
	}
}

// Proposal is a resolved match awaiting explicit confirmation.
// The caller presents it to the user and, on a yes, feeds the title into
// Delete, Update or SetNote. The service never applies an unconfirmed
// proposal itself.
type Proposal struct {
	Movie *store.Movie
	Score float64
}

// Propose resolves a free-text query against the user's titles.
// Returns util.ErrEmptyCollection when the user holds no movies and
// util.ErrNoMatch when the best candidate scores below MinConfidence.
func (s *Service) Propose(user *store.User, query string) (*Proposal, error) {
	movies, titles, err := s.candidates(user.ID)
	if err != nil {
		return nil, err
	}

	best, ok := match.ResolveOne(query, titles)
	if !ok || best.Score < MinConfidence {
		return nil, util.ErrNoMatch
	}

	return &Proposal{
		Movie: movies[best.Title],
		Score: best.Score,
	}, nil
}

// candidates loads the user's records keyed by title plus the titles in
// storage order. Storage order keeps tie-breaks deterministic across calls.
func (s *Service) candidates(userID int64) (map[string]*store.Movie, []string, error) {
	all, err := s.store.GetAllMovies(userID)
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, util.ErrEmptyCollection
	}

	byTitle := make(map[string]*store.Movie, len(all))
	titles := make([]string, 0, len(all))
	for _, m := range all {
		byTitle[m.Title] = m
		titles = append(titles, m.Title)
	}

	return byTitle, titles, nil
}

// Add looks up a title via the metadata provider and stores the enriched
// record. Returns util.ErrLookupFailed when the provider knows no such
// movie (the store is never touched in that case) and
// util.ErrDuplicateMovie when the user already holds the resolved title.
func (s *Service) Add(ctx context.Context, user *store.User, query string) (*store.Movie, error) {
	result, err := s.lookup.Lookup(ctx, query)
	if err != nil {
		s.audit.LogError(report.EventAdd, user.Name, query, err)
		return nil, err
	}
	if result == nil {
		return nil, util.ErrLookupFailed
	}

	movie := &store.Movie{
		Title:     result.Title,
		Year:      result.Year,
		Rating:    result.Rating,
		PosterURL: result.PosterURL,
		UserID:    user.ID,
	}

	if err := s.store.AddMovie(movie); err != nil {
		if !errors.Is(err, util.ErrDuplicateMovie) {
			s.audit.LogError(report.EventAdd, user.Name, movie.Title, err)
		}
		return nil, err
	}

	s.audit.LogAdd(user.Name, movie.Title)
	return movie, nil
}

// Delete removes a confirmed title. The not-found-is-false contract of the
// store passes through unchanged.
func (s *Service) Delete(user *store.User, title string) (bool, error) {
	deleted, err := s.store.DeleteMovie(title, user.ID)
	if err != nil {
		s.audit.LogError(report.EventDelete, user.Name, title, err)
		return false, err
	}

	s.audit.LogMutation(report.EventDelete, user.Name, title, deleted)
	return deleted, nil
}

// Update rewrites year, rating and poster of a confirmed title.
// The rating range is enforced here; the store does not re-validate.
func (s *Service) Update(user *store.User, title string, year int, rating float64, posterURL string) (bool, error) {
	if rating < 0.0 || rating > 10.0 {
		return false, util.ErrInvalidRating
	}

	updated, err := s.store.UpdateMovie(title, year, rating, posterURL, user.ID)
	if err != nil {
		s.audit.LogError(report.EventUpdate, user.Name, title, err)
		return false, err
	}

	s.audit.LogMutation(report.EventUpdate, user.Name, title, updated)
	return updated, nil
}

// SetNote attaches a note to a confirmed title
func (s *Service) SetNote(user *store.User, title, note string) (bool, error) {
	set, err := s.store.SetNote(title, note, user.ID)
	if err != nil {
		s.audit.LogError(report.EventNote, user.Name, title, err)
		return false, err
	}

	s.audit.LogMutation(report.EventNote, user.Name, title, set)
	return set, nil
}

// SearchHit pairs a matched record with its confidence score
type SearchHit struct {
	Movie *store.Movie
	Score float64
}

// Search returns up to SearchLimit records whose titles score at least
// SearchConfidence against the query, best match first.
func (s *Service) Search(user *store.User, query string) ([]SearchHit, error) {
	movies, titles, err := s.candidates(user.ID)
	if err != nil {
		return nil, err
	}

	matches := match.ResolveMany(query, titles, SearchLimit, SearchConfidence)

	hits := make([]SearchHit, 0, len(matches))
	for _, m := range matches {
		hits = append(hits, SearchHit{
			Movie: movies[m.Title],
			Score: m.Score,
		})
	}

	return hits, nil
}
