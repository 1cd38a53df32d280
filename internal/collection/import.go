package collection

import (
	"context"
	"errors"
	"strconv"

	"github.com/mpfechner/movie-manager-cli/internal/report"
	"github.com/mpfechner/movie-manager-cli/internal/store"
	"github.com/mpfechner/movie-manager-cli/internal/util"
)

// ImportResult tallies the per-title outcomes of a bulk import
type ImportResult struct {
	Added        int
	Duplicates   int
	LookupFailed int
	Errors       []error
}

// Import adds a batch of titles, one lookup per title. Lookup failures and
// duplicates are counted, not fatal; the first store or transport error
// aborts the batch. onTitle, if non-nil, is called after each title is
// processed (drives the CLI progress bar).
func (s *Service) Import(ctx context.Context, user *store.User, titles []string, onTitle func(title string)) (*ImportResult, error) {
	result := &ImportResult{}

	for _, title := range titles {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		_, err := s.Add(ctx, user, title)
		switch {
		case err == nil:
			result.Added++
		case errors.Is(err, util.ErrLookupFailed):
			result.LookupFailed++
			result.Errors = append(result.Errors, err)
		case errors.Is(err, util.ErrDuplicateMovie):
			result.Duplicates++
			result.Errors = append(result.Errors, err)
		default:
			return result, err
		}

		if onTitle != nil {
			onTitle(title)
		}
	}

	s.audit.Log(&report.Event{
		Event:   report.EventImport,
		User:    user.Name,
		Outcome: "completed",
		Extra: map[string]string{
			"added":         strconv.Itoa(result.Added),
			"duplicates":    strconv.Itoa(result.Duplicates),
			"lookup_failed": strconv.Itoa(result.LookupFailed),
		},
	})

	return result, nil
}
