package collection

import (
	"math"
	"math/rand"

	"github.com/mpfechner/movie-manager-cli/internal/store"
	"github.com/mpfechner/movie-manager-cli/internal/util"
)

// Stats summarizes a user's collection
type Stats struct {
	Total   int
	Average float64
	Best    *store.Movie
	Worst   *store.Movie
}

// Stats computes aggregate statistics over the user's collection.
// Best and worst keep the earliest record on rating ties.
func (s *Service) Stats(user *store.User) (*Stats, error) {
	movies, err := s.store.GetAllMovies(user.ID)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, util.ErrEmptyCollection
	}

	sum := 0.0
	best, worst := movies[0], movies[0]
	for _, m := range movies {
		sum += m.Rating
		if m.Rating > best.Rating {
			best = m
		}
		if m.Rating < worst.Rating {
			worst = m
		}
	}

	average := math.Round(sum/float64(len(movies))*100) / 100

	return &Stats{
		Total:   len(movies),
		Average: average,
		Best:    best,
		Worst:   worst,
	}, nil
}

// Random picks one of the user's movies uniformly at random
func (s *Service) Random(user *store.User) (*store.Movie, error) {
	movies, err := s.store.GetAllMovies(user.ID)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, util.ErrEmptyCollection
	}

	return movies[rand.Intn(len(movies))], nil
}
