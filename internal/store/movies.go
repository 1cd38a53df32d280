package store

import (
	"fmt"

	"github.com/mpfechner/movie-manager-cli/internal/util"
)

const movieColumns = `id, title, year, rating, COALESCE(poster_url, ''), COALESCE(note, ''), user_id`

// AddMovie inserts a new movie for a user and sets m.ID.
// Returns util.ErrDuplicateMovie if the user already holds this title;
// the existing record is never overwritten.
func (s *Store) AddMovie(m *Movie) error {
	result, err := s.db.Exec(`
		INSERT INTO movies (title, year, rating, poster_url, user_id)
		VALUES (?, ?, ?, ?, ?)
	`, m.Title, m.Year, m.Rating, m.PosterURL, m.UserID)

	if err != nil {
		if isUniqueViolation(err) {
			return util.ErrDuplicateMovie
		}
		return fmt.Errorf("failed to insert movie: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get movie ID: %w", err)
	}
	m.ID = id

	return nil
}

// ListMovies returns the user's collection keyed by title.
// Titles are unique per user, so each key maps to exactly one record.
func (s *Store) ListMovies(userID int64) (map[string]*Movie, error) {
	movies, err := s.GetAllMovies(userID)
	if err != nil {
		return nil, err
	}

	byTitle := make(map[string]*Movie, len(movies))
	for _, m := range movies {
		byTitle[m.Title] = m
	}

	return byTitle, nil
}

// GetAllMovies retrieves all of a user's movies in storage order
func (s *Store) GetAllMovies(userID int64) ([]*Movie, error) {
	return s.queryMovies(`
		SELECT `+movieColumns+`
		FROM movies WHERE user_id = ?
		ORDER BY id
	`, userID)
}

// SortedByRating retrieves a user's movies ordered by rating descending,
// ties broken by storage order
func (s *Store) SortedByRating(userID int64) ([]*Movie, error) {
	return s.queryMovies(`
		SELECT `+movieColumns+`
		FROM movies WHERE user_id = ?
		ORDER BY rating DESC, id
	`, userID)
}

// SortedByYear retrieves a user's movies ordered by year ascending,
// ties broken by storage order
func (s *Store) SortedByYear(userID int64) ([]*Movie, error) {
	return s.queryMovies(`
		SELECT `+movieColumns+`
		FROM movies WHERE user_id = ?
		ORDER BY year, id
	`, userID)
}

// FilterByMinRating retrieves a user's movies with rating >= min
func (s *Store) FilterByMinRating(userID int64, min float64) ([]*Movie, error) {
	return s.queryMovies(`
		SELECT `+movieColumns+`
		FROM movies WHERE user_id = ? AND rating >= ?
		ORDER BY id
	`, userID, min)
}

// UpdateMovie updates the matching row in place.
// Returns false when no row matches (title, userID); absence is a normal
// outcome, not an error.
func (s *Store) UpdateMovie(title string, year int, rating float64, posterURL string, userID int64) (bool, error) {
	result, err := s.db.Exec(`
		UPDATE movies SET year = ?, rating = ?, poster_url = ?
		WHERE title = ? AND user_id = ?
	`, year, rating, posterURL, title, userID)

	if err != nil {
		return false, fmt.Errorf("failed to update movie: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected > 0, nil
}

// DeleteMovie removes the matching row. Same not-found-is-false contract
// as UpdateMovie.
func (s *Store) DeleteMovie(title string, userID int64) (bool, error) {
	result, err := s.db.Exec(`
		DELETE FROM movies WHERE title = ? AND user_id = ?
	`, title, userID)

	if err != nil {
		return false, fmt.Errorf("failed to delete movie: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected > 0, nil
}

// SetNote attaches a note to the matching row. Same not-found-is-false
// contract as UpdateMovie.
func (s *Store) SetNote(title, note string, userID int64) (bool, error) {
	result, err := s.db.Exec(`
		UPDATE movies SET note = ? WHERE title = ? AND user_id = ?
	`, note, title, userID)

	if err != nil {
		return false, fmt.Errorf("failed to set note: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected > 0, nil
}

// CountMovies returns the number of movies a user holds
func (s *Store) CountMovies(userID int64) (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM movies WHERE user_id = ?", userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	return count, nil
}

func (s *Store) queryMovies(query string, args ...interface{}) ([]*Movie, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer rows.Close()

	var movies []*Movie
	for rows.Next() {
		m := &Movie{}
		err := rows.Scan(&m.ID, &m.Title, &m.Year, &m.Rating, &m.PosterURL, &m.Note, &m.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, m)
	}

	return movies, rows.Err()
}
