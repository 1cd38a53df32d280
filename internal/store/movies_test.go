package store

import (
	"errors"
	"testing"

	"github.com/mpfechner/movie-manager-cli/internal/util"
)

func testUser(t *testing.T, s *Store, name string) int64 {
	t.Helper()
	id, err := s.CreateUser(name)
	if err != nil {
		t.Fatalf("failed to create user %s: %v", name, err)
	}
	return id
}

func addTestMovie(t *testing.T, s *Store, userID int64, title string, year int, rating float64) *Movie {
	t.Helper()
	m := &Movie{
		Title:     title,
		Year:      year,
		Rating:    rating,
		PosterURL: "https://example.com/" + title + ".jpg",
		UserID:    userID,
	}
	if err := s.AddMovie(m); err != nil {
		t.Fatalf("failed to add movie %s: %v", title, err)
	}
	return m
}

func TestAddAndListMovies(t *testing.T) {
	store := openTestStore(t, "test-movies-add.db")
	userID := testUser(t, store, "Sara")

	addTestMovie(t, store, userID, "Inception", 2010, 8.8)

	movies, err := store.ListMovies(userID)
	if err != nil {
		t.Fatalf("failed to list movies: %v", err)
	}

	m, ok := movies["Inception"]
	if !ok {
		t.Fatal("expected 'Inception' in listing")
	}
	if m.Year != 2010 {
		t.Errorf("expected year 2010, got %d", m.Year)
	}
	if m.Rating != 8.8 {
		t.Errorf("expected rating 8.8, got %.1f", m.Rating)
	}
	if m.PosterURL != "https://example.com/Inception.jpg" {
		t.Errorf("unexpected poster URL %s", m.PosterURL)
	}
}

func TestAddMovieDuplicateKeepsOriginal(t *testing.T) {
	store := openTestStore(t, "test-movies-dup.db")
	userID := testUser(t, store, "Sara")

	addTestMovie(t, store, userID, "Inception", 2010, 8.8)

	dup := &Movie{Title: "Inception", Year: 1999, Rating: 1.0, UserID: userID}
	err := store.AddMovie(dup)
	if !errors.Is(err, util.ErrDuplicateMovie) {
		t.Fatalf("expected ErrDuplicateMovie, got %v", err)
	}

	// The stored record must keep the first call's values
	movies, err := store.ListMovies(userID)
	if err != nil {
		t.Fatalf("failed to list movies: %v", err)
	}
	if m := movies["Inception"]; m.Year != 2010 || m.Rating != 8.8 {
		t.Errorf("duplicate add overwrote record: year %d, rating %.1f", m.Year, m.Rating)
	}
}

func TestSameTitleDifferentUsers(t *testing.T) {
	store := openTestStore(t, "test-movies-crossuser.db")
	sara := testUser(t, store, "Sara")
	tom := testUser(t, store, "Tom")

	addTestMovie(t, store, sara, "Inception", 2010, 8.8)
	addTestMovie(t, store, tom, "Inception", 2010, 8.8)

	saraMovies, err := store.GetAllMovies(sara)
	if err != nil {
		t.Fatalf("failed to get movies: %v", err)
	}
	tomMovies, err := store.GetAllMovies(tom)
	if err != nil {
		t.Fatalf("failed to get movies: %v", err)
	}

	if len(saraMovies) != 1 || len(tomMovies) != 1 {
		t.Errorf("expected one movie per user, got %d and %d", len(saraMovies), len(tomMovies))
	}
}

func TestUpdateMovieNotFound(t *testing.T) {
	store := openTestStore(t, "test-movies-update-missing.db")
	userID := testUser(t, store, "Sara")
	addTestMovie(t, store, userID, "Inception", 2010, 8.8)

	before, err := store.GetAllMovies(userID)
	if err != nil {
		t.Fatalf("failed to get movies: %v", err)
	}

	updated, err := store.UpdateMovie("No Such Movie", 2000, 5.0, "", userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated {
		t.Error("expected false for non-existent title")
	}

	// Table must be unchanged
	after, err := store.GetAllMovies(userID)
	if err != nil {
		t.Fatalf("failed to get movies: %v", err)
	}
	if len(after) != len(before) {
		t.Fatalf("row count changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if *before[i] != *after[i] {
			t.Errorf("record changed: %+v -> %+v", before[i], after[i])
		}
	}
}

func TestUpdateMovie(t *testing.T) {
	store := openTestStore(t, "test-movies-update.db")
	userID := testUser(t, store, "Sara")
	addTestMovie(t, store, userID, "Inception", 2010, 8.8)

	updated, err := store.UpdateMovie("Inception", 2010, 9.0, "https://example.com/new.jpg", userID)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated {
		t.Fatal("expected update to apply")
	}

	movies, _ := store.ListMovies(userID)
	m := movies["Inception"]
	if m.Rating != 9.0 {
		t.Errorf("expected rating 9.0, got %.1f", m.Rating)
	}
	if m.PosterURL != "https://example.com/new.jpg" {
		t.Errorf("unexpected poster URL %s", m.PosterURL)
	}
}

func TestDeleteMovieTwice(t *testing.T) {
	store := openTestStore(t, "test-movies-delete.db")
	userID := testUser(t, store, "Sara")
	addTestMovie(t, store, userID, "Inception", 2010, 8.8)

	deleted, err := store.DeleteMovie("Inception", userID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !deleted {
		t.Error("expected first delete to return true")
	}

	movies, _ := store.ListMovies(userID)
	if _, ok := movies["Inception"]; ok {
		t.Error("deleted title still listed")
	}

	deleted, err = store.DeleteMovie("Inception", userID)
	if err != nil {
		t.Fatalf("second delete errored: %v", err)
	}
	if deleted {
		t.Error("expected second delete to return false")
	}
}

func TestSetNote(t *testing.T) {
	store := openTestStore(t, "test-movies-note.db")
	userID := testUser(t, store, "Sara")
	addTestMovie(t, store, userID, "Inception", 2010, 8.8)

	set, err := store.SetNote("Inception", "My favorite Nolan film!", userID)
	if err != nil {
		t.Fatalf("set note failed: %v", err)
	}
	if !set {
		t.Fatal("expected note to apply")
	}

	movies, _ := store.ListMovies(userID)
	if movies["Inception"].Note != "My favorite Nolan film!" {
		t.Errorf("unexpected note %q", movies["Inception"].Note)
	}

	set, err = store.SetNote("No Such Movie", "note", userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set {
		t.Error("expected false for non-existent title")
	}
}

func TestSortedByRating(t *testing.T) {
	store := openTestStore(t, "test-movies-sort-rating.db")
	userID := testUser(t, store, "Sara")

	addTestMovie(t, store, userID, "Plan 9 from Outer Space", 1957, 3.9)
	addTestMovie(t, store, userID, "Inception", 2010, 8.8)
	addTestMovie(t, store, userID, "The Room", 2003, 3.9)
	addTestMovie(t, store, userID, "Gladiator", 2000, 8.5)

	sorted, err := store.SortedByRating(userID)
	if err != nil {
		t.Fatalf("failed to sort: %v", err)
	}

	all, err := store.GetAllMovies(userID)
	if err != nil {
		t.Fatalf("failed to get all: %v", err)
	}

	// Permutation of the full collection
	if len(sorted) != len(all) {
		t.Fatalf("expected %d movies, got %d", len(all), len(sorted))
	}
	seen := make(map[string]bool)
	for _, m := range sorted {
		seen[m.Title] = true
	}
	for _, m := range all {
		if !seen[m.Title] {
			t.Errorf("'%s' missing from sorted output", m.Title)
		}
	}

	// Descending by rating
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Rating < sorted[i].Rating {
			t.Errorf("not sorted descending: %.1f before %.1f", sorted[i-1].Rating, sorted[i].Rating)
		}
	}

	// Equal ratings keep storage order
	if sorted[2].Title != "Plan 9 from Outer Space" || sorted[3].Title != "The Room" {
		t.Errorf("tie not broken by storage order: %s, %s", sorted[2].Title, sorted[3].Title)
	}
}

func TestSortedByYear(t *testing.T) {
	store := openTestStore(t, "test-movies-sort-year.db")
	userID := testUser(t, store, "Sara")

	addTestMovie(t, store, userID, "Inception", 2010, 8.8)
	addTestMovie(t, store, userID, "Gladiator", 2000, 8.5)
	addTestMovie(t, store, userID, "Interstellar", 2014, 8.7)

	sorted, err := store.SortedByYear(userID)
	if err != nil {
		t.Fatalf("failed to sort: %v", err)
	}

	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Year > sorted[i].Year {
			t.Errorf("not sorted ascending: %d before %d", sorted[i-1].Year, sorted[i].Year)
		}
	}
}

func TestFilterByMinRating(t *testing.T) {
	store := openTestStore(t, "test-movies-filter.db")
	userID := testUser(t, store, "Sara")

	addTestMovie(t, store, userID, "Inception", 2010, 8.8)
	addTestMovie(t, store, userID, "Gladiator", 2000, 8.0)
	addTestMovie(t, store, userID, "The Room", 2003, 3.9)

	filtered, err := store.FilterByMinRating(userID, 8.0)
	if err != nil {
		t.Fatalf("failed to filter: %v", err)
	}

	// Exactly the subset with rating >= 8.0 (threshold inclusive)
	expected := map[string]bool{"Inception": true, "Gladiator": true}
	if len(filtered) != len(expected) {
		t.Fatalf("expected %d movies, got %d", len(expected), len(filtered))
	}
	for _, m := range filtered {
		if !expected[m.Title] {
			t.Errorf("unexpected title '%s' in filtered output", m.Title)
		}
		if m.Rating < 8.0 {
			t.Errorf("'%s' rated %.1f, below the threshold", m.Title, m.Rating)
		}
	}
}
