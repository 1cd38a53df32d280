package htmlexport

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mpfechner/movie-manager-cli/internal/store"
	"github.com/mpfechner/movie-manager-cli/internal/util"
)

// stubLinks resolves IMDb ids from a fixed map
type stubLinks struct {
	ids map[string]string
}

func (s *stubLinks) LookupIMDbID(ctx context.Context, title string) (string, error) {
	return s.ids[title], nil
}

func newTestStore(t *testing.T, name string) (*store.Store, int64) {
	t.Helper()

	t.Cleanup(func() {
		os.Remove(name)
		os.Remove(name + "-shm")
		os.Remove(name + "-wal")
	})

	db, err := store.Open(name)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	id, err := db.CreateUser("Sara")
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return db, id
}

func TestExportRendersAllMovies(t *testing.T) {
	db, userID := newTestStore(t, "test-export.db")

	db.AddMovie(&store.Movie{Title: "Inception", Year: 2010, Rating: 8.8, PosterURL: "https://img/i.jpg", UserID: userID})
	db.AddMovie(&store.Movie{Title: "Gladiator", Year: 2000, Rating: 8.5, PosterURL: "https://img/g.jpg", UserID: userID})

	links := &stubLinks{ids: map[string]string{"Inception": "tt1375666"}}
	exporter := New(&Config{Store: db, Links: links})

	output := filepath.Join(t.TempDir(), "movies.html")
	user := &store.User{ID: userID, Name: "Sara"}

	if err := exporter.Export(context.Background(), user, output, nil); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	html := string(data)

	for _, want := range []string{"Inception", "Gladiator", "Sara", "https://www.imdb.com/title/tt1375666"} {
		if !strings.Contains(html, want) {
			t.Errorf("export missing %q", want)
		}
	}

	// Gladiator has no known id and falls back to a dead link
	if !strings.Contains(html, `href="#"`) {
		t.Error("expected fallback link for unresolved movie")
	}
}

func TestExportEscapesTitles(t *testing.T) {
	db, userID := newTestStore(t, "test-export-escape.db")

	db.AddMovie(&store.Movie{Title: `<script>alert("x")</script>`, Year: 2000, Rating: 5.0, UserID: userID})

	exporter := New(&Config{Store: db})
	output := filepath.Join(t.TempDir(), "movies.html")
	user := &store.User{ID: userID, Name: "Sara"}

	if err := exporter.Export(context.Background(), user, output, nil); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, _ := os.ReadFile(output)
	if strings.Contains(string(data), "<script>alert") {
		t.Error("title was not HTML-escaped")
	}
}

func TestExportEmptyCollection(t *testing.T) {
	db, userID := newTestStore(t, "test-export-empty.db")

	exporter := New(&Config{Store: db})
	output := filepath.Join(t.TempDir(), "movies.html")
	user := &store.User{ID: userID, Name: "Sara"}

	err := exporter.Export(context.Background(), user, output, nil)
	if !errors.Is(err, util.ErrEmptyCollection) {
		t.Fatalf("expected ErrEmptyCollection, got %v", err)
	}

	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("no file should be written for an empty collection")
	}
}
