package store

// Schema v1 - Initial database schema
const schemaV1 = `
-- Schema version tracking
CREATE TABLE IF NOT EXISTS schema_version (
  version INTEGER PRIMARY KEY,
  applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- User profiles sharing one store
CREATE TABLE IF NOT EXISTS users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT UNIQUE NOT NULL
);

-- Movies, scoped per user; a user cannot hold the same title twice
CREATE TABLE IF NOT EXISTS movies (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  year INTEGER NOT NULL,
  rating REAL NOT NULL,
  poster_url TEXT,
  note TEXT,
  user_id INTEGER NOT NULL REFERENCES users(id),
  UNIQUE(title, user_id)
);
`

// Schema v2 - Indexes for the per-user query variants
const schemaV2 = `
CREATE INDEX IF NOT EXISTS idx_movies_user_id ON movies(user_id);
CREATE INDEX IF NOT EXISTS idx_movies_user_rating ON movies(user_id, rating);
CREATE INDEX IF NOT EXISTS idx_movies_user_year ON movies(user_id, year);
`
