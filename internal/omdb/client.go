package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mpfechner/movie-manager-cli/internal/util"
)

const (
	// DefaultBaseURL is the OMDb API endpoint
	DefaultBaseURL = "https://www.omdbapi.com/"

	// UserAgent identifies this application to OMDb
	UserAgent = "movie-manager-cli/1.0 (https://github.com/mpfechner/movie-manager-cli)"
)

// Client handles OMDb API requests
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	userAgent  string
	testMode   bool
}

// Config holds client configuration
type Config struct {
	APIKey   string
	BaseURL  string // Defaults to DefaultBaseURL
	TestMode bool   // Return fixture data without touching the network
}

// NewClient creates a new OMDb API client
func NewClient(cfg *Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:   baseURL,
		apiKey:    cfg.APIKey,
		userAgent: UserAgent,
		testMode:  cfg.TestMode,
	}
}

// Result is the structured record returned for a successful lookup
type Result struct {
	Title     string
	Year      int
	Rating    float64
	PosterURL string
	IMDbID    string
}

// response mirrors the OMDb JSON payload
type response struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	IMDbRating string `json:"imdbRating"`
	Poster     string `json:"Poster"`
	IMDbID     string `json:"imdbID"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

// Lookup fetches metadata for a title.
// Returns (nil, nil) when OMDb knows no such movie - the caller treats an
// absent result as "cannot add". Errors are reserved for transport and
// decode failures.
func (c *Client) Lookup(ctx context.Context, title string) (*Result, error) {
	if title == "" {
		return nil, fmt.Errorf("title cannot be empty")
	}

	if c.testMode {
		util.DebugLog("OMDb: test mode, returning fixture data for '%s'", title)
		return &Result{
			Title:     title,
			Year:      2000,
			Rating:    7.0,
			PosterURL: "https://via.placeholder.com/150",
			IMDbID:    "tt0000000",
		}, nil
	}

	body, err := c.get(ctx, title)
	if err != nil {
		return nil, err
	}

	if body.Response == "False" {
		util.DebugLog("OMDb: no result for '%s': %s", title, body.Error)
		return nil, nil
	}

	year, ok := parseYear(body.Year)
	if !ok {
		util.DebugLog("OMDb: unparsable year %q for '%s'", body.Year, title)
		return nil, nil
	}

	rating, err := strconv.ParseFloat(body.IMDbRating, 64)
	if err != nil {
		// "N/A" for titles without a rating yet
		rating = 0.0
	}

	util.DebugLog("OMDb: found '%s' (%d, rating %.1f)", body.Title, year, rating)

	return &Result{
		Title:     body.Title,
		Year:      year,
		Rating:    rating,
		PosterURL: body.Poster,
		IMDbID:    body.IMDbID,
	}, nil
}

// LookupIMDbID returns the IMDb identifier for a title, or "" if unknown
func (c *Client) LookupIMDbID(ctx context.Context, title string) (string, error) {
	result, err := c.Lookup(ctx, title)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", nil
	}
	return result.IMDbID, nil
}

func (c *Client) get(ctx context.Context, title string) (*response, error) {
	urlStr := fmt.Sprintf("%s?apikey=%s&t=%s", c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(title))

	req, err := http.NewRequestWithContext(ctx, "GET", urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}

	var parsed response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &parsed, nil
}

// parseYear extracts the leading year from an OMDb year field.
// Series report ranges like "2010-2012"; the first year wins.
func parseYear(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	year, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return year, true
}
