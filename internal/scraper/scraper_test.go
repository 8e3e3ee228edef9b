package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/pfrederiksen/nfl-cap-tracker/internal/capdata"
	"github.com/rs/zerolog"
)

func fixtureServer(t *testing.T) *httptest.Server {
	t.Helper()
	fixtures := map[string]string{
		"/nfl/":                   "directory.html",
		"/nfl/buffalo-bills/cap/": "team_page.html",
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fixture, ok := fixtures[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		data, err := os.ReadFile(filepath.Join("..", "..", "testdata", "fixtures", fixture))
		if err != nil {
			t.Errorf("failed to read fixture %s: %v", fixture, err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write(data)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchTeamCap(t *testing.T) {
	srv := fixtureServer(t)
	c := New(Config{BaseURL: srv.URL + "/nfl/", Season: 2023}, zerolog.Nop())

	ds, err := c.FetchTeamCap(context.Background(), "buffalo-bills")
	if err != nil {
		t.Fatalf("FetchTeamCap failed: %v", err)
	}
	if len(ds.Records) != 2 {
		t.Errorf("expected 2 records, got %d", len(ds.Records))
	}
	if ds.TotalCapHit() != 6000000 {
		t.Errorf("expected total 6000000, got %d", ds.TotalCapHit())
	}
}

func TestFetchTeams(t *testing.T) {
	srv := fixtureServer(t)
	c := New(Config{BaseURL: srv.URL + "/nfl/", Season: 2023}, zerolog.Nop())

	teams, err := c.FetchTeams(context.Background())
	if err != nil {
		t.Fatalf("FetchTeams failed: %v", err)
	}
	if len(teams) != 32 {
		t.Errorf("expected 32 teams, got %d", len(teams))
	}
}

func TestFetchTeamCapNotFound(t *testing.T) {
	srv := fixtureServer(t)
	c := New(Config{BaseURL: srv.URL + "/nfl/", Season: 2023}, zerolog.Nop())

	_, err := c.FetchTeamCap(context.Background(), "no-such-team")

	var ferr *capdata.FetchError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected FetchError for 404, got %v", err)
	}
}

func TestFetchDocumentServerError(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := New(Config{BaseURL: srv.URL + "/", Season: 2023, MaxRetries: 2}, zerolog.Nop())
	_, err := c.fetchDocument(context.Background(), srv.URL+"/")

	var ferr *capdata.FetchError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if hits != 3 {
		t.Errorf("expected 3 attempts (1 + 2 retries), got %d", hits)
	}
}
