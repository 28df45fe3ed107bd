package fred

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func getTestingClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	u, _ := url.Parse(srv.URL)
	cl, err := NewClient(srv.Client(), u, "testkey")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return cl
}

func TestNewClientDefaults(t *testing.T) {
	cl, err := NewClient(nil, nil, "testkey")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cl.baseURL.String() != defaultHostname {
		t.Errorf("nil client url is incorrect, expected '%s', got '%s'", defaultHostname, cl.baseURL.String())
	}
	if cl.httpClient != http.DefaultClient {
		t.Error("nil client is not a default one")
	}
}

func TestNewClientNoAPIKey(t *testing.T) {
	cl, err := NewClient(nil, nil, "")
	if !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("expected ErrNoAPIKey, got %v", err)
	}
	if cl != nil {
		t.Errorf("expected nil client, got %+v", cl)
	}
}

func TestSearchSeries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fred/series/search" {
			t.Fatalf("incorrect path %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("api_key") != "testkey" || q.Get("file_type") != "json" {
			t.Fatalf("missing key/format params in %q", r.URL.RawQuery)
		}
		if q.Get("search_text") != "unemployment" || q.Get("limit") != "2" || q.Get("offset") != "4" {
			t.Fatalf("unexpected query %q", r.URL.RawQuery)
		}

		rw.Header().Set("Content-Type", "application/json")
		_, _ = rw.Write([]byte(`{
			"count": 120, "offset": 4, "limit": 2,
			"seriess": [
				{"id": "UNRATE", "title": "Unemployment Rate", "frequency": "Monthly", "units": "Percent", "popularity": 94},
				{"id": "U6RATE", "title": "Total Unemployed", "frequency": "Monthly", "units": "Percent", "popularity": 60}
			]
		}`))
	}))
	defer srv.Close()

	cl := getTestingClient(t, srv)
	sl, _, err := cl.SearchSeries(context.Background(), "unemployment", &SearchOptions{Limit: 2, Offset: 4})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, 120, sl.Count)
	assert.Len(t, sl.Series, 2)
	assert.Equal(t, "UNRATE", sl.Series[0].ID)
}

func TestSearchSeriesEmptyQuery(t *testing.T) {
	cl, _ := NewClient(nil, nil, "testkey")
	_, _, err := cl.SearchSeries(context.Background(), "", nil)
	if err == nil {
		t.Fatal("expected error for empty search text")
	}
}

func TestSeriesInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fred/series" {
			t.Fatalf("incorrect path %q", r.URL.Path)
		}
		if r.URL.Query().Get("series_id") != "GDP" {
			t.Fatalf("unexpected query %q", r.URL.RawQuery)
		}
		_, _ = rw.Write([]byte(`{"seriess": [{"id": "GDP", "title": "Gross Domestic Product", "units": "Billions of Dollars"}]}`))
	}))
	defer srv.Close()

	cl := getTestingClient(t, srv)
	s, _, err := cl.SeriesInfo(context.Background(), "GDP")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "Gross Domestic Product", s.Title)
}

func TestSeriesInfoEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		_, _ = rw.Write([]byte(`{"seriess": []}`))
	}))
	defer srv.Close()

	cl := getTestingClient(t, srv)
	_, _, err := cl.SeriesInfo(context.Background(), "NOPE")
	if err == nil {
		t.Fatal("expected error for empty seriess array")
	}
}

func TestObservations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fred/series/observations" {
			t.Fatalf("incorrect path %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("series_id") != "UNRATE" || q.Get("observation_start") != "2020-01-01" {
			t.Fatalf("unexpected query %q", r.URL.RawQuery)
		}
		_, _ = rw.Write([]byte(`{
			"count": 3, "offset": 0, "limit": 100000,
			"observations": [
				{"date": "2020-01-01", "value": "3.5"},
				{"date": "2020-02-01", "value": "3.5"},
				{"date": "2020-03-01", "value": "."}
			]
		}`))
	}))
	defer srv.Close()

	cl := getTestingClient(t, srv)
	ol, _, err := cl.Observations(context.Background(), "UNRATE", &ObservationOptions{ObservationStart: "2020-01-01"})
	if err != nil {
		t.Fatal(err)
	}
	assert.Len(t, ol.Observations, 3)
	assert.Equal(t, ".", ol.Observations[2].Value)
}

func TestAPIErrorDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusBadRequest)
		_, _ = rw.Write([]byte(`{"error_code": 400, "error_message": "Bad Request. Variable api_key is not a 32 character alpha-numeric lower-case string."}`))
	}))
	defer srv.Close()

	cl := getTestingClient(t, srv)
	_, _, err := cl.SeriesInfo(context.Background(), "GDP")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	assert.Equal(t, 400, apiErr.Code)
	assert.Contains(t, apiErr.Error(), "api_key")
}

func TestAPIErrorNonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusInternalServerError)
		_, _ = rw.Write([]byte(`<html>boom</html>`))
	}))
	defer srv.Close()

	cl := getTestingClient(t, srv)
	_, _, err := cl.Sources(context.Background(), nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
}

func TestContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	cl := getTestingClient(t, srv)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := cl.Releases(ctx, nil)
	if err == nil {
		t.Fatal("expected error from canceled context")
	}
}
