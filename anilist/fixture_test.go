package anilist

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// exchange is what a fixture server saw of one request.
type exchange struct {
	Header    http.Header
	Query     string
	Variables map[string]any
}

// fixture stands in for the Anilist endpoint and records every request.
type fixture struct {
	mu        sync.Mutex
	exchanges []exchange
}

func (f *fixture) requests() []exchange {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]exchange(nil), f.exchanges...)
}

func (f *fixture) last() exchange {
	requests := f.requests()
	return requests[len(requests)-1]
}

// newFixture starts a server answering every request with status and body.
func newFixture(t *testing.T, status int, body string, opts ...Option) (*Client, *fixture) {
	return newFixtureFunc(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}, opts...)
}

// newFixtureFunc starts a server delegating to handler after recording the request.
func newFixtureFunc(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Client, *fixture) {
	f := &fixture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload graphqlRequest
		_ = json.NewDecoder(r.Body).Decode(&payload)

		f.mu.Lock()
		f.exchanges = append(f.exchanges, exchange{
			Header:    r.Header.Clone(),
			Query:     payload.Query,
			Variables: payload.Variables,
		})
		f.mu.Unlock()

		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	c := New(opts...)
	c.endpoint = srv.URL
	return c, f
}
