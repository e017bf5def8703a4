// Package anilist provides a client for the Anilist GraphQL API.
package anilist

import (
	"net/http"
	"strings"
	"time"

	"github.com/anisan-cli/anilist/constant"
	"github.com/anisan-cli/anilist/key"
	"github.com/anisan-cli/anilist/network"
	"github.com/spf13/viper"
)

// Endpoint is the fixed AniList GraphQL endpoint.
const Endpoint = constant.Endpoint

// Client sends queries to AniList. It is immutable after New and safe for concurrent use.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
	userAgent  string
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the bearer token sent in the Authorization header.
// An empty token leaves the client anonymous.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = strings.TrimSpace(token)
	}
}

// WithHTTPClient replaces the shared network.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout bounds every request. Zero means no bound beyond the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New returns a client for the AniList endpoint.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: network.Client,
		endpoint:   Endpoint,
		userAgent:  constant.UserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewFromConfig returns a client configured from the global viper keys under "client".
// Call config.Setup first to load files and environment bindings.
func NewFromConfig(opts ...Option) *Client {
	return NewFromViper(viper.GetViper(), opts...)
}

// NewFromViper is NewFromConfig reading from v, e.g. an instance prepared with config.Load.
func NewFromViper(v *viper.Viper, opts ...Option) *Client {
	base := []Option{
		WithToken(v.GetString(key.ClientToken)),
		WithTimeout(time.Duration(v.GetInt(key.ClientTimeout)) * time.Second),
		WithUserAgent(v.GetString(key.ClientUserAgent)),
	}

	return New(append(base, opts...)...)
}

// Authenticated reports whether requests carry a bearer token.
func (c *Client) Authenticated() bool {
	return c.token != ""
}
