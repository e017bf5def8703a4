// Package anilist provides a client for the Anilist GraphQL API.
package anilist

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidID is returned before any request is sent when an id is not positive.
	ErrInvalidID = errors.New("anilist: invalid id")
	// ErrEmptyName is returned before any request is sent when a lookup name is blank.
	ErrEmptyName = errors.New("anilist: empty name")
	// ErrUnknownTemplate is returned when no query document exists for a kind and mode.
	ErrUnknownTemplate = errors.New("anilist: unknown query template")
	// ErrUnknownVariable is returned when a variable is bound that the template does not declare.
	ErrUnknownVariable = errors.New("anilist: unknown query variable")
	// ErrIDMismatch is returned when a response describes a different entity than the one requested.
	ErrIDMismatch = errors.New("anilist: id mismatch")
	// ErrUnknownMediaType is returned when a partial media lacks the type needed to reload it.
	ErrUnknownMediaType = errors.New("anilist: unknown media type")
	// ErrNoMatch is returned when a closest-match search yields no candidate.
	ErrNoMatch = errors.New("anilist: no match")
)

// GraphQLError is one entry of the "errors" array of a GraphQL response.
type GraphQLError struct {
	Message   string `json:"message"`
	Status    int    `json:"status,omitempty"`
	Locations []struct {
		Line   int `json:"line"`
		Column int `json:"column"`
	} `json:"locations,omitempty"`
}

// NetworkError reports a request that could not be sent or whose body could not be read.
// Context cancellation and deadlines surface here.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "anilist: network: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError reports a GraphQL error returned by AniList.
// Message is the first error message, verbatim.
type APIError struct {
	Message string
	// Code is the status reported by the first GraphQL error, or the HTTP status when it has none.
	Code int
	// Status is the HTTP status of the response.
	Status int
	Errors []GraphQLError
}

func (e *APIError) Error() string {
	if len(e.Errors) > 1 {
		return fmt.Sprintf("anilist: api error %d: %s (and %d more)", e.Code, e.Message, len(e.Errors)-1)
	}
	return fmt.Sprintf("anilist: api error %d: %s", e.Code, e.Message)
}

// NotFound reports whether AniList answered that the requested entity does not exist.
func (e *APIError) NotFound() bool {
	return e.Code == http.StatusNotFound
}

// RateLimited reports whether the request was rejected by AniList's rate limiter.
func (e *APIError) RateLimited() bool {
	return e.Code == http.StatusTooManyRequests
}

// DecodeError reports a response body that is not valid JSON.
type DecodeError struct {
	Status int
	// Body holds at most the first kilobyte of the offending response.
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("anilist: decode response (status %d): %v", e.Status, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DeserializeError reports valid JSON that does not have the shape of the requested entity.
type DeserializeError struct {
	Entity string
	Err    error
}

func (e *DeserializeError) Error() string {
	return fmt.Sprintf("anilist: deserialize %s: %v", e.Entity, e.Err)
}

func (e *DeserializeError) Unwrap() error {
	return e.Err
}
