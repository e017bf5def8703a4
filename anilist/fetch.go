package anilist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// entity is implemented by every top-level model.
type entity interface {
	identifier() int
	markFull()
}

// PageInfo describes the page returned by a search.
type PageInfo struct {
	Total       int  `json:"total"`
	PerPage     int  `json:"perPage"`
	CurrentPage int  `json:"currentPage"`
	LastPage    int  `json:"lastPage"`
	HasNextPage bool `json:"hasNextPage"`
}

// Page is one page of search results.
type Page[T any] struct {
	PageInfo PageInfo `json:"pageInfo"`
	Items    []T      `json:"items"`
}

// normalizePaging clamps page and perPage to what AniList accepts.
func normalizePaging(page, perPage int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

// run binds vars to the template of kind and mode, executes it and returns the root member.
func (c *Client) run(ctx context.Context, kind Kind, mode Mode, vars map[string]any) (Template, json.RawMessage, error) {
	t, err := Lookup(kind, mode)
	if err != nil {
		return t, nil, err
	}

	bound, err := t.Bind(vars)
	if err != nil {
		return t, nil, err
	}

	data, err := c.Execute(ctx, t.Document, bound)
	if err != nil {
		return t, nil, err
	}

	if mode == ModeSearch {
		data, err = member(data, "Page", kind)
		if err != nil {
			return t, nil, err
		}
	}

	return t, data, nil
}

// member returns the non-null member name of the JSON object raw.
func member(raw json.RawMessage, name string, kind Kind) (json.RawMessage, error) {
	var object map[string]json.RawMessage
	if err := json.Unmarshal(raw, &object); err != nil {
		return nil, &DeserializeError{Entity: string(kind), Err: err}
	}

	value, ok := object[name]
	if !ok || isNull(value) {
		return nil, &DeserializeError{Entity: string(kind), Err: fmt.Errorf("missing %q in response", name)}
	}

	return value, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || strings.TrimSpace(string(raw)) == "null"
}

// get fetches one full entity with the get template of kind.
func get[T any, PT interface {
	*T
	entity
}](ctx context.Context, c *Client, kind Kind, vars map[string]any) (PT, error) {
	t, data, err := c.run(ctx, kind, ModeGet, vars)
	if err != nil {
		return nil, err
	}

	raw, err := member(data, t.Root, kind)
	if err != nil {
		return nil, err
	}

	var value PT = new(T)
	if err := json.Unmarshal(raw, value); err != nil {
		return nil, &DeserializeError{Entity: string(kind), Err: err}
	}

	value.markFull()
	return value, nil
}

// getByID fetches one full entity by its AniList id and checks the response describes it.
func getByID[T any, PT interface {
	*T
	entity
}](ctx context.Context, c *Client, kind Kind, id int) (PT, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}

	value, err := get[T, PT](ctx, c, kind, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}

	if got := value.identifier(); got != id {
		return nil, &DeserializeError{
			Entity: string(kind),
			Err:    fmt.Errorf("%w: requested %d, got %d", ErrIDMismatch, id, got),
		}
	}

	return value, nil
}

// search fetches one page of partial entities with the search template of kind.
// An empty term lists entities without filtering.
func search[T any](ctx context.Context, c *Client, kind Kind, term string, page, perPage int) (*Page[T], error) {
	page, perPage = normalizePaging(page, perPage)

	vars := map[string]any{
		"page":    page,
		"perPage": perPage,
	}
	if term = strings.TrimSpace(term); term != "" {
		vars["search"] = term
	}

	t, data, err := c.run(ctx, kind, ModeSearch, vars)
	if err != nil {
		return nil, err
	}

	pageInfo, err := member(data, "pageInfo", kind)
	if err != nil {
		return nil, err
	}

	result := &Page[T]{}
	if err := json.Unmarshal(pageInfo, &result.PageInfo); err != nil {
		return nil, &DeserializeError{Entity: string(kind), Err: err}
	}

	items, err := member(data, t.Root, kind)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(items, &result.Items); err != nil {
		return nil, &DeserializeError{Entity: string(kind), Err: err}
	}

	if len(result.Items) > perPage {
		result.Items = result.Items[:perPage]
	}

	return result, nil
}
