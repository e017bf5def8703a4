package anilist

import (
	"context"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Studio is an animation studio or a producer.
type Studio struct {
	ID                int               `json:"id"`
	Name              mo.Option[string] `json:"name"`
	IsAnimationStudio mo.Option[bool]   `json:"isAnimationStudio"`
	SiteURL           mo.Option[string] `json:"siteUrl"`
	IsFavourite       mo.Option[bool]   `json:"isFavourite"`
	Favourites        mo.Option[int]    `json:"favourites"`
	Media             *MediaConnection  `json:"media"`

	full bool
}

// StudioConnection links a media or user to a list of studios.
type StudioConnection struct {
	Edges    []StudioEdge `json:"edges"`
	Nodes    []*Studio    `json:"nodes"`
	PageInfo *PageInfo    `json:"pageInfo"`
}

// StudioEdge is one studio of a media.
type StudioEdge struct {
	// IsMain is false for producers and secondary studios.
	IsMain mo.Option[bool] `json:"isMain"`
	Node   *Studio         `json:"node"`
}

// Productions returns the media the studio worked on.
// With mainOnly, only media where it was the main studio are kept.
func (s *Studio) Productions(mainOnly bool) []*Media {
	if s.Media == nil {
		return nil
	}

	return lo.FilterMap(s.Media.Edges, func(edge MediaEdge, _ int) (*Media, bool) {
		return edge.Node, edge.Node != nil && (!mainOnly || edge.IsMainStudio.OrEmpty())
	})
}

// IsFullyLoaded reports whether the studio came from GetStudio.
func (s *Studio) IsFullyLoaded() bool {
	return s.full
}

func (s *Studio) markFull()       { s.full = true }
func (s *Studio) identifier() int { return s.ID }

// Load fetches the full record of a partial studio.
func (s *Studio) Load(ctx context.Context, c *Client) (*Studio, error) {
	if s.full {
		return s, nil
	}
	return c.GetStudio(ctx, s.ID)
}

// Enrich fills the receiver in place with its full record.
func (s *Studio) Enrich(ctx context.Context, c *Client) error {
	if s.full {
		return nil
	}

	full, err := s.Load(ctx, c)
	if err != nil {
		return err
	}

	return merge(s, full)
}

// GetStudio fetches the full record of a studio by its Anilist id.
func (c *Client) GetStudio(ctx context.Context, id int) (*Studio, error) {
	return getByID[Studio](ctx, c, KindStudio, id)
}

// SearchStudios returns one page of studios whose names match term.
func (c *Client) SearchStudios(ctx context.Context, term string, page, perPage int) (*Page[*Studio], error) {
	return search[*Studio](ctx, c, KindStudio, term, page, perPage)
}
