package anilist

import (
	"context"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Character is a fictional character appearing in anime or manga.
type Character struct {
	ID          int               `json:"id" jsonschema:"description=ID of the character on Anilist."`
	Name        Name              `json:"name"`
	Image       *Image            `json:"image"`
	Description mo.Option[string] `json:"description"`
	Gender      mo.Option[Gender] `json:"gender"`
	DateOfBirth *FuzzyDate        `json:"dateOfBirth"`
	// Age is free text on Anilist, e.g. "17-18".
	Age         mo.Option[string] `json:"age"`
	BloodType   mo.Option[string] `json:"bloodType"`
	IsFavourite mo.Option[bool]   `json:"isFavourite"`
	Favourites  mo.Option[int]    `json:"favourites"`
	SiteURL     mo.Option[string] `json:"siteUrl"`
	// Media lists the media the character appears in, with its role in each.
	Media *MediaConnection `json:"media"`

	full bool
}

// CharacterConnection links a media or user to a list of characters.
type CharacterConnection struct {
	Edges    []CharacterEdge `json:"edges"`
	Nodes    []*Character    `json:"nodes"`
	PageInfo *PageInfo       `json:"pageInfo"`
}

// CharacterEdge is one character of a media with its role and voice actors.
type CharacterEdge struct {
	Role        mo.Option[CharacterRole] `json:"role"`
	Node        *Character               `json:"node"`
	VoiceActors []*Staff                 `json:"voiceActors"`
}

// Appearances returns the media the character appears in, restricted to the given roles when any are passed.
func (ch *Character) Appearances(roles ...CharacterRole) []*Media {
	if ch.Media == nil {
		return nil
	}

	return lo.FilterMap(ch.Media.Edges, func(edge MediaEdge, _ int) (*Media, bool) {
		if edge.Node == nil {
			return nil, false
		}
		return edge.Node, len(roles) == 0 || lo.Contains(roles, edge.CharacterRole.OrEmpty())
	})
}

// IsFullyLoaded reports whether the character came from GetCharacter.
func (ch *Character) IsFullyLoaded() bool {
	return ch.full
}

func (ch *Character) markFull()       { ch.full = true }
func (ch *Character) identifier() int { return ch.ID }

// Load fetches the full record of a partial character.
func (ch *Character) Load(ctx context.Context, c *Client) (*Character, error) {
	if ch.full {
		return ch, nil
	}
	return c.GetCharacter(ctx, ch.ID)
}

// Enrich fills the receiver in place with its full record.
func (ch *Character) Enrich(ctx context.Context, c *Client) error {
	if ch.full {
		return nil
	}

	full, err := ch.Load(ctx, c)
	if err != nil {
		return err
	}

	return merge(ch, full)
}

// GetCharacter fetches the full record of a character by its Anilist id.
func (c *Client) GetCharacter(ctx context.Context, id int) (*Character, error) {
	return getByID[Character](ctx, c, KindCharacter, id)
}

// SearchCharacters returns one page of characters whose names match term.
func (c *Client) SearchCharacters(ctx context.Context, term string, page, perPage int) (*Page[*Character], error) {
	return search[*Character](ctx, c, KindCharacter, term, page, perPage)
}
