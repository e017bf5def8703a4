package anilist

import (
	"context"
	"fmt"
)

// GetAnime fetches the full record of an anime by its Anilist id.
func (c *Client) GetAnime(ctx context.Context, id int) (*Media, error) {
	return getByID[Media](ctx, c, KindAnime, id)
}

// GetAnimeByMalID fetches the full record of an anime by its MyAnimeList id.
func (c *Client) GetAnimeByMalID(ctx context.Context, malID int) (*Media, error) {
	return getMediaByMalID(ctx, c, KindAnime, malID)
}

// SearchAnime returns one page of anime whose titles match term.
// page defaults to 1 and perPage to 10; perPage is capped at 50.
func (c *Client) SearchAnime(ctx context.Context, term string, page, perPage int) (*Page[*Media], error) {
	return search[*Media](ctx, c, KindAnime, term, page, perPage)
}

func getMediaByMalID(ctx context.Context, c *Client, kind Kind, malID int) (*Media, error) {
	if malID <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidID, malID)
	}

	media, err := get[Media](ctx, c, kind, map[string]any{"idMal": malID})
	if err != nil {
		return nil, err
	}

	if got := media.IDMal.OrEmpty(); got != malID {
		return nil, &DeserializeError{
			Entity: string(kind),
			Err:    fmt.Errorf("%w: requested mal id %d, got %d", ErrIDMismatch, malID, got),
		}
	}

	return media, nil
}
