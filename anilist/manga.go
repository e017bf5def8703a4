package anilist

import "context"

// GetManga fetches the full record of a manga by its Anilist id.
func (c *Client) GetManga(ctx context.Context, id int) (*Media, error) {
	return getByID[Media](ctx, c, KindManga, id)
}

// GetMangaByMalID fetches the full record of a manga by its MyAnimeList id.
func (c *Client) GetMangaByMalID(ctx context.Context, malID int) (*Media, error) {
	return getMediaByMalID(ctx, c, KindManga, malID)
}

// SearchManga returns one page of manga whose titles match term.
func (c *Client) SearchManga(ctx context.Context, term string, page, perPage int) (*Page[*Media], error) {
	return search[*Media](ctx, c, KindManga, term, page, perPage)
}
