package anilist

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/net/html"
)

// Media is an anime or a manga. Type tells them apart.
type Media struct {
	// ID is the unique identifier for the media on Anilist.
	ID int `json:"id" jsonschema:"description=ID of the media on Anilist."`
	// IDMal is the id of the media on MyAnimeList.
	IDMal mo.Option[int]       `json:"idMal" jsonschema:"description=ID of the media on MyAnimeList."`
	Type  mo.Option[MediaType] `json:"type" jsonschema:"enum=ANIME,enum=MANGA"`
	// Title is the structured title metadata for the media.
	Title  Title                  `json:"title"`
	Format mo.Option[MediaFormat] `json:"format"`
	// Status is the release status. (FINISHED, RELEASING, NOT_YET_RELEASED, CANCELLED, HIATUS)
	Status mo.Option[MediaStatus] `json:"status" jsonschema:"enum=FINISHED,enum=RELEASING,enum=NOT_YET_RELEASED,enum=CANCELLED,enum=HIATUS"`
	// Description is the plot summary. It may contain html markup, see PlainDescription.
	Description mo.Option[string]      `json:"description" jsonschema:"description=Description of the media. May contain html."`
	StartDate   *FuzzyDate             `json:"startDate"`
	EndDate     *FuzzyDate             `json:"endDate"`
	Season      mo.Option[MediaSeason] `json:"season"`
	SeasonYear  mo.Option[int]         `json:"seasonYear"`
	// Episodes is the total number of episodes when complete. Anime only.
	Episodes mo.Option[int] `json:"episodes"`
	// Duration is the length of an episode in minutes. Anime only.
	Duration mo.Option[int] `json:"duration"`
	// Chapters is the total number of chapters when complete. Manga only.
	Chapters mo.Option[int] `json:"chapters"`
	// Volumes is the total number of volumes when complete. Manga only.
	Volumes         mo.Option[int]         `json:"volumes"`
	CountryOfOrigin mo.Option[string]      `json:"countryOfOrigin" jsonschema:"description=ISO 3166-1 alpha-2 country code."`
	IsLicensed      mo.Option[bool]        `json:"isLicensed"`
	Source          mo.Option[MediaSource] `json:"source"`
	Hashtag         mo.Option[string]      `json:"hashtag"`
	UpdatedAt       mo.Option[int64]       `json:"updatedAt"`
	CoverImage      *CoverImage            `json:"coverImage"`
	BannerImage     mo.Option[string]      `json:"bannerImage"`
	Genres          []string               `json:"genres"`
	// Synonyms are alternative titles.
	Synonyms []string `json:"synonyms"`
	// AverageScore is the weighted average score, from 0 to 100.
	AverageScore mo.Option[int]  `json:"averageScore"`
	MeanScore    mo.Option[int]  `json:"meanScore"`
	Popularity   mo.Option[int]  `json:"popularity"`
	Trending     mo.Option[int]  `json:"trending"`
	Favourites   mo.Option[int]  `json:"favourites"`
	IsFavourite  mo.Option[bool] `json:"isFavourite"`
	IsAdult      mo.Option[bool] `json:"isAdult"`
	Tags         []Tag           `json:"tags"`
	// NextAiringEpisode is set while an anime is releasing.
	NextAiringEpisode *AiringSchedule      `json:"nextAiringEpisode"`
	ExternalLinks     []Link               `json:"externalLinks"`
	StreamingEpisodes []StreamingEpisode   `json:"streamingEpisodes"`
	Stats             *MediaStats          `json:"stats"`
	Relations         *MediaConnection     `json:"relations"`
	Characters        *CharacterConnection `json:"characters"`
	Staff             *StaffConnection     `json:"staff"`
	// Studios is set for anime only.
	Studios *StudioConnection `json:"studios"`
	// SiteURL is the url of the media on Anilist.
	SiteURL mo.Option[string] `json:"siteUrl"`

	full bool
}

// MediaConnection links an entity to a list of media.
type MediaConnection struct {
	Edges    []MediaEdge `json:"edges"`
	Nodes    []*Media    `json:"nodes"`
	PageInfo *PageInfo   `json:"pageInfo"`
}

// MediaEdge is one media of a connection, with the attributes of the link.
// Which attribute is set depends on where the connection comes from.
type MediaEdge struct {
	// RelationType is set on Media.Relations.
	RelationType mo.Option[MediaRelation] `json:"relationType"`
	// CharacterRole is set on Character.Media.
	CharacterRole mo.Option[CharacterRole] `json:"characterRole"`
	// StaffRole is set on Staff.StaffMedia.
	StaffRole mo.Option[string] `json:"staffRole"`
	// IsMainStudio is set on Studio.Media.
	IsMainStudio mo.Option[bool] `json:"isMainStudio"`
	Node         *Media          `json:"node"`
}

// Name returns the primary display name of the media.
// English is preferred, then romaji, then native.
func (m *Media) Name() string {
	return firstNonEmpty(m.Title.English, m.Title.Romaji, m.Title.Native)
}

// IsAnime reports whether the media is known to be an anime.
func (m *Media) IsAnime() bool {
	return m.Type.OrEmpty() == MediaTypeAnime
}

// IsManga reports whether the media is known to be a manga.
func (m *Media) IsManga() bool {
	return m.Type.OrEmpty() == MediaTypeManga
}

// PlainDescription returns the description with html markup removed.
// Line breaks are kept as newlines.
func (m *Media) PlainDescription() string {
	return stripHTML(m.Description.OrEmpty())
}

func stripHTML(s string) string {
	var b strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(s))

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(b.String())
		case html.TextToken:
			b.Write(tokenizer.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			if name, _ := tokenizer.TagName(); string(name) == "br" {
				b.WriteByte('\n')
			}
		}
	}
}

// RelatedMedia returns the related media, restricted to the given relation types when any are passed.
// It returns nil when relations were not loaded.
func (m *Media) RelatedMedia(types ...MediaRelation) []*Media {
	if m.Relations == nil {
		return nil
	}

	return lo.FilterMap(m.Relations.Edges, func(edge MediaEdge, _ int) (*Media, bool) {
		if edge.Node == nil {
			return nil, false
		}
		if len(types) == 0 {
			return edge.Node, true
		}
		return edge.Node, lo.Contains(types, edge.RelationType.OrEmpty())
	})
}

// IsFullyLoaded reports whether the media came from GetAnime or GetManga.
// Media found in a search or a connection is partial.
func (m *Media) IsFullyLoaded() bool {
	return m.full
}

func (m *Media) markFull()       { m.full = true }
func (m *Media) identifier() int { return m.ID }

// Load fetches the full record of a partial media.
// The receiver is left untouched; it is returned as is when already full.
func (m *Media) Load(ctx context.Context, c *Client) (*Media, error) {
	if m.full {
		return m, nil
	}

	switch m.Type.OrEmpty() {
	case MediaTypeAnime:
		return c.GetAnime(ctx, m.ID)
	case MediaTypeManga:
		return c.GetManga(ctx, m.ID)
	default:
		return nil, ErrUnknownMediaType
	}
}

// Enrich fills the receiver in place with its full record.
// Fields missing from the response keep their current value.
func (m *Media) Enrich(ctx context.Context, c *Client) error {
	if m.full {
		return nil
	}

	full, err := m.Load(ctx, c)
	if err != nil {
		return err
	}

	return merge(m, full)
}
