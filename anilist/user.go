package anilist

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/mo"
)

// User is an Anilist account.
type User struct {
	ID   int               `json:"id"`
	Name mo.Option[string] `json:"name"`
	// About is the profile text. It may contain markdown.
	About        mo.Option[string]   `json:"about"`
	Avatar       *Image              `json:"avatar"`
	BannerImage  mo.Option[string]   `json:"bannerImage"`
	IsFollowing  mo.Option[bool]     `json:"isFollowing"`
	IsFollower   mo.Option[bool]     `json:"isFollower"`
	IsBlocked    mo.Option[bool]     `json:"isBlocked"`
	SiteURL      mo.Option[string]   `json:"siteUrl"`
	DonatorTier  mo.Option[int]      `json:"donatorTier"`
	DonatorBadge mo.Option[string]   `json:"donatorBadge"`
	CreatedAt    mo.Option[int64]    `json:"createdAt"`
	UpdatedAt    mo.Option[int64]    `json:"updatedAt"`
	Options      *UserOptions        `json:"options"`
	Statistics   *UserStatisticTypes `json:"statistics"`
	Favourites   *Favourites         `json:"favourites"`

	full bool
}

// UserOptions holds the public settings of a user.
type UserOptions struct {
	TitleLanguage       mo.Option[UserTitleLanguage]     `json:"titleLanguage"`
	DisplayAdultContent mo.Option[bool]                  `json:"displayAdultContent"`
	AiringNotifications mo.Option[bool]                  `json:"airingNotifications"`
	ProfileColor        mo.Option[ProfileColor]          `json:"profileColor"`
	Timezone            mo.Option[string]                `json:"timezone"`
	StaffNameLanguage   mo.Option[UserStaffNameLanguage] `json:"staffNameLanguage"`
	NotificationOptions []NotificationOption             `json:"notificationOptions"`
}

// NotificationOption tells whether a user receives one type of notification.
type NotificationOption struct {
	Type    mo.Option[NotificationType] `json:"type"`
	Enabled mo.Option[bool]             `json:"enabled"`
}

// Notifies reports whether the user opted in to notifications of type t.
func (o *UserOptions) Notifies(t NotificationType) bool {
	for _, option := range o.NotificationOptions {
		if option.Type.OrEmpty() == t {
			return option.Enabled.OrEmpty()
		}
	}
	return false
}

// UserStatisticTypes splits a user's statistics between anime and manga.
type UserStatisticTypes struct {
	Anime *UserStatistics `json:"anime"`
	Manga *UserStatistics `json:"manga"`
}

// UserStatistics summarizes a user's list for one media type.
type UserStatistics struct {
	Count             int     `json:"count"`
	MeanScore         float64 `json:"meanScore"`
	StandardDeviation float64 `json:"standardDeviation"`
	// MinutesWatched and EpisodesWatched are set for anime.
	MinutesWatched  mo.Option[int] `json:"minutesWatched"`
	EpisodesWatched mo.Option[int] `json:"episodesWatched"`
	// ChaptersRead and VolumesRead are set for manga.
	ChaptersRead mo.Option[int]    `json:"chaptersRead"`
	VolumesRead  mo.Option[int]    `json:"volumesRead"`
	Statuses     []StatusStatistic `json:"statuses"`
	Formats      []FormatStatistic `json:"formats"`
}

// StatusStatistic counts the list entries of a user in one status.
type StatusStatistic struct {
	Count          int             `json:"count"`
	Status         MediaListStatus `json:"status"`
	MinutesWatched int             `json:"minutesWatched"`
	ChaptersRead   int             `json:"chaptersRead"`
	MediaIDs       []int           `json:"mediaIds"`
}

// FormatStatistic counts the list entries of a user in one format.
type FormatStatistic struct {
	Count          int         `json:"count"`
	Format         MediaFormat `json:"format"`
	MinutesWatched int         `json:"minutesWatched"`
	ChaptersRead   int         `json:"chaptersRead"`
	MediaIDs       []int       `json:"mediaIds"`
}

// Favourites holds the entities a user marked as favourite.
type Favourites struct {
	Anime      *MediaConnection     `json:"anime"`
	Manga      *MediaConnection     `json:"manga"`
	Characters *CharacterConnection `json:"characters"`
	Staff      *StaffConnection     `json:"staff"`
	Studios    *StudioConnection    `json:"studios"`
}

// Status returns the statistic of status, if the user has entries in it.
func (s *UserStatistics) Status(status MediaListStatus) mo.Option[StatusStatistic] {
	for _, st := range s.Statuses {
		if st.Status == status {
			return mo.Some(st)
		}
	}
	return mo.None[StatusStatistic]()
}

// IsFullyLoaded reports whether the user came from GetUser or GetUserByName.
func (u *User) IsFullyLoaded() bool {
	return u.full
}

func (u *User) markFull()       { u.full = true }
func (u *User) identifier() int { return u.ID }

// Load fetches the full record of a partial user, by id or else by name.
func (u *User) Load(ctx context.Context, c *Client) (*User, error) {
	if u.full {
		return u, nil
	}

	if u.ID == 0 {
		if name, ok := u.Name.Get(); ok {
			return c.GetUserByName(ctx, name)
		}
	}

	return c.GetUser(ctx, u.ID)
}

// Enrich fills the receiver in place with its full record.
func (u *User) Enrich(ctx context.Context, c *Client) error {
	if u.full {
		return nil
	}

	full, err := u.Load(ctx, c)
	if err != nil {
		return err
	}

	return merge(u, full)
}

// GetUser fetches the full record of a user by its Anilist id.
func (c *Client) GetUser(ctx context.Context, id int) (*User, error) {
	return getByID[User](ctx, c, KindUser, id)
}

// GetUserByName fetches the full record of a user by its user name.
// Names are compared case-insensitively, as Anilist does.
func (c *Client) GetUserByName(ctx context.Context, name string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	user, err := get[User](ctx, c, KindUser, map[string]any{"name": name})
	if err != nil {
		return nil, err
	}

	if got := user.Name.OrEmpty(); !strings.EqualFold(got, name) {
		return nil, &DeserializeError{
			Entity: string(KindUser),
			Err:    fmt.Errorf("%w: requested %q, got %q", ErrIDMismatch, name, got),
		}
	}

	return user, nil
}

// SearchUsers returns one page of users whose names match term.
func (c *Client) SearchUsers(ctx context.Context, term string, page, perPage int) (*Page[*User], error) {
	return search[*User](ctx, c, KindUser, term, page, perPage)
}
