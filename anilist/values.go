// Package anilist provides a client for the Anilist GraphQL API.
package anilist

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Title holds the title variants of a media.
type Title struct {
	// Romaji is the romanized title.
	Romaji mo.Option[string] `json:"romaji"`
	// English is the official english title.
	English mo.Option[string] `json:"english"`
	// Native is the title in its native language. Usually in kanji.
	Native mo.Option[string] `json:"native"`
	// UserPreferred follows the title language chosen by the authenticated user.
	UserPreferred mo.Option[string] `json:"userPreferred"`
}

// Preferred returns the first non-empty variant among userPreferred, english, romaji and native.
func (t Title) Preferred() string {
	return firstNonEmpty(t.UserPreferred, t.English, t.Romaji, t.Native)
}

// All returns every distinct non-empty variant.
func (t Title) All() []string {
	return nonEmpty(t.UserPreferred, t.English, t.Romaji, t.Native)
}

// IsEmpty reports whether no variant is present.
func (t Title) IsEmpty() bool {
	return len(t.All()) == 0
}

func (t Title) String() string {
	return t.Preferred()
}

// Name holds the name variants of a character or staff member.
type Name struct {
	First              mo.Option[string] `json:"first"`
	Middle             mo.Option[string] `json:"middle"`
	Last               mo.Option[string] `json:"last"`
	Full               mo.Option[string] `json:"full"`
	Native             mo.Option[string] `json:"native"`
	UserPreferred      mo.Option[string] `json:"userPreferred"`
	Alternative        []string          `json:"alternative"`
	AlternativeSpoiler []string          `json:"alternativeSpoiler"`
}

// Preferred returns the first non-empty of userPreferred, full and native.
func (n Name) Preferred() string {
	return firstNonEmpty(n.UserPreferred, n.Full, n.Native)
}

func (n Name) String() string {
	return n.Preferred()
}

func firstNonEmpty(options ...mo.Option[string]) string {
	for _, o := range options {
		if v := o.OrEmpty(); v != "" {
			return v
		}
	}
	return ""
}

func nonEmpty(options ...mo.Option[string]) []string {
	values := lo.FilterMap(options, func(o mo.Option[string], _ int) (string, bool) {
		v := o.OrEmpty()
		return v, v != ""
	})
	return lo.Uniq(values)
}

// FuzzyDate is a calendar date whose parts may be unknown.
type FuzzyDate struct {
	Year  mo.Option[int] `json:"year"`
	Month mo.Option[int] `json:"month"`
	Day   mo.Option[int] `json:"day"`
}

// IsValid reports whether year, month and day are all known.
func (d FuzzyDate) IsValid() bool {
	return d.Year.IsPresent() && d.Month.IsPresent() && d.Day.IsPresent()
}

// Time converts a fully known date to midnight UTC.
func (d FuzzyDate) Time() (time.Time, bool) {
	if !d.IsValid() {
		return time.Time{}, false
	}
	return time.Date(d.Year.MustGet(), time.Month(d.Month.MustGet()), d.Day.MustGet(), 0, 0, 0, 0, time.UTC), true
}

// String renders the date as YYYY-MM-DD, leaving unknown parts empty.
func (d FuzzyDate) String() string {
	var year, month, day string
	if v, ok := d.Year.Get(); ok {
		year = strconv.Itoa(v)
	}
	if v, ok := d.Month.Get(); ok {
		month = pad2(v)
	}
	if v, ok := d.Day.Get(); ok {
		day = pad2(v)
	}
	return fmt.Sprintf("%s-%s-%s", year, month, day)
}

// Format substitutes the known parts of the date into template.
// Tokens for unknown parts are kept verbatim.
//
//	year:  {yyyy} {year} {y} and their upper-case forms, {yy} {YY} for two digits
//	month: {mm} {month} {mon} and their upper-case forms padded, {m} {M} unpadded
//	day:   {dd} {day} and their upper-case forms padded, {d} {D} unpadded
func (d FuzzyDate) Format(template string) string {
	var pairs []string
	if year, ok := d.Year.Get(); ok {
		full, short := strconv.Itoa(year), pad2(year%100)
		pairs = append(pairs, tokens(full, "yyyy", "year", "y")...)
		pairs = append(pairs, tokens(short, "yy")...)
	}
	if month, ok := d.Month.Get(); ok {
		pairs = append(pairs, tokens(pad2(month), "mm", "month", "mon")...)
		pairs = append(pairs, tokens(strconv.Itoa(month), "m")...)
	}
	if day, ok := d.Day.Get(); ok {
		pairs = append(pairs, tokens(pad2(day), "dd", "day")...)
		pairs = append(pairs, tokens(strconv.Itoa(day), "d")...)
	}
	if len(pairs) == 0 {
		return template
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// tokens returns replacer pairs mapping {name} and {NAME} to value for every name.
func tokens(value string, names ...string) []string {
	pairs := make([]string, 0, len(names)*4)
	for _, name := range names {
		pairs = append(pairs, "{"+name+"}", value, "{"+strings.ToUpper(name)+"}", value)
	}
	return pairs
}

func pad2(n int) string {
	return fmt.Sprintf("%02d", n)
}

// Image holds the URLs of a character, staff or user picture.
type Image struct {
	Large  mo.Option[string] `json:"large"`
	Medium mo.Option[string] `json:"medium"`
}

// Largest returns the biggest available URL.
func (i Image) Largest() mo.Option[string] {
	return largest(i.Large, i.Medium)
}

// CoverImage holds the URLs of a media cover.
type CoverImage struct {
	ExtraLarge mo.Option[string] `json:"extraLarge"`
	Large      mo.Option[string] `json:"large"`
	Medium     mo.Option[string] `json:"medium"`
	// Color is the average color of the cover as a hex string.
	Color mo.Option[string] `json:"color"`
}

// Largest returns the biggest available URL.
func (c CoverImage) Largest() mo.Option[string] {
	return largest(c.ExtraLarge, c.Large, c.Medium)
}

func largest(sizes ...mo.Option[string]) mo.Option[string] {
	if v := firstNonEmpty(sizes...); v != "" {
		return mo.Some(v)
	}
	return mo.None[string]()
}

// Tag is a descriptive tag attached to a media.
type Tag struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Description mo.Option[string] `json:"description"`
	Category    mo.Option[string] `json:"category"`
	// Rank is how relevant the tag is to the media, from 1 to 100.
	Rank             mo.Option[int]  `json:"rank"`
	IsGeneralSpoiler mo.Option[bool] `json:"isGeneralSpoiler"`
	IsMediaSpoiler   mo.Option[bool] `json:"isMediaSpoiler"`
	IsAdult          mo.Option[bool] `json:"isAdult"`
}

// Link is an external or streaming link of a media.
type Link struct {
	ID       mo.Option[int]      `json:"id"`
	URL      mo.Option[string]   `json:"url"`
	Site     mo.Option[string]   `json:"site"`
	Type     mo.Option[LinkType] `json:"type"`
	Language mo.Option[Language] `json:"language"`
	Color    mo.Option[string]   `json:"color"`
	Icon     mo.Option[string]   `json:"icon"`
}

// StreamingEpisode is an episode available on a streaming site.
type StreamingEpisode struct {
	Title     mo.Option[string] `json:"title"`
	Thumbnail mo.Option[string] `json:"thumbnail"`
	URL       mo.Option[string] `json:"url"`
	Site      mo.Option[string] `json:"site"`
}

// AiringSchedule describes the next episode of a releasing anime.
type AiringSchedule struct {
	ID int `json:"id"`
	// AiringAt is a unix timestamp in seconds.
	AiringAt int64 `json:"airingAt"`
	// TimeUntilAiring is in seconds, relative to when the response was produced.
	TimeUntilAiring int64 `json:"timeUntilAiring"`
	Episode         int   `json:"episode"`
}

// AiringTime returns AiringAt as a time.
func (a AiringSchedule) AiringTime() time.Time {
	return time.Unix(a.AiringAt, 0)
}

// MediaStats holds the score and list-status distributions of a media.
type MediaStats struct {
	ScoreDistribution []struct {
		Score  int `json:"score"`
		Amount int `json:"amount"`
	} `json:"scoreDistribution"`
	StatusDistribution []struct {
		Status MediaListStatus `json:"status"`
		Amount int             `json:"amount"`
	} `json:"statusDistribution"`
}
