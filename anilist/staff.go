package anilist

import (
	"context"

	"github.com/samber/mo"
)

// Staff is a person credited on anime or manga: voice actors, animators, authors.
type Staff struct {
	ID   int  `json:"id" jsonschema:"description=ID of the staff member on Anilist."`
	Name Name `json:"name"`
	// Language is the primary language of a voice actor.
	Language           mo.Option[Language] `json:"languageV2"`
	Image              *Image              `json:"image"`
	Description        mo.Option[string]   `json:"description"`
	PrimaryOccupations []string            `json:"primaryOccupations"`
	Gender             mo.Option[Gender]   `json:"gender"`
	DateOfBirth        *FuzzyDate          `json:"dateOfBirth"`
	DateOfDeath        *FuzzyDate          `json:"dateOfDeath"`
	Age                mo.Option[int]      `json:"age"`
	// YearsActive holds the start year and, when retired, the end year.
	YearsActive []int             `json:"yearsActive"`
	HomeTown    mo.Option[string] `json:"homeTown"`
	BloodType   mo.Option[string] `json:"bloodType"`
	IsFavourite mo.Option[bool]   `json:"isFavourite"`
	Favourites  mo.Option[int]    `json:"favourites"`
	SiteURL     mo.Option[string] `json:"siteUrl"`
	// StaffMedia lists the media the person worked on, with their role in each.
	StaffMedia *MediaConnection `json:"staffMedia"`
	// Characters lists the characters voiced by the person.
	Characters *CharacterConnection `json:"characters"`

	full bool
}

// Person is another name for Staff.
type Person = Staff

// StaffConnection links a media or user to a list of staff.
type StaffConnection struct {
	Edges    []StaffEdge `json:"edges"`
	Nodes    []*Staff    `json:"nodes"`
	PageInfo *PageInfo   `json:"pageInfo"`
}

// StaffEdge is one staff member of a media with their role on it.
type StaffEdge struct {
	Role mo.Option[string] `json:"role"`
	Node *Staff            `json:"node"`
}

// IsFullyLoaded reports whether the staff member came from GetStaff.
func (s *Staff) IsFullyLoaded() bool {
	return s.full
}

func (s *Staff) markFull()       { s.full = true }
func (s *Staff) identifier() int { return s.ID }

// Load fetches the full record of a partial staff member.
func (s *Staff) Load(ctx context.Context, c *Client) (*Staff, error) {
	if s.full {
		return s, nil
	}
	return c.GetStaff(ctx, s.ID)
}

// Enrich fills the receiver in place with its full record.
func (s *Staff) Enrich(ctx context.Context, c *Client) error {
	if s.full {
		return nil
	}

	full, err := s.Load(ctx, c)
	if err != nil {
		return err
	}

	return merge(s, full)
}

// GetStaff fetches the full record of a staff member by its Anilist id.
func (c *Client) GetStaff(ctx context.Context, id int) (*Staff, error) {
	return getByID[Staff](ctx, c, KindStaff, id)
}

// GetPerson is GetStaff.
func (c *Client) GetPerson(ctx context.Context, id int) (*Person, error) {
	return c.GetStaff(ctx, id)
}

// SearchStaff returns one page of staff whose names match term.
func (c *Client) SearchStaff(ctx context.Context, term string, page, perPage int) (*Page[*Staff], error) {
	return search[*Staff](ctx, c, KindStaff, term, page, perPage)
}
