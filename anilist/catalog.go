// Package anilist provides a client for the Anilist GraphQL API.
package anilist

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/anisan-cli/anilist/filesystem"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"golang.org/x/exp/slices"
)

// Kind names an entity family served by the catalog.
type Kind string

const (
	KindAnime     Kind = "anime"
	KindManga     Kind = "manga"
	KindCharacter Kind = "character"
	KindStaff     Kind = "staff"
	KindStudio    Kind = "studio"
	KindUser      Kind = "user"
)

// Mode selects how an entity is looked up.
type Mode string

const (
	// ModeGet fetches one entity by id (or MAL id, or user name).
	ModeGet Mode = "get"
	// ModeSearch fetches one page of entities matching a search term.
	ModeSearch Mode = "search"
)

// Template is a fixed GraphQL document together with the variables it accepts.
// User input only ever reaches AniList through Bind, never through the document text.
type Template struct {
	Kind Kind
	Mode Mode
	// Name is the document's file stem, e.g. "get_anime".
	Name     string
	Document string
	// Root is the member of "data" (or of "data.Page" for searches) holding the result.
	Root      string
	Variables []string
	Defaults  map[string]any
}

//go:embed queries/*.graphql
var queryFiles embed.FS

// layout declares every template; documents are read from queries/<mode>_<kind>.graphql.
var layout = []Template{
	{Kind: KindAnime, Mode: ModeGet, Root: "Media", Variables: []string{"id", "idMal"}},
	{Kind: KindManga, Mode: ModeGet, Root: "Media", Variables: []string{"id", "idMal"}},
	{Kind: KindCharacter, Mode: ModeGet, Root: "Character", Variables: []string{"id"}},
	{Kind: KindStaff, Mode: ModeGet, Root: "Staff", Variables: []string{"id"}},
	{Kind: KindStudio, Mode: ModeGet, Root: "Studio", Variables: []string{"id"}},
	{Kind: KindUser, Mode: ModeGet, Root: "User", Variables: []string{"id", "name"}},
	{Kind: KindAnime, Mode: ModeSearch, Root: "media"},
	{Kind: KindManga, Mode: ModeSearch, Root: "media"},
	{Kind: KindCharacter, Mode: ModeSearch, Root: "characters"},
	{Kind: KindStaff, Mode: ModeSearch, Root: "staff"},
	{Kind: KindStudio, Mode: ModeSearch, Root: "studios"},
	{Kind: KindUser, Mode: ModeSearch, Root: "users"},
}

const (
	defaultPage    = 1
	defaultPerPage = 10
	maxPerPage     = 50
)

var searchVariables = []string{"search", "page", "perPage"}

var catalog = lo.Must(loadCatalog(filesystem.ReadOnly(queryFiles)))

// loadCatalog reads every document in layout and checks that each declared variable is used.
func loadCatalog(fs afero.Afero) (map[string]Template, error) {
	templates := make(map[string]Template, len(layout))

	for _, t := range layout {
		t.Name = fmt.Sprintf("%s_%s", t.Mode, t.Kind)

		if t.Mode == ModeSearch {
			t.Variables = searchVariables
			t.Defaults = map[string]any{"page": defaultPage, "perPage": defaultPerPage}
		}

		document, err := fs.ReadFile(path.Join("queries", t.Name+".graphql"))
		if err != nil {
			return nil, fmt.Errorf("load query %s: %w", t.Name, err)
		}
		t.Document = string(document)

		for _, v := range t.Variables {
			if !strings.Contains(t.Document, "$"+v) {
				return nil, fmt.Errorf("query %s does not declare $%s", t.Name, v)
			}
		}

		templates[templateKey(t.Kind, t.Mode)] = t
	}

	return templates, nil
}

func templateKey(kind Kind, mode Mode) string {
	return string(mode) + "/" + string(kind)
}

// Lookup returns the template for a kind and mode.
func Lookup(kind Kind, mode Mode) (Template, error) {
	t, ok := catalog[templateKey(kind, mode)]
	if !ok {
		return Template{}, fmt.Errorf("%w: %s %s", ErrUnknownTemplate, mode, kind)
	}
	return t, nil
}

// Templates returns every template in the catalog, sorted by name.
func Templates() []Template {
	templates := lo.Values(catalog)
	slices.SortFunc(templates, func(a, b Template) int {
		return strings.Compare(a.Name, b.Name)
	})
	return templates
}

// Bind merges the template's defaults with vars.
// It rejects variables the document does not declare.
func (t Template) Bind(vars map[string]any) (map[string]any, error) {
	bound := make(map[string]any, len(t.Defaults)+len(vars))
	for name, value := range t.Defaults {
		bound[name] = value
	}

	for name, value := range vars {
		if !lo.Contains(t.Variables, name) {
			return nil, fmt.Errorf("%w: %q for %s", ErrUnknownVariable, name, t.Name)
		}
		bound[name] = value
	}

	return bound, nil
}
