package anilist

import (
	"context"
	"errors"
	"net/http"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

var operations = []struct {
	name string
	call func(context.Context, *Client) error
}{
	{"GetAnime", func(ctx context.Context, c *Client) error { _, err := c.GetAnime(ctx, 1); return err }},
	{"GetAnimeByMalID", func(ctx context.Context, c *Client) error { _, err := c.GetAnimeByMalID(ctx, 1); return err }},
	{"SearchAnime", func(ctx context.Context, c *Client) error { _, err := c.SearchAnime(ctx, "bebop", 1, 10); return err }},
	{"GetManga", func(ctx context.Context, c *Client) error { _, err := c.GetManga(ctx, 1); return err }},
	{"GetMangaByMalID", func(ctx context.Context, c *Client) error { _, err := c.GetMangaByMalID(ctx, 1); return err }},
	{"SearchManga", func(ctx context.Context, c *Client) error { _, err := c.SearchManga(ctx, "berserk", 1, 10); return err }},
	{"GetCharacter", func(ctx context.Context, c *Client) error { _, err := c.GetCharacter(ctx, 1); return err }},
	{"SearchCharacters", func(ctx context.Context, c *Client) error { _, err := c.SearchCharacters(ctx, "spike", 1, 10); return err }},
	{"GetStaff", func(ctx context.Context, c *Client) error { _, err := c.GetStaff(ctx, 1); return err }},
	{"GetPerson", func(ctx context.Context, c *Client) error { _, err := c.GetPerson(ctx, 1); return err }},
	{"SearchStaff", func(ctx context.Context, c *Client) error { _, err := c.SearchStaff(ctx, "kanno", 1, 10); return err }},
	{"GetStudio", func(ctx context.Context, c *Client) error { _, err := c.GetStudio(ctx, 1); return err }},
	{"SearchStudios", func(ctx context.Context, c *Client) error { _, err := c.SearchStudios(ctx, "sunrise", 1, 10); return err }},
	{"GetUser", func(ctx context.Context, c *Client) error { _, err := c.GetUser(ctx, 1); return err }},
	{"GetUserByName", func(ctx context.Context, c *Client) error { _, err := c.GetUserByName(ctx, "josh"); return err }},
	{"SearchUsers", func(ctx context.Context, c *Client) error { _, err := c.SearchUsers(ctx, "josh", 1, 10); return err }},
	{"FindClosestAnime", func(ctx context.Context, c *Client) error { _, err := c.FindClosestAnime(ctx, "bebop"); return err }},
}

func TestOperationErrors(t *testing.T) {
	ctx := context.Background()

	Convey("Given Anilist answers with a truncated body", t, func() {
		for _, op := range operations {
			Convey(op.name+" returns a DecodeError", func() {
				c, _ := newFixture(t, http.StatusOK, `{"data":`)

				err := op.call(ctx, c)
				var decodeErr *DecodeError
				So(errors.As(err, &decodeErr), ShouldBeTrue)
				So(decodeErr.Status, ShouldEqual, http.StatusOK)
				So(string(decodeErr.Body), ShouldEqual, `{"data":`)
			})
		}
	})

	Convey("Given Anilist answers with a GraphQL error", t, func() {
		for _, op := range operations {
			Convey(op.name+" returns an APIError", func() {
				c, f := newFixture(t, http.StatusNotFound, `{"data":null,"errors":[{"message":"Not Found.","status":404}]}`)

				err := op.call(ctx, c)
				var apiErr *APIError
				So(errors.As(err, &apiErr), ShouldBeTrue)
				So(apiErr.Message, ShouldEqual, "Not Found.")
				So(apiErr.NotFound(), ShouldBeTrue)
				So(f.requests(), ShouldHaveLength, 1)
			})
		}
	})
}
