package filesystem

import (
	"testing"
	"testing/fstest"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestReadOnly(t *testing.T) {
	Convey("Given a read-only view over an fs.FS", t, func() {
		ro := ReadOnly(fstest.MapFS{
			"queries/get.graphql": &fstest.MapFile{Data: []byte("query { Viewer { id } }")},
		})

		Convey("It reads files", func() {
			data, err := ro.ReadFile("queries/get.graphql")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "query { Viewer { id } }")
		})

		Convey("It refuses writes", func() {
			err := ro.WriteFile("queries/new.graphql", []byte("x"), 0o644)
			So(err, ShouldNotBeNil)
		})
	})
}
