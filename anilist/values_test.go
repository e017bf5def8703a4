package anilist

import (
	"testing"
	"time"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTitle(t *testing.T) {
	Convey("Given a title with some variants", t, func() {
		title := Title{
			Romaji:  mo.Some("Shingeki no Kyojin"),
			English: mo.Some("Attack on Titan"),
			Native:  mo.Some("進撃の巨人"),
		}

		Convey("Preferred picks english before romaji", func() {
			So(title.Preferred(), ShouldEqual, "Attack on Titan")
			So(title.String(), ShouldEqual, "Attack on Titan")
		})

		Convey("Preferred follows the user's language first", func() {
			title.UserPreferred = mo.Some("Shingeki no Kyojin")
			So(title.Preferred(), ShouldEqual, "Shingeki no Kyojin")
		})

		Convey("All lists the distinct variants", func() {
			title.UserPreferred = mo.Some("Attack on Titan")
			So(title.All(), ShouldResemble, []string{"Attack on Titan", "Shingeki no Kyojin", "進撃の巨人"})
			So(title.IsEmpty(), ShouldBeFalse)
		})
	})

	Convey("Given an empty title", t, func() {
		title := Title{English: mo.Some("")}

		So(title.Preferred(), ShouldBeEmpty)
		So(title.All(), ShouldBeEmpty)
		So(title.IsEmpty(), ShouldBeTrue)
	})
}

func TestName(t *testing.T) {
	Convey("Given a character name", t, func() {
		name := Name{Full: mo.Some("Spike Spiegel"), Native: mo.Some("スパイク・スピーゲル")}

		So(name.Preferred(), ShouldEqual, "Spike Spiegel")
		So(Name{Native: mo.Some("スパイク")}.String(), ShouldEqual, "スパイク")
	})
}

func TestFuzzyDate(t *testing.T) {
	Convey("Given a complete date", t, func() {
		date := FuzzyDate{Year: mo.Some(1998), Month: mo.Some(4), Day: mo.Some(3)}

		Convey("It is valid and converts to time", func() {
			So(date.IsValid(), ShouldBeTrue)
			at, ok := date.Time()
			So(ok, ShouldBeTrue)
			So(at, ShouldEqual, time.Date(1998, time.April, 3, 0, 0, 0, 0, time.UTC))
		})

		Convey("String pads month and day", func() {
			So(date.String(), ShouldEqual, "1998-04-03")
		})

		Convey("Format replaces every token", func() {
			So(date.Format("{dd}/{mm}/{yyyy}"), ShouldEqual, "03/04/1998")
			So(date.Format("{d}.{m}.{yy}"), ShouldEqual, "3.4.98")
		})

		Convey("Format accepts the long and upper-case spellings", func() {
			So(date.Format("{year}-{month}-{day}"), ShouldEqual, "1998-04-03")
			So(date.Format("{y} {mon} {D}"), ShouldEqual, "1998 04 3")
			So(date.Format("{YEAR}/{MONTH}/{DAY}"), ShouldEqual, "1998/04/03")
			So(date.Format("{YYYY}{MM}{DD}"), ShouldEqual, "19980403")
			So(date.Format("{Y}.{MON}.{YY}.{M}"), ShouldEqual, "1998.04.98.4")
		})
	})

	Convey("Given a date with only a year", t, func() {
		date := FuzzyDate{Year: mo.Some(2024)}

		Convey("It is not valid", func() {
			So(date.IsValid(), ShouldBeFalse)
			_, ok := date.Time()
			So(ok, ShouldBeFalse)
		})

		Convey("Unknown parts stay empty or verbatim", func() {
			So(date.String(), ShouldEqual, "2024--")
			So(date.Format("{mm}/{yyyy}"), ShouldEqual, "{mm}/2024")
			So(date.Format("{MONTH} {YEAR} {D}"), ShouldEqual, "{MONTH} 2024 {D}")
		})
	})

	Convey("Given an unknown date", t, func() {
		So(FuzzyDate{}.String(), ShouldEqual, "--")
		So(FuzzyDate{}.Format("{yyyy}"), ShouldEqual, "{yyyy}")
	})
}

func TestImages(t *testing.T) {
	Convey("Given cover images", t, func() {
		Convey("Largest prefers the extra large one", func() {
			cover := CoverImage{ExtraLarge: mo.Some("xl"), Large: mo.Some("l"), Medium: mo.Some("m")}
			So(cover.Largest(), ShouldResemble, mo.Some("xl"))
		})

		Convey("Largest falls back to smaller sizes", func() {
			So(CoverImage{Medium: mo.Some("m")}.Largest(), ShouldResemble, mo.Some("m"))
			So(Image{Large: mo.Some("l"), Medium: mo.Some("m")}.Largest(), ShouldResemble, mo.Some("l"))
		})

		Convey("Largest is absent without any image", func() {
			So(CoverImage{}.Largest().IsAbsent(), ShouldBeTrue)
			So(Image{}.Largest().IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestAiringSchedule(t *testing.T) {
	Convey("AiringTime converts unix seconds", t, func() {
		schedule := AiringSchedule{AiringAt: 1700000000, Episode: 12}
		So(schedule.AiringTime().Unix(), ShouldEqual, 1700000000)
	})
}

func TestEnums(t *testing.T) {
	Convey("Media formats", t, func() {
		So(MediaFormatTVShort.Name(), ShouldEqual, "TV Short")
		So(MediaFormatOneShot.Name(), ShouldEqual, "One-Shot")
		So(MediaFormatMovie.Name(), ShouldEqual, "Movie")
		So(MediaFormatOVA.String(), ShouldEqual, "OVA")
		So(MediaFormatManga.Summary(), ShouldEqual, "Professionally published manga with more than one chapter")
		So(MediaFormat("UNKNOWN").Summary(), ShouldBeEmpty)
	})

	Convey("Media statuses", t, func() {
		So(MediaStatusNotYetReleased.String(), ShouldEqual, "Not Yet Released")
		So(MediaStatusReleasing.Summary(), ShouldEqual, "Currently releasing.")
	})

	Convey("Other enums read as words", t, func() {
		So(MediaSeasonFall.Name(), ShouldEqual, "Fall")
		So(MediaSourceLightNovel.String(), ShouldEqual, "Light Novel")
		So(MediaRelationSideStory.String(), ShouldEqual, "Side Story")
		So(CharacterRoleMain.String(), ShouldEqual, "Main")
		So(MediaListStatusRepeating.String(), ShouldEqual, "Repeating")
		So(LinkTypeStreaming.String(), ShouldEqual, "Streaming")
	})

	Convey("Profile colors", t, func() {
		So(ProfileColorBlue.IsPreset(), ShouldBeTrue)
		So(ProfileColorBlue.Hex().IsAbsent(), ShouldBeTrue)
		So(ProfileColorBlue.String(), ShouldEqual, "Blue")
		So(ProfileColor("#FF5733").IsPreset(), ShouldBeFalse)
		So(ProfileColor("#FF5733").Hex(), ShouldResemble, mo.Some("#FF5733"))
		So(ProfileColor("#FF5733").String(), ShouldEqual, "#FF5733")
		So(ProfileColor("").Hex().IsAbsent(), ShouldBeTrue)
	})
}

func TestLanguage(t *testing.T) {
	Convey("Given a known language", t, func() {
		So(LanguageJapanese.IsKnown(), ShouldBeTrue)
		So(LanguageJapanese.Code(), ShouldEqual, "ja")
		So(LanguageJapanese.ISO(), ShouldEqual, "ja")
		So(LanguageJapanese.Native(), ShouldEqual, "日本語")
		So(LanguageFilipino.Code(), ShouldEqual, "fil")
		So(LanguagePortuguese.Native(), ShouldEqual, "Português")
		So(LanguageKorean.String(), ShouldEqual, "Korean")
	})

	Convey("Given a language Anilist added later", t, func() {
		language := Language("Esperanto")

		So(language.IsKnown(), ShouldBeFalse)
		So(language.Code(), ShouldBeEmpty)
		So(language.Native(), ShouldBeEmpty)
		So(language.String(), ShouldEqual, "Esperanto")
	})

	Convey("ParseLanguage accepts names, codes and aliases", t, func() {
		for input, want := range map[string]Language{
			"japanese":   LanguageJapanese,
			" JA ":       LanguageJapanese,
			"jp":         LanguageJapanese,
			"uk":         LanguageEnglish,
			"philippine": LanguageFilipino,
			"fil":        LanguageFilipino,
			"Urdu":       LanguageUrdu,
		} {
			got, ok := ParseLanguage(input)
			So(ok, ShouldBeTrue)
			So(got, ShouldEqual, want)
		}

		_, ok := ParseLanguage("klingon")
		So(ok, ShouldBeFalse)
	})
}

func TestGender(t *testing.T) {
	Convey("Predefined genders", t, func() {
		So(GenderMale.IsOther(), ShouldBeFalse)
		So(GenderNonBinary.IsOther(), ShouldBeFalse)
		So(GenderNonBinary.String(), ShouldEqual, "Non-binary")
	})

	Convey("Free text genders are kept verbatim", t, func() {
		So(Gender("Neutral").IsOther(), ShouldBeTrue)
		So(Gender("Neutral").String(), ShouldEqual, "Neutral")
	})
}

func TestUserEnums(t *testing.T) {
	Convey("Staff name languages", t, func() {
		So(UserStaffNameLanguageRomajiWestern.String(), ShouldEqual, "Romaji Western")
		So(UserStaffNameLanguageNative.String(), ShouldEqual, "Native")
	})

	Convey("Notification types", t, func() {
		So(NotificationTypeActivityReplyLike.String(), ShouldEqual, "Activity Reply Like")
		So(NotificationTypeAiring.String(), ShouldEqual, "Airing")
	})

	Convey("Notification options", t, func() {
		options := &UserOptions{NotificationOptions: []NotificationOption{
			{Type: mo.Some(NotificationTypeAiring), Enabled: mo.Some(true)},
			{Type: mo.Some(NotificationTypeFollowing), Enabled: mo.Some(false)},
		}}

		So(options.Notifies(NotificationTypeAiring), ShouldBeTrue)
		So(options.Notifies(NotificationTypeFollowing), ShouldBeFalse)
		So(options.Notifies(NotificationTypeMediaMerge), ShouldBeFalse)
	})
}
