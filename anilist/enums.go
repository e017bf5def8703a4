package anilist

import (
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// MediaType tells anime and manga apart.
type MediaType string

const (
	MediaTypeAnime MediaType = "ANIME"
	MediaTypeManga MediaType = "MANGA"
)

// MediaFormat is the publication format of a media.
type MediaFormat string

const (
	MediaFormatTV      MediaFormat = "TV"
	MediaFormatTVShort MediaFormat = "TV_SHORT"
	MediaFormatMovie   MediaFormat = "MOVIE"
	MediaFormatSpecial MediaFormat = "SPECIAL"
	MediaFormatOVA     MediaFormat = "OVA"
	MediaFormatONA     MediaFormat = "ONA"
	MediaFormatMusic   MediaFormat = "MUSIC"
	MediaFormatManga   MediaFormat = "MANGA"
	MediaFormatNovel   MediaFormat = "NOVEL"
	MediaFormatOneShot MediaFormat = "ONE_SHOT"
)

var formatNames = map[MediaFormat]string{
	MediaFormatTV:      "TV",
	MediaFormatTVShort: "TV Short",
	MediaFormatOVA:     "OVA",
	MediaFormatONA:     "ONA",
	MediaFormatOneShot: "One-Shot",
}

var formatSummaries = map[MediaFormat]string{
	MediaFormatTV:      "Anime broadcast on television",
	MediaFormatTVShort: "Anime which are under 15 minutes in length and broadcast on television",
	MediaFormatMovie:   "Anime movies with a theatrical release",
	MediaFormatSpecial: "Special episodes that have been included in DVD/Blu-ray releases, picture dramas, pilots, etc",
	MediaFormatOVA:     "(Original Video Animation) Anime that have been released directly on DVD/Blu-ray without originally going through a theatrical release or television broadcast",
	MediaFormatONA:     "(Original Net Animation) Anime that have been originally released online or are only available through streaming services.",
	MediaFormatMusic:   "Short anime released as a music video",
	MediaFormatManga:   "Professionally published manga with more than one chapter",
	MediaFormatNovel:   "Written books released as a series of light novels",
	MediaFormatOneShot: "Manga with just one chapter",
}

// Name returns the display name, e.g. "TV Short".
func (f MediaFormat) Name() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return humanize(string(f))
}

// Summary describes the format in one sentence.
func (f MediaFormat) Summary() string {
	return formatSummaries[f]
}

func (f MediaFormat) String() string {
	return f.Name()
}

// MediaStatus is the release status of a media.
type MediaStatus string

const (
	MediaStatusFinished       MediaStatus = "FINISHED"
	MediaStatusReleasing      MediaStatus = "RELEASING"
	MediaStatusNotYetReleased MediaStatus = "NOT_YET_RELEASED"
	MediaStatusCancelled      MediaStatus = "CANCELLED"
	MediaStatusHiatus         MediaStatus = "HIATUS"
)

var statusSummaries = map[MediaStatus]string{
	MediaStatusFinished:       "Has completed and is no longer being updated.",
	MediaStatusReleasing:      "Currently releasing.",
	MediaStatusNotYetReleased: "To be released in the future.",
	MediaStatusCancelled:      "Ended before the work could be completed.",
	MediaStatusHiatus:         "Currently paused with the intention of resuming in the future.",
}

// Summary describes the status in one sentence.
func (s MediaStatus) Summary() string {
	return statusSummaries[s]
}

// String returns the display name, e.g. "Not Yet Released".
func (s MediaStatus) String() string {
	return humanize(string(s))
}

// MediaSeason is the quarter of the year a media aired in.
type MediaSeason string

const (
	MediaSeasonWinter MediaSeason = "WINTER"
	MediaSeasonSpring MediaSeason = "SPRING"
	MediaSeasonSummer MediaSeason = "SUMMER"
	MediaSeasonFall   MediaSeason = "FALL"
)

// Name returns the display name, e.g. "Winter".
func (s MediaSeason) Name() string {
	return humanize(string(s))
}

func (s MediaSeason) String() string {
	return s.Name()
}

// MediaSource is the origin of a media's story.
type MediaSource string

const (
	MediaSourceOriginal          MediaSource = "ORIGINAL"
	MediaSourceManga             MediaSource = "MANGA"
	MediaSourceLightNovel        MediaSource = "LIGHT_NOVEL"
	MediaSourceVisualNovel       MediaSource = "VISUAL_NOVEL"
	MediaSourceVideoGame         MediaSource = "VIDEO_GAME"
	MediaSourceOther             MediaSource = "OTHER"
	MediaSourceNovel             MediaSource = "NOVEL"
	MediaSourceDoujinshi         MediaSource = "DOUJINSHI"
	MediaSourceAnime             MediaSource = "ANIME"
	MediaSourceWebNovel          MediaSource = "WEB_NOVEL"
	MediaSourceLiveAction        MediaSource = "LIVE_ACTION"
	MediaSourceGame              MediaSource = "GAME"
	MediaSourceComic             MediaSource = "COMIC"
	MediaSourceMultimediaProject MediaSource = "MULTIMEDIA_PROJECT"
	MediaSourcePictureBook       MediaSource = "PICTURE_BOOK"
)

// String returns the display name, e.g. "Light Novel".
func (s MediaSource) String() string {
	return humanize(string(s))
}

// MediaRelation is the kind of link between two media.
type MediaRelation string

const (
	MediaRelationAdaptation  MediaRelation = "ADAPTATION"
	MediaRelationPrequel     MediaRelation = "PREQUEL"
	MediaRelationSequel      MediaRelation = "SEQUEL"
	MediaRelationParent      MediaRelation = "PARENT"
	MediaRelationSideStory   MediaRelation = "SIDE_STORY"
	MediaRelationCharacter   MediaRelation = "CHARACTER"
	MediaRelationSummary     MediaRelation = "SUMMARY"
	MediaRelationAlternative MediaRelation = "ALTERNATIVE"
	MediaRelationSpinOff     MediaRelation = "SPIN_OFF"
	MediaRelationOther       MediaRelation = "OTHER"
	MediaRelationSource      MediaRelation = "SOURCE"
	MediaRelationCompilation MediaRelation = "COMPILATION"
	MediaRelationContains    MediaRelation = "CONTAINS"
)

func (r MediaRelation) String() string {
	return humanize(string(r))
}

// CharacterRole is the importance of a character in a media.
type CharacterRole string

const (
	CharacterRoleMain       CharacterRole = "MAIN"
	CharacterRoleSupporting CharacterRole = "SUPPORTING"
	CharacterRoleBackground CharacterRole = "BACKGROUND"
)

func (r CharacterRole) String() string {
	return humanize(string(r))
}

// MediaListStatus represents the status of a media in the user's list.
type MediaListStatus string

const (
	MediaListStatusCurrent   MediaListStatus = "CURRENT"
	MediaListStatusPlanning  MediaListStatus = "PLANNING"
	MediaListStatusCompleted MediaListStatus = "COMPLETED"
	MediaListStatusDropped   MediaListStatus = "DROPPED"
	MediaListStatusPaused    MediaListStatus = "PAUSED"
	MediaListStatusRepeating MediaListStatus = "REPEATING"
)

func (s MediaListStatus) String() string {
	return humanize(string(s))
}

// LinkType is the kind of an external link.
type LinkType string

const (
	LinkTypeInfo      LinkType = "INFO"
	LinkTypeStreaming LinkType = "STREAMING"
	LinkTypeSocial    LinkType = "SOCIAL"
)

func (t LinkType) String() string {
	return humanize(string(t))
}

// ProfileColor is a user's profile color: one of the presets or a hex string.
type ProfileColor string

const (
	ProfileColorBlue   ProfileColor = "blue"
	ProfileColorPurple ProfileColor = "purple"
	ProfileColorPink   ProfileColor = "pink"
	ProfileColorOrange ProfileColor = "orange"
	ProfileColorRed    ProfileColor = "red"
	ProfileColorGreen  ProfileColor = "green"
	ProfileColorGray   ProfileColor = "gray"
)

var profileColorPresets = []ProfileColor{
	ProfileColorBlue,
	ProfileColorPurple,
	ProfileColorPink,
	ProfileColorOrange,
	ProfileColorRed,
	ProfileColorGreen,
	ProfileColorGray,
}

// IsPreset reports whether the color is one of the named presets.
func (c ProfileColor) IsPreset() bool {
	return lo.Contains(profileColorPresets, ProfileColor(strings.ToLower(string(c))))
}

// Hex returns the color itself when it is a custom hex value.
func (c ProfileColor) Hex() mo.Option[string] {
	if c == "" || c.IsPreset() {
		return mo.None[string]()
	}
	return mo.Some(string(c))
}

func (c ProfileColor) String() string {
	if c.IsPreset() {
		return humanize(string(c))
	}
	return string(c)
}

// UserTitleLanguage is the title variant a user prefers.
type UserTitleLanguage string

const (
	UserTitleLanguageRomaji          UserTitleLanguage = "ROMAJI"
	UserTitleLanguageEnglish         UserTitleLanguage = "ENGLISH"
	UserTitleLanguageNative          UserTitleLanguage = "NATIVE"
	UserTitleLanguageRomajiStylised  UserTitleLanguage = "ROMAJI_STYLISED"
	UserTitleLanguageEnglishStylised UserTitleLanguage = "ENGLISH_STYLISED"
	UserTitleLanguageNativeStylised  UserTitleLanguage = "NATIVE_STYLISED"
)

// UserStaffNameLanguage is the order and script a user prefers for staff names.
type UserStaffNameLanguage string

const (
	UserStaffNameLanguageRomajiWestern UserStaffNameLanguage = "ROMAJI_WESTERN"
	UserStaffNameLanguageRomaji        UserStaffNameLanguage = "ROMAJI"
	UserStaffNameLanguageNative        UserStaffNameLanguage = "NATIVE"
)

func (l UserStaffNameLanguage) String() string {
	return humanize(string(l))
}

// NotificationType is a kind of notification a user can opt in or out of.
type NotificationType string

const (
	NotificationTypeActivityMessage         NotificationType = "ACTIVITY_MESSAGE"
	NotificationTypeActivityReply           NotificationType = "ACTIVITY_REPLY"
	NotificationTypeFollowing               NotificationType = "FOLLOWING"
	NotificationTypeActivityMention         NotificationType = "ACTIVITY_MENTION"
	NotificationTypeThreadCommentMention    NotificationType = "THREAD_COMMENT_MENTION"
	NotificationTypeThreadSubscribed        NotificationType = "THREAD_SUBSCRIBED"
	NotificationTypeThreadCommentReply      NotificationType = "THREAD_COMMENT_REPLY"
	NotificationTypeAiring                  NotificationType = "AIRING"
	NotificationTypeActivityLike            NotificationType = "ACTIVITY_LIKE"
	NotificationTypeActivityReplyLike       NotificationType = "ACTIVITY_REPLY_LIKE"
	NotificationTypeThreadLike              NotificationType = "THREAD_LIKE"
	NotificationTypeThreadCommentLike       NotificationType = "THREAD_COMMENT_LIKE"
	NotificationTypeActivityReplySubscribed NotificationType = "ACTIVITY_REPLY_SUBSCRIBED"
	NotificationTypeRelatedMediaAddition    NotificationType = "RELATED_MEDIA_ADDITION"
	NotificationTypeMediaDataChange         NotificationType = "MEDIA_DATA_CHANGE"
	NotificationTypeMediaMerge              NotificationType = "MEDIA_MERGE"
	NotificationTypeMediaDeletion           NotificationType = "MEDIA_DELETION"
)

// String returns the display name, e.g. "Activity Reply Like".
func (t NotificationType) String() string {
	return humanize(string(t))
}

// Gender is the gender of a character or staff member.
// Anilist stores it as free text; values other than the three below are kept verbatim.
type Gender string

const (
	GenderMale      Gender = "Male"
	GenderFemale    Gender = "Female"
	GenderNonBinary Gender = "Non-binary"
)

// IsOther reports whether the gender is none of the predefined values.
func (g Gender) IsOther() bool {
	return !lo.Contains([]Gender{GenderMale, GenderFemale, GenderNonBinary}, g)
}

func (g Gender) String() string {
	return string(g)
}

// Language is a language as Anilist names it, e.g. "Japanese".
// Anilist stores it as free text; unknown values decode fine and have no code.
type Language string

const (
	LanguageJapanese   Language = "Japanese"
	LanguageEnglish    Language = "English"
	LanguageKorean     Language = "Korean"
	LanguageItalian    Language = "Italian"
	LanguageSpanish    Language = "Spanish"
	LanguagePortuguese Language = "Portuguese"
	LanguageFrench     Language = "French"
	LanguageGerman     Language = "German"
	LanguageHebrew     Language = "Hebrew"
	LanguageHungarian  Language = "Hungarian"
	LanguageChinese    Language = "Chinese"
	LanguageArabic     Language = "Arabic"
	LanguageFilipino   Language = "Filipino"
	LanguageCatalan    Language = "Catalan"
	LanguageFinnish    Language = "Finnish"
	LanguageTurkish    Language = "Turkish"
	LanguageDutch      Language = "Dutch"
	LanguageSwedish    Language = "Swedish"
	LanguageThai       Language = "Thai"
	LanguageTagalog    Language = "Tagalog"
	LanguageMalaysian  Language = "Malaysian"
	LanguageIndonesian Language = "Indonesian"
	LanguageVietnamese Language = "Vietnamese"
	LanguageNepali     Language = "Nepali"
	LanguageHindi      Language = "Hindi"
	LanguageUrdu       Language = "Urdu"
)

type languageInfo struct {
	code   string
	native string
}

var languages = map[Language]languageInfo{
	LanguageJapanese:   {"ja", "日本語"},
	LanguageEnglish:    {"en", "English"},
	LanguageKorean:     {"ko", "한국어"},
	LanguageItalian:    {"it", "Italiano"},
	LanguageSpanish:    {"es", "Español"},
	LanguagePortuguese: {"pt", "Português"},
	LanguageFrench:     {"fr", "Français"},
	LanguageGerman:     {"de", "Deutsch"},
	LanguageHebrew:     {"he", "עברית"},
	LanguageHungarian:  {"hu", "Magyar"},
	LanguageChinese:    {"zh", "中文"},
	LanguageArabic:     {"ar", "العربية"},
	LanguageFilipino:   {"fil", "Filipino"},
	LanguageCatalan:    {"ca", "Català"},
	LanguageFinnish:    {"fi", "Suomi"},
	LanguageTurkish:    {"tr", "Türkçe"},
	LanguageDutch:      {"nl", "Nederlands"},
	LanguageSwedish:    {"sv", "Svenska"},
	LanguageThai:       {"th", "ไทย"},
	LanguageTagalog:    {"tl", "Tagalog"},
	LanguageMalaysian:  {"ms", "Bahasa Melayu"},
	LanguageIndonesian: {"id", "Bahasa Indonesia"},
	LanguageVietnamese: {"vi", "Tiếng Việt"},
	LanguageNepali:     {"ne", "नेपाली"},
	LanguageHindi:      {"hi", "हिंदी"},
	LanguageUrdu:       {"ur", "اردو"},
}

// languageAliases holds the extra spellings ParseLanguage accepts, upper-cased.
var languageAliases = map[string]Language{
	"JP":         LanguageJapanese,
	"UK":         LanguageEnglish,
	"PHILIPPINE": LanguageFilipino,
}

// ParseLanguage resolves an English language name or an ISO 639-1 code, case-insensitively.
func ParseLanguage(value string) (Language, bool) {
	value = strings.ToUpper(strings.TrimSpace(value))
	if language, ok := languageAliases[value]; ok {
		return language, true
	}

	for language, info := range languages {
		if strings.ToUpper(string(language)) == value || strings.ToUpper(info.code) == value {
			return language, true
		}
	}

	return "", false
}

// IsKnown reports whether the language has a code and a native name.
func (l Language) IsKnown() bool {
	_, ok := languages[l]
	return ok
}

// Code returns the ISO 639-1 code, or "" for an unknown language.
func (l Language) Code() string {
	return languages[l].code
}

// ISO is Code.
func (l Language) ISO() string {
	return l.Code()
}

// Native returns the name of the language in itself, or "" for an unknown language.
func (l Language) Native() string {
	return languages[l].native
}

func (l Language) String() string {
	return string(l)
}

// humanize turns an enum value such as "NOT_YET_RELEASED" into "Not Yet Released".
func humanize(value string) string {
	words := strings.FieldsFunc(strings.ToLower(value), func(r rune) bool {
		return r == '_' || r == ' '
	})
	return strings.Join(lo.Map(words, func(word string, _ int) string {
		return strings.ToUpper(word[:1]) + word[1:]
	}), " ")
}
