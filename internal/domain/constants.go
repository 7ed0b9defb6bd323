package domain

// Locales supported by the catalog texts
const (
	LocaleUA = "ua"
	LocaleRU = "ru"
	LocaleEN = "en"
	LocaleNL = "nl"
	LocaleDE = "de"

	DefaultLocale = LocaleEN
)

// SupportedLocales is the default locale set; config may narrow it
var SupportedLocales = []string{LocaleUA, LocaleRU, LocaleEN, LocaleNL, LocaleDE}

// Business validation constants
const (
	MinClientNameLength  = 2
	MinClientPhoneLength = 6
	MaxCommentLength     = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
