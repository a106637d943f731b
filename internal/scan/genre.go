package scan

import (
	"strings"
	"unicode"

	"medman/internal/catalog"
)

// genres maps a folded genre name (lower case, letters and digits only) onto the supported vocabulary.
var genres = map[string]string{
	"blues":        "Blues",
	"country":      "Country",
	"disco":        "Disco",
	"hiphop":       "HipHop",
	"jazz":         "Jazz",
	"metal":        "Metal",
	"newage":       "NewAge",
	"oldies":       "Oldies",
	"pop":          "Pop",
	"rb":           "RAndB",
	"randb":        "RAndB",
	"rnb":          "RAndB",
	"rap":          "Rap",
	"reggae":       "Reggae",
	"rock":         "Rock",
	"deathmetal":   "DeathMetal",
	"classical":    "Classical",
	"instrumental": "Instrumental",
	"soul":         "Soul",
	"punk":         "Punk",
	"electronic":   "Electronic",
	"opera":        "Opera",
	"symphony":     "Symphony",
	"samba":        "Samba",
	"acapela":      "ACapela",
	"acapella":     "ACapela",
	"acappella":    "ACapela",
	"dancehall":    "DanceHall",
}

// NormalizeGenre maps a tag's genre onto the fixed vocabulary, ignoring case, spaces and
// punctuation. Anything outside the vocabulary is catalog.UnknownGenre.
func NormalizeGenre(genre string) string {
	key := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, genre)

	if g, ok := genres[key]; ok {
		return g
	}
	return catalog.UnknownGenre
}
