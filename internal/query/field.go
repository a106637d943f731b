package query

// Field selects the record attribute a clause is compared against.
type Field int

// The zero value is Unrecognized so an unset clause never matches.
const (
	Unrecognized Field = iota
	Path
	Size
	Title
	Author
	Duration
	Album
	Year
	Genre
)

var fieldNames = map[string]Field{
	"path":     Path,
	"size":     Size,
	"title":    Title,
	"author":   Author,
	"duration": Duration,
	"album":    Album,
	"year":     Year,
	"genre":    Genre,
}

// Fields lists the recognized selectors in query-language order.
var Fields = []Field{Path, Size, Title, Author, Duration, Album, Year, Genre}

// ParseField looks name up in the fixed vocabulary. The lookup is case-sensitive.
func ParseField(name string) Field {
	if f, ok := fieldNames[name]; ok {
		return f
	}
	return Unrecognized
}

func (f Field) String() string {
	switch f {
	case Path:
		return "path"
	case Size:
		return "size"
	case Title:
		return "title"
	case Author:
		return "author"
	case Duration:
		return "duration"
	case Album:
		return "album"
	case Year:
		return "year"
	case Genre:
		return "genre"
	default:
		return "unrecognized"
	}
}
