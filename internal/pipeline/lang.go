package pipeline

import "strings"

type langInfo struct {
	name string
	flag string
}

var languages = map[string]langInfo{
	"km": {"Khmer", "🇰🇭"},
	"vi": {"Vietnamese", "🇻🇳"},
	"en": {"English", "🇬🇧"},
	"th": {"Thai", "🇹🇭"},
	"lo": {"Lao", "🇱🇦"},
	"my": {"Burmese", "🇲🇲"},
	"id": {"Indonesian", "🇮🇩"},
	"ms": {"Malay", "🇲🇾"},
	"zh": {"Chinese", "🇨🇳"},
	"ja": {"Japanese", "🇯🇵"},
	"ko": {"Korean", "🇰🇷"},
	"fr": {"French", "🇫🇷"},
	"es": {"Spanish", "🇪🇸"},
	"ru": {"Russian", "🇷🇺"},
}

// LangName turns an ISO 639-1 code into a display name, falling back to the
// upper-cased code for pairs nobody taught it.
func LangName(code string) string {
	if l, ok := languages[code]; ok {
		return l.name
	}
	return strings.ToUpper(code)
}

// LangFlag returns the flag emoji used in replies for a language code.
func LangFlag(code string) string {
	if l, ok := languages[code]; ok {
		return l.flag
	}
	return "🌐"
}
