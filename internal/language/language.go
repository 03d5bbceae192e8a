// Package language normalizes subtitle language tags and maps them to
// human-readable names. Containers conventionally carry ISO 639-2 three
// letter codes; streams without a tag are treated as "und".
package language

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Undetermined is the reserved tag for streams with no language metadata.
const Undetermined = "und"

var namer = display.English.Languages()

// ISO 639-2 bibliographic codes seen in container metadata, mapped to the
// terminological form BCP 47 parsing expects.
var bibliographic = map[string]string{
	"fre": "fra",
	"ger": "deu",
	"dut": "nld",
	"chi": "zho",
	"cze": "ces",
	"gre": "ell",
	"ice": "isl",
	"rum": "ron",
	"slo": "slk",
	"arm": "hye",
	"per": "fas",
	"may": "msa",
}

// Normalize lowercases and trims a raw container tag, mapping the empty
// string to Undetermined.
func Normalize(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return Undetermined
	}
	return tag
}

// DisplayName returns an English display name for a language tag, e.g.
// "eng" -> "English". Unrecognized tags are returned as-is so log output
// always has something to show.
func DisplayName(tag string) string {
	tag = Normalize(tag)
	if tag == Undetermined {
		return "Undefined"
	}

	parse := tag
	if alt, ok := bibliographic[parse]; ok {
		parse = alt
	}

	base, err := language.ParseBase(parse)
	if err != nil {
		return tag
	}

	name := namer.Name(language.Make(base.String()))
	if name == "" {
		return tag
	}
	return name
}
