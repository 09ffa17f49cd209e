package agent

import "strings"

// Supported response languages.
const (
	languageEnglish = "en"
	languageSwahili = "sw"
)

// swahiliMarkers are common Swahili words and particles. Detection is a
// marker count over the input tokens; customers mix languages freely, so the
// bar is one clear marker per short message.
var swahiliMarkers = map[string]bool{
	"habari": true, "mambo": true, "sasa": true, "karibu": true, "asante": true,
	"nataka": true, "ninataka": true, "nipe": true, "naomba": true, "tafadhali": true,
	"bei": true, "ngapi": true, "pesa": true, "lipa": true, "nitalipa": true,
	"nunua": true, "ndiyo": true, "hapana": true, "sawa": true, "leo": true,
	"kesho": true, "unauza": true, "mnauza": true, "iko": true, "zipo": true,
	"gani": true, "nini": true, "wapi": true, "mzigo": true, "duka": true,
}

// detectLanguage classifies the input as English or Swahili. Empty input or
// no signal returns "" so the caller falls back to the locked or default
// language.
func detectLanguage(text string) string {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return ""
	}

	markers := 0
	for _, f := range fields {
		if swahiliMarkers[strings.Trim(f, ".,!?")] {
			markers++
		}
	}

	switch {
	case markers == 0:
		return languageEnglish
	case len(fields) <= 4 || markers*3 >= len(fields):
		return languageSwahili
	default:
		return languageEnglish
	}
}
