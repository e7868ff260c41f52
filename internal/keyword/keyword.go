// Package keyword derives tags and keywords for posts that arrive without them.
package keyword

import (
	"regexp"
	"sort"
	"strings"

	"github.com/julienpequegnot/wayfare/internal/slug"
)

// Travel topics and the phrases that signal them.
var travelTopics = map[string][]string{
	"islands":       {"island", "islands", "koh ", "archipelago"},
	"beach":         {"beach", "beaches", "seaside", "snorkel"},
	"diving":        {"diving", "scuba", "dive site", "freediving"},
	"food":          {"food", "street food", "restaurant", "cuisine", "noodle", "curry", "market stall"},
	"temples":       {"temple", "temples", "wat ", "shrine", "pagoda"},
	"culture":       {"culture", "festival", "tradition", "museum", "ceremony"},
	"hiking":        {"hiking", "trek", "trekking", "trail", "national park"},
	"nightlife":     {"nightlife", "bar ", "bars", "club", "rooftop"},
	"transport":     {"ferry", "train", "bus ", "flight", "airport", "taxi", "scooter"},
	"accommodation": {"hotel", "hostel", "resort", "guesthouse", "homestay", "villa"},
	"visas":         {"visa", "immigration", "passport", "border run", "extension"},
	"budget":        {"budget", "cheap", "backpack", "backpacking", "save money"},
	"family":        {"family", "kids", "children", "toddler"},
	"weather":       {"weather", "monsoon", "rainy season", "dry season", "climate"},
	"shopping":      {"shopping", "mall", "night market", "souvenir"},
}

// Topics returns the travel topics mentioned in text, sorted by name.
func Topics(text string) []string {
	text = " " + slug.Fold(text) + " "
	var found []string

	for topic, phrases := range travelTopics {
		for _, phrase := range phrases {
			if strings.Contains(text, phrase) {
				found = append(found, topic)
				break
			}
		}
	}

	sort.Strings(found)
	return found
}

var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true, "from": true,
	"is": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "being": true, "have": true, "has": true, "had": true,
	"do": true, "does": true, "did": true, "will": true, "would": true,
	"could": true, "should": true, "may": true, "might": true, "must": true,
	"this": true, "that": true, "these": true, "those": true,
	"i": true, "you": true, "he": true, "she": true, "it": true,
	"we": true, "they": true, "what": true, "which": true, "who": true,
	"when": true, "where": true, "why": true, "how": true,
	"all": true, "each": true, "every": true, "both": true, "few": true,
	"more": true, "most": true, "other": true, "some": true, "such": true,
	"no": true, "not": true, "only": true, "same": true, "so": true,
	"than": true, "too": true, "very": true, "just": true, "also": true,
	"your": true, "our": true, "their": true, "its": true, "into": true,
	"about": true, "there": true, "here": true, "can": true, "get": true,
	"best": true, "guide": true, "tips": true, "things": true,
}

var wordRegex = regexp.MustCompile(`[a-z]+`)

// MinLength is the shortest word Extract keeps.
const MinLength = 4

// Extract returns up to n distinct significant words of text in order of
// first occurrence. Accents are folded; non-Latin scripts are skipped.
func Extract(text string, n int) []string {
	if n <= 0 {
		return nil
	}

	words := wordRegex.FindAllString(slug.Fold(text), -1)

	seen := make(map[string]bool)
	var keywords []string
	for _, word := range words {
		if len(word) < MinLength || stopWords[word] || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
		if len(keywords) == n {
			break
		}
	}

	return keywords
}
