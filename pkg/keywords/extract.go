package keywords

import (
	"sort"
	"strings"
	"unicode"
)

var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "from": {}, "this": {},
	"that": {}, "are": {}, "was": {}, "has": {}, "have": {}, "not": {},
	"its": {}, "their": {}, "into": {}, "over": {}, "under": {}, "pdf": {},
	"docx": {}, "xlsx": {}, "csv": {}, "txt": {},
}

// Extract derives a comma separated keyword list from free text such as
// a document name and supplier. Tokens are lowercased, deduplicated and
// stripped of stopwords and short fragments.
func Extract(texts ...string) string {
	seen := make(map[string]struct{})
	var out []string

	for _, text := range texts {
		for _, token := range tokenize(text) {
			if len(token) < 3 {
				continue
			}
			if _, stop := stopwords[token]; stop {
				continue
			}
			if _, dup := seen[token]; dup {
				continue
			}
			seen[token] = struct{}{}
			out = append(out, token)
		}
	}

	sort.Strings(out)
	return strings.Join(out, ", ")
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
