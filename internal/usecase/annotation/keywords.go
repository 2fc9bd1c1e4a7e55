package annotation

import "strings"

// DefaultMaxKeywords caps the keyword list
const DefaultMaxKeywords = 12

// ExtractKeywords ranks the content words of the whole text and returns up to
// maxKeywords of them, skipping naive plural duplicates.
func ExtractKeywords(text string, maxKeywords int) []string {
	keywords := make([]string, 0)
	if maxKeywords <= 0 {
		return keywords
	}

	seenRoots := make(map[string]struct{})
	for _, tc := range CountTerms(text).MostCommon(maxKeywords * 2) {
		root := keywordRoot(tc.Term)
		if _, ok := seenRoots[root]; ok {
			continue
		}
		seenRoots[root] = struct{}{}
		keywords = append(keywords, tc.Term)
		if len(keywords) >= maxKeywords {
			break
		}
	}
	return keywords
}

// keywordRoot drops one trailing "s" from words of six or more letters.
// "status" becomes "statu"; that merge is accepted.
func keywordRoot(word string) string {
	if len(word) >= 6 {
		return strings.TrimSuffix(word, "s")
	}
	return word
}
