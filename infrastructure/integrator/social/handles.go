package social

import (
	"strings"
	"unicode"
)

var accentReplacer = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ã", "a", "ä", "a",
	"é", "e", "ê", "e", "è", "e",
	"í", "i", "î", "i",
	"ó", "o", "ô", "o", "õ", "o", "ö", "o",
	"ú", "u", "ü", "u",
	"ç", "c", "ñ", "n",
	"&", " e ",
)

// palavras que raramente fazem parte do handle
var stopwords = map[string]struct{}{
	"de": {}, "da": {}, "do": {}, "das": {}, "dos": {}, "e": {}, "ltda": {}, "me": {}, "eireli": {}, "sa": {},
}

const maxHandles = 3

// CandidateHandles deriva até três handles prováveis a partir do nome da empresa
func CandidateHandles(nome string) []string {
	normalized := accentReplacer.Replace(strings.ToLower(strings.TrimSpace(nome)))

	words := strings.FieldsFunc(normalized, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	kept := make([]string, 0, len(words))
	for _, w := range words {
		if _, stop := stopwords[w]; stop {
			continue
		}
		kept = append(kept, w)
	}

	if len(kept) == 0 {
		return []string{}
	}

	candidates := []string{
		strings.Join(kept, ""),
		strings.Join(kept, "."),
		strings.Join(kept, "_"),
	}

	result := make([]string, 0, maxHandles)
	seen := map[string]struct{}{}
	for _, c := range candidates {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		result = append(result, c)
		if len(result) == maxHandles {
			break
		}
	}

	return result
}
