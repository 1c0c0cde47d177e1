// Package policy holds the keyword tables the scorers match against.
package policy

import "strings"

// Catalog groups every keyword list used by the scoring rules. Lists are
// matched as case-insensitive substrings.
type Catalog struct {
	ElectronicsCategory     string
	HeadquartersTaxIDSuffix string
	CryptoKeywords          []string
	CrossBorderKeywords     []string
	AnonymizerKeywords      []string
	UnknownDeviceKeywords   []string
	LuxuryBrands            []string
	CounterfeitTerms        []string
}

// DefaultCatalog returns the built-in keyword tables.
func DefaultCatalog() Catalog {
	return Catalog{
		CryptoKeywords:          []string{"crypto", "bitcoin"},
		CrossBorderKeywords:     []string{"internacional", "international", "swift"},
		AnonymizerKeywords:      []string{"tor", "vpn", "proxy"},
		UnknownDeviceKeywords:   []string{"desconhecido", "unknown"},
		LuxuryBrands:            []string{"rolex", "gucci", "prada", "louis vuitton", "iphone", "apple", "nike"},
		CounterfeitTerms:        []string{"réplica", "replica", "primeira linha", "first line", "similar", "tipo", "type-like"},
		ElectronicsCategory:     "Eletrônicos",
		HeadquartersTaxIDSuffix: "0001-00",
	}
}

// Normalized returns a copy with every keyword lowercased and trimmed, and
// blank entries removed.
func (c Catalog) Normalized() Catalog {
	out := c
	out.CryptoKeywords = normalize(c.CryptoKeywords)
	out.CrossBorderKeywords = normalize(c.CrossBorderKeywords)
	out.AnonymizerKeywords = normalize(c.AnonymizerKeywords)
	out.UnknownDeviceKeywords = normalize(c.UnknownDeviceKeywords)
	out.LuxuryBrands = normalize(c.LuxuryBrands)
	out.CounterfeitTerms = normalize(c.CounterfeitTerms)
	return out
}

func normalize(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// ContainsAny reports whether text contains any keyword, ignoring case.
// Keywords are expected in lower case.
func ContainsAny(text string, keywords []string) bool {
	lowered := strings.ToLower(text)
	for _, k := range keywords {
		if strings.Contains(lowered, k) {
			return true
		}
	}
	return false
}
