package derive

import (
	"regexp"
	"strings"
)

var (
	// postal code prefix some rows carry, e.g. "〒812-0011 "
	postalPrefix = regexp.MustCompile(`^〒?\s*\d{3}-?\d{4}\s*`)

	// two or three characters before the suffix covers every prefecture,
	// and keeps 京都府 from stopping at the 都 in its name
	prefecturePattern = regexp.MustCompile(`^(.{2,3}?[都道府県])`)

	locationPattern = regexp.MustCompile(`^(.{2,3}?[都道府県])(.+?[市区町村])?`)

	municipalitySuffix = regexp.MustCompile(`[市区町村]`)
)

// ExtractArea derives a coarse area from a free-text address.
// It returns the prefecture when one is present, otherwise the text before the
// first municipality suffix, and "" when the address has neither.
func ExtractArea(address string) string {
	address = normalizeAddress(address)
	if address == "" {
		return ""
	}

	if m := prefecturePattern.FindStringSubmatch(address); m != nil {
		return m[1]
	}

	loc := municipalitySuffix.FindStringIndex(address)
	if loc == nil {
		return ""
	}
	return address[:loc[0]]
}

// ExtractLocation returns prefecture plus city or ward, e.g. "福岡県福岡市",
// for card display. Addresses without a prefecture yield "".
func ExtractLocation(address string) string {
	address = normalizeAddress(address)
	if address == "" {
		return ""
	}

	m := locationPattern.FindStringSubmatch(address)
	if m == nil {
		return ""
	}
	return m[1] + m[2]
}

func normalizeAddress(address string) string {
	address = strings.TrimSpace(address)
	return postalPrefix.ReplaceAllString(address, "")
}
