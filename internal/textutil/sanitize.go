package textutil

import "strings"

// Zero-width and bidi formatting characters are made visible instead of
// silently dropped, so a name like "evil‮.txt" cannot masquerade
// as something else in the listing.
var invisibleRuneLabels = map[rune]string{
	0x061C: "⟪ALM⟫",
	0x200B: "⟪ZWSP⟫",
	0x200C: "⟪ZWNJ⟫",
	0x200D: "⟪ZWJ⟫",
	0x200E: "⟪LRM⟫",
	0x200F: "⟪RLM⟫",
	0x202A: "⟪LRE⟫",
	0x202B: "⟪RLE⟫",
	0x202C: "⟪PDF⟫",
	0x202D: "⟪LRO⟫",
	0x202E: "⟪RLO⟫",
	0x2028: "⟪LSEP⟫",
	0x2029: "⟪PSEP⟫",
	0x00AD: "⟪SHY⟫",
	0x2060: "⟪WJ⟫",
	0x2066: "⟪LRI⟫",
	0x2067: "⟪RLI⟫",
	0x2068: "⟪FSI⟫",
	0x2069: "⟪PDI⟫",
	0xFEFF: "⟪BOM⟫",
}

// SanitizeTerminalText replaces control characters so entry names cannot
// inject terminal escape sequences when rendered. Clean text, which is
// the common case, is returned unchanged without allocating.
func SanitizeTerminalText(text string) string {
	if strings.IndexFunc(text, needsReplacement) < 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case isInvisibleRune(r):
			b.WriteString(invisibleRuneLabels[r])
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		case r < 0x20 || r == 0x7f:
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsReplacement(r rune) bool {
	return isInvisibleRune(r) || r < 0x20 || r == 0x7f
}

func isInvisibleRune(r rune) bool {
	_, ok := invisibleRuneLabels[r]
	return ok
}
