package text

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// ToParagraphs normalizes whitespace and splits text into sentences.
// A break happens after '.', '!' or '?' when the next character is an
// ASCII upper-case letter or a digit.
func ToParagraphs(text string) []string {
	normalized := strings.Join(strings.Fields(text), " ")
	if normalized == "" {
		return nil
	}

	var parts []string
	start := 0
	for i := 1; i+1 < len(normalized); i++ {
		if normalized[i] != ' ' {
			continue
		}
		if !isTerminal(normalized[i-1]) || !isSentenceStart(normalized[i+1]) {
			continue
		}
		parts = append(parts, normalized[start:i])
		start = i + 1
	}
	parts = append(parts, normalized[start:])

	return lo.FilterMap(parts, func(p string, _ int) (string, bool) {
		p = strings.TrimSpace(p)
		return p, p != ""
	})
}

func isTerminal(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

func isSentenceStart(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// FormatTimestamp renders seconds as mm:ss.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	m := int(seconds / 60)
	s := int(math.RoundToEven(seconds - 60*float64(m)))
	if s >= 60 {
		m += s / 60
		s %= 60
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// Wrap breaks line into chunks of at most width runes, packing words
// greedily. A word may also break after a hyphen between two letters or
// digits. Words longer than width are split.
func Wrap(line string, width int) []string {
	if width <= 0 {
		width = 1
	}

	var (
		lines   []string
		current []rune
	)
	flush := func() {
		if len(current) > 0 {
			lines = append(lines, string(current))
			current = current[:0]
		}
	}

	for _, word := range strings.Fields(line) {
		for i, chunk := range hyphenChunks(word) {
			w := chunk
			glued := i > 0
			for len(w) > 0 {
				room := width - len(current)
				if len(current) > 0 && !glued {
					room--
				}
				if len(w) <= room {
					if len(current) > 0 && !glued {
						current = append(current, ' ')
					}
					current = append(current, w...)
					w = nil
					continue
				}
				if len(current) > 0 {
					flush()
					continue
				}
				current = append(current, w[:width]...)
				w = w[width:]
				flush()
			}
		}
	}
	flush()

	return lines
}

// hyphenChunks splits word after every hyphen that sits between two
// letters or digits: "well-known" becomes "well-" and "known".
func hyphenChunks(word string) [][]rune {
	r := []rune(word)
	var chunks [][]rune
	start := 0
	for i := 1; i < len(r)-1; i++ {
		if r[i] == '-' && isWordRune(r[i-1]) && isWordRune(r[i+1]) {
			chunks = append(chunks, r[start:i+1])
			start = i + 1
		}
	}
	return append(chunks, r[start:])
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
