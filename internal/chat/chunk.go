package chat

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// fitFunc returns how many leading runes of text fit within limit.
type fitFunc func(text []rune, limit int) int

// Split breaks text into chunks of at most maxRunes characters. It prefers
// to break at the last newline, then at the last space, and hard-breaks
// words longer than the limit. Blank chunks are dropped.
func Split(text string, maxRunes int) []string {
	return split(text, maxRunes, fitRunes)
}

// SplitLines splits text on newlines and then chunks every line on its own,
// counting characters. Blank lines are dropped.
func SplitLines(text string, maxRunes int) []string {
	return splitLines(text, maxRunes, fitRunes)
}

// SplitLinesBytes is SplitLines for protocols whose limit is in bytes.
// Chunks are cut only at rune boundaries.
func SplitLinesBytes(text string, maxBytes int) []string {
	return splitLines(text, maxBytes, fitBytes)
}

func splitLines(text string, limit int, fit fitFunc) []string {
	var chunks []string
	for line := range strings.SplitSeq(text, "\n") {
		chunks = append(chunks, split(line, limit, fit)...)
	}
	return chunks
}

func split(text string, limit int, fit fitFunc) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if limit <= 0 {
		return []string{text}
	}

	var chunks []string
	rest := []rune(text)
	for {
		// A single rune wider than the limit still has to go somewhere.
		n := max(fit(rest, limit), 1)
		if n >= len(rest) {
			break
		}

		cut, skip := breakPoint(rest[:n+1], n)
		chunks = appendChunk(chunks, string(rest[:cut]))
		rest = []rune(strings.TrimLeftFunc(string(rest[cut+skip:]), unicode.IsSpace))
	}

	return appendChunk(chunks, string(rest))
}

func fitRunes(text []rune, limit int) int {
	return min(len(text), limit)
}

func fitBytes(text []rune, limit int) int {
	size := 0
	for i, r := range text {
		size += utf8.RuneLen(r)
		if size > limit {
			return i
		}
	}
	return len(text)
}

// breakPoint returns where to cut window and how many separator runes to
// skip. window holds the runes that fit plus the first one that does not.
func breakPoint(window []rune, fits int) (int, int) {
	if i := lastIndex(window, '\n'); i > 0 {
		return i, 1
	}
	if i := lastIndex(window, ' '); i > 0 {
		return i, 1
	}
	return fits, 0
}

func lastIndex(runes []rune, r rune) int {
	for i, v := range slices.Backward(runes) {
		if v == r {
			return i
		}
	}
	return -1
}

func appendChunk(chunks []string, chunk string) []string {
	if chunk = strings.TrimSpace(chunk); chunk != "" {
		chunks = append(chunks, chunk)
	}
	return chunks
}
