package ingest

import "strings"

// Split breaks a document into overlapping windows of about size characters.
// Each window ends on the latest paragraph, line, sentence or word boundary
// inside it, and the next window starts overlap characters earlier so no
// fact is stranded on a chunk edge. Sizes are counted in runes.
func Split(text string, size, overlap int) []string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) == 0 {
		return nil
	}
	if size <= 0 {
		size = 500
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}

	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + size
		if end >= len(runes) {
			end = len(runes)
		} else {
			end = splitPoint(runes, start, end)
		}
		if chunk := strings.TrimSpace(string(runes[start:end])); chunk != "" {
			chunks = append(chunks, chunk)
		}
		if end == len(runes) {
			break
		}
		next := end - overlap
		if next <= start {
			next = end
		}
		start = next
	}
	return chunks
}

var separators = []string{"\n\n", "\n", ". ", " "}

func splitPoint(runes []rune, start, end int) int {
	window := string(runes[start:end])
	for _, sep := range separators {
		if i := strings.LastIndex(window, sep); i > 0 {
			return start + len([]rune(window[:i+len(sep)]))
		}
	}
	return end
}
