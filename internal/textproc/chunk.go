package textproc

import "strings"

// Split cuts text into chunks of at most maxChars, never inside a word. Each
// chunk after the first starts with the trailing words of the previous chunk
// totaling at most overlapChars, so entity mentions spanning a cut point
// survive in one of the two chunks. A single word longer than maxChars
// becomes its own oversized chunk.
func Split(text string, maxChars, overlapChars int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	var cur []string
	curLen := 0

	for _, w := range words {
		if len(w) > maxChars {
			if len(cur) > 0 {
				chunks = append(chunks, strings.Join(cur, " "))
			}
			chunks = append(chunks, w)
			cur = nil
			curLen = 0
			continue
		}
		add := len(w)
		if curLen > 0 {
			add++ // joining space
		}
		if curLen > 0 && curLen+add > maxChars {
			chunks = append(chunks, strings.Join(cur, " "))
			cur = overlapWords(cur, overlapChars)
			curLen = joinedLen(cur)
			add = len(w)
			if curLen > 0 {
				add++
			}
		}
		cur = append(cur, w)
		curLen += add
	}
	if len(cur) > 0 {
		chunks = append(chunks, strings.Join(cur, " "))
	}
	return chunks
}

// overlapWords returns the longest word suffix whose joined length does not
// exceed limit.
func overlapWords(words []string, limit int) []string {
	total := 0
	i := len(words)
	for i > 0 {
		add := len(words[i-1])
		if total > 0 {
			add++
		}
		if total+add > limit {
			break
		}
		total += add
		i--
	}
	return append([]string(nil), words[i:]...)
}

func joinedLen(words []string) int {
	n := 0
	for i, w := range words {
		if i > 0 {
			n++
		}
		n += len(w)
	}
	return n
}
