package speller

// alphabet is the fixed candidate alphabet, independent of whatever language
// the corpus is in.
const alphabet = "abcdefghijklmnopqrstuvwxyz"

// GenerateCandidates returns every string reachable from word by a single
// deletion, adjacent transposition, substitution or insertion over the
// alphabet, so every output is within edit distance 1 of word. The result is
// deduplicated and its order is deterministic: split index 0..len(word), and
// within a split deletion, transposition, substitutions a-z, insertions a-z,
// first occurrence wins.
func GenerateCandidates(word string) []string {
	seen := make(map[string]struct{})
	candidates := []string{}
	emit := func(candidate string) {
		if _, dup := seen[candidate]; dup {
			return
		}
		seen[candidate] = struct{}{}
		candidates = append(candidates, candidate)
	}

	for i := 0; i <= len(word); i++ {
		left, right := word[:i], word[i:]

		if len(right) > 0 {
			emit(left + right[1:])
		}
		if len(right) >= 2 {
			emit(left + string(right[1]) + string(right[0]) + right[2:])
		}
		if len(right) > 0 {
			for _, c := range alphabet {
				emit(left + string(c) + right[1:])
			}
		}
		for _, c := range alphabet {
			emit(left + string(c) + right)
		}
	}
	return candidates
}
