// Copyright (c) 2026 Airgap Tools
// bip39 - BIP-39 mnemonic toolkit for air-gapped machines
// This source code is licensed under the MIT license found in the LICENSE file.

package wordlist

// SuggestDistance is the maximum edit distance for nearest-word
// suggestions. Beyond two edits a suggestion is more likely to mislead than
// to help.
const SuggestDistance = 2

// Suggest returns up to max vocabulary words within SuggestDistance edits
// of the given word, in list order. A linear scan over 2048 entries with a
// banded early exit; this only runs on the error path after an exact-match
// lookup has already failed.
func (r *Registry) Suggest(word string, max int) []string {
	if max <= 0 {
		return nil
	}
	var out []string
	for _, candidate := range r.words {
		if editDistanceAtMost(word, candidate, SuggestDistance) {
			out = append(out, candidate)
			if len(out) == max {
				break
			}
		}
	}
	return out
}

// editDistanceAtMost reports whether the Levenshtein distance between a and
// b is at most limit, bailing out as soon as every cell in a row exceeds
// the limit.
func editDistanceAtMost(a, b string, limit int) bool {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la-lb > limit || lb-la > limit {
		return false
	}

	prev := make([]int, lb+1)
	cur := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		cur[0] = i
		rowMin := cur[0]
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			d := prev[j-1] + cost
			if v := prev[j] + 1; v < d {
				d = v
			}
			if v := cur[j-1] + 1; v < d {
				d = v
			}
			cur[j] = d
			if d < rowMin {
				rowMin = d
			}
		}
		if rowMin > limit {
			return false
		}
		prev, cur = cur, prev
	}
	return prev[lb] <= limit
}
