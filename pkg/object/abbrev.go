package object

import "strings"

// MinimumAbbrev is the smallest abbreviation the store will produce when a
// caller requests a fixed digit count.
const MinimumAbbrev = 4

// UniqueAbbrev returns the shortest hex prefix of h that is unambiguous
// among the store's objects and at least n digits long. A count of zero or
// less means "full hash". The requested count is a floor: the prefix is
// extended while another stored hash shares it.
func (s *Store) UniqueAbbrev(h Hash, n int) string {
	full := string(h)
	if n <= 0 || n >= len(full) {
		return full
	}
	if n < MinimumAbbrev {
		n = MinimumAbbrev
	}

	hashes, err := s.ListHashes()
	if err != nil {
		return full
	}

	for length := n; length < len(full); length++ {
		prefix := full[:length]
		ambiguous := false
		for _, other := range hashes {
			if other != h && strings.HasPrefix(string(other), prefix) {
				ambiguous = true
				break
			}
		}
		if !ambiguous {
			return prefix
		}
	}
	return full
}
