package object

// maxPeelDepth bounds tag-chain traversal so a cyclic chain cannot loop
// forever.
const maxPeelDepth = 32

// Peel follows a tag chain starting at h and returns the first non-tag
// object it reaches. The second return value reports whether h peeled at
// all: it is false when h is not a tag, or when the chain cannot be read
// or never terminates. Failure to peel is not an error condition.
func (s *Store) Peel(h Hash) (Hash, bool) {
	cur := h
	peeled := false
	for i := 0; i < maxPeelDepth; i++ {
		objType, data, err := s.Read(cur)
		if err != nil {
			return "", false
		}
		if objType != TypeTag {
			if !peeled {
				return "", false
			}
			return cur, true
		}
		tag, err := UnmarshalTag(data)
		if err != nil {
			return "", false
		}
		cur = tag.TargetHash
		peeled = true
	}
	return "", false
}
