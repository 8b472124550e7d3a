package dtypes

type Set[E comparable] map[E]struct{}

func MakeFromSlice[E comparable](slice []E) Set[E] {
	result := make(Set[E])
	for _, e := range slice {
		result[e] = struct{}{}
	}
	return result
}

func (s Set[E]) Add(e E) Set[E] {
	s[e] = struct{}{}
	return s
}

func (s Set[E]) Contains(e E) bool {
	_, ok := s[e]
	return ok
}

func (s Set[E]) Len() int {
	return len(s)
}
