package dtypes

// A perfectly ordinary stack, used by the parser to keep track of nesting.
type Stack[E any] struct {
	elements []E
}

func NewStack[E any]() *Stack[E] {
	return &Stack[E]{elements: []E{}}
}

func (s *Stack[E]) Push(e E) {
	s.elements = append(s.elements, e)
}

func (s *Stack[E]) Pop() (E, bool) {
	if len(s.elements) == 0 {
		var e E
		return e, false
	}
	e := s.elements[len(s.elements)-1]
	s.elements = s.elements[:len(s.elements)-1]
	return e, true
}

func (s *Stack[E]) Peek() (E, bool) {
	if len(s.elements) == 0 {
		var e E
		return e, false
	}
	return s.elements[len(s.elements)-1], true
}

func (s *Stack[E]) Len() int {
	return len(s.elements)
}
