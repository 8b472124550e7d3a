package dtypes

// We use the ordered map type as the basis for an ordered set. It is ordered
// in order of addition to the set, not by comparison.

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type OrderedSet struct{ om *orderedmap.OrderedMap[string, struct{}] }

func NewOrderedSet() *OrderedSet {
	return &OrderedSet{orderedmap.New[string, struct{}]()}
}

func (os *OrderedSet) Add(s string) {
	os.om.Set(s, struct{}{})
}

func (os *OrderedSet) Contains(s string) bool {
	_, ok := os.om.Get(s)
	return ok
}

// The elements in the order they were added.
func (os *OrderedSet) Elements() []string {
	result := []string{}
	for pair := os.om.Oldest(); pair != nil; pair = pair.Next() {
		result = append(result, pair.Key)
	}
	return result
}

func (os OrderedSet) String() string {
	out := "orderedSet{"
	sep := ""
	for pair := os.om.Oldest(); pair != nil; pair = pair.Next() {
		out = out + sep + pair.Key
		sep = ", "
	}
	out = out + "}"
	return out
}

func (os *OrderedSet) Len() int {
	return os.om.Len()
}
