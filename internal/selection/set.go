package selection

// itemSet is the selection storage: items keyed by identity, remembering
// insertion order so Selection() is stable between calls.
type itemSet[T any] struct {
	items map[string]T
	order []string
}

func newItemSet[T any]() *itemSet[T] {
	return &itemSet[T]{items: make(map[string]T)}
}

func (s *itemSet[T]) has(key string) bool {
	_, ok := s.items[key]
	return ok
}

func (s *itemSet[T]) add(key string, item T) bool {
	if s.has(key) {
		return false
	}
	s.items[key] = item
	s.order = append(s.order, key)
	return true
}

func (s *itemSet[T]) remove(key string) (T, bool) {
	item, ok := s.items[key]
	if !ok {
		return item, false
	}
	delete(s.items, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return item, true
}

func (s *itemSet[T]) len() int {
	return len(s.order)
}

func (s *itemSet[T]) keys() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *itemSet[T]) values() []T {
	out := make([]T, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.items[k])
	}
	return out
}

// first returns the oldest member, which in single and one mode is the
// only member.
func (s *itemSet[T]) first() (T, bool) {
	if len(s.order) == 0 {
		var zero T
		return zero, false
	}
	return s.items[s.order[0]], true
}
