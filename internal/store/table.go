package store

// table is one entity collection: a map for id lookups plus the insertion
// order of the live ids. Removed ids are never reused because they are never
// handed out again.
type table[T any] struct {
	items map[string]T
	order []string
}

func newTable[T any]() table[T] {
	return table[T]{items: make(map[string]T)}
}

func (t *table[T]) insert(id string, v T) {
	if _, ok := t.items[id]; !ok {
		t.order = append(t.order, id)
	}

	t.items[id] = v
}

func (t *table[T]) get(id string) (T, bool) {
	v, ok := t.items[id]

	return v, ok
}

func (t *table[T]) scan(pred func(T) bool) []T {
	ans := make([]T, 0, len(t.order))

	for _, id := range t.order {
		v := t.items[id]
		if pred == nil || pred(v) {
			ans = append(ans, v)
		}
	}

	return ans
}

func (t *table[T]) update(id string, fn func(*T)) (T, bool) {
	v, ok := t.items[id]
	if !ok {
		return v, false
	}

	fn(&v)
	t.items[id] = v

	return v, true
}

func (t *table[T]) remove(id string) (T, bool) {
	v, ok := t.items[id]
	if !ok {
		return v, false
	}

	delete(t.items, id)

	for i, cur := range t.order {
		if cur == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}

	return v, true
}

func (t *table[T]) len() int {
	return len(t.items)
}
