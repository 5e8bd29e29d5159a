package snapshot

import (
	"context"
	"slices"
)

// collection addresses one slice of the snapshot.
type collection[T any] struct {
	store *Store
	slot  func(data *Snapshot) *[]T
	id    func(v T) string
}

func (c collection[T]) insert(ctx context.Context, v T) error {
	return c.store.update(ctx, func(data *Snapshot) error {
		p := c.slot(data)
		next := make([]T, len(*p), len(*p)+1)
		copy(next, *p)
		*p = append(next, v)
		return nil
	})
}

// replace applies fn to the record with the given id.
func (c collection[T]) replace(ctx context.Context, id string, fn func(v T) T) (T, error) {
	var out T
	err := c.store.update(ctx, func(data *Snapshot) error {
		p := c.slot(data)
		idx := slices.IndexFunc(*p, func(v T) bool { return c.id(v) == id })
		if idx < 0 {
			return ErrRecordNotFound
		}
		next := slices.Clone(*p)
		next[idx] = fn(next[idx])
		*p = next
		out = next[idx]
		return nil
	})
	return out, err
}

func (c collection[T]) get(id string) (T, error) {
	var (
		out   T
		found bool
	)
	c.store.view(func(data *Snapshot) {
		for _, v := range *c.slot(data) {
			if c.id(v) == id {
				out, found = v, true
				return
			}
		}
	})
	if !found {
		return out, ErrRecordNotFound
	}
	return out, nil
}

// filter returns matching records in insertion order. A nil keep matches all.
func (c collection[T]) filter(keep func(v T) bool) []T {
	out := []T{}
	c.store.view(func(data *Snapshot) {
		for _, v := range *c.slot(data) {
			if keep == nil || keep(v) {
				out = append(out, v)
			}
		}
	})
	return out
}
