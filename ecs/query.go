package ecs

import "github.com/milk9111/trazo/ecs/component"

// ForEach calls fn for every live entity carrying kind. Entities created or
// destroyed by fn do not disturb the iteration.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := storeFor(w, kind, false)
	if s == nil || fn == nil {
		return
	}
	for _, e := range s.Entities() {
		if !IsAlive(w, e) {
			continue
		}
		if v := s.Get(e.id()); v != nil {
			fn(e, v)
		}
	}
}

// ForEach2 iterates entities carrying both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	if sa == nil || sb == nil || fn == nil {
		return
	}
	for _, e := range smallest(sa.Entities(), sb.Entities()) {
		if !IsAlive(w, e) {
			continue
		}
		a, b := sa.Get(e.id()), sb.Get(e.id())
		if a == nil || b == nil {
			continue
		}
		fn(e, a, b)
	}
}

// ForEach3 iterates entities carrying all three kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	sc := storeFor(w, kc, false)
	if sa == nil || sb == nil || sc == nil || fn == nil {
		return
	}
	for _, e := range smallest(sa.Entities(), sb.Entities(), sc.Entities()) {
		if !IsAlive(w, e) {
			continue
		}
		a, b, c := sa.Get(e.id()), sb.Get(e.id()), sc.Get(e.id())
		if a == nil || b == nil || c == nil {
			continue
		}
		fn(e, a, b, c)
	}
}

// First returns the live entity with kind that has the lowest id.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	s := storeFor(w, kind, false)
	var (
		best  Entity
		found bool
	)
	for _, e := range s.Entities() {
		if !IsAlive(w, e) {
			continue
		}
		if !found || e.id() < best.id() {
			best = e
			found = true
		}
	}
	return best, found
}

// Count returns the number of live entities carrying kind.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	n := 0
	ForEach(w, kind, func(Entity, *T) { n++ })
	return n
}

// smallest picks the shortest candidate list; iterating it bounds the work.
func smallest(lists ...[]Entity) []Entity {
	var out []Entity
	for i, l := range lists {
		if i == 0 || len(l) < len(out) {
			out = l
		}
	}
	return out
}
