package ecs

// Each1 calls fn for every member of set that holds an A component.
func Each1[A any](s *Scene, set *EntitySet, fn func(Entity, *A)) {
	sa, err := StoreOf[A](s.catalog)
	if err != nil {
		return
	}
	for e := range set.Iter() {
		if a, err := sa.Get(e); err == nil {
			fn(e, a)
		}
	}
}

// Each2 calls fn for every member of set that holds both A and B.
func Each2[A, B any](s *Scene, set *EntitySet, fn func(Entity, *A, *B)) {
	sa, err := StoreOf[A](s.catalog)
	if err != nil {
		return
	}
	sb, err := StoreOf[B](s.catalog)
	if err != nil {
		return
	}
	for e := range set.Iter() {
		a, err := sa.Get(e)
		if err != nil {
			continue
		}
		b, err := sb.Get(e)
		if err != nil {
			continue
		}
		fn(e, a, b)
	}
}

// Each3 calls fn for every member of set that holds A, B and C.
func Each3[A, B, C any](s *Scene, set *EntitySet, fn func(Entity, *A, *B, *C)) {
	sa, err := StoreOf[A](s.catalog)
	if err != nil {
		return
	}
	sb, err := StoreOf[B](s.catalog)
	if err != nil {
		return
	}
	sc, err := StoreOf[C](s.catalog)
	if err != nil {
		return
	}
	for e := range set.Iter() {
		a, err := sa.Get(e)
		if err != nil {
			continue
		}
		b, err := sb.Get(e)
		if err != nil {
			continue
		}
		c, err := sc.Get(e)
		if err != nil {
			continue
		}
		fn(e, a, b, c)
	}
}
