package ecs

import "reflect"

// SetResource stores value as the scene's single T resource, replacing any
// previous one. Resources hold per-scene state that belongs to no entity,
// such as a camera or the active input snapshot.
func SetResource[T any](s *Scene, value T) {
	v := new(T)
	*v = value
	s.resources[reflect.TypeFor[T]()] = v
}

// Resource returns a pointer to the scene's T resource.
func Resource[T any](s *Scene) (*T, bool) {
	v, ok := s.resources[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

// DeleteResource removes the scene's T resource and reports whether one
// was present.
func DeleteResource[T any](s *Scene) bool {
	t := reflect.TypeFor[T]()
	if _, ok := s.resources[t]; !ok {
		return false
	}
	delete(s.resources, t)
	return true
}
