package ecs

import (
	"reflect"
)

// ComponentInfo describes a registered component type.
type ComponentInfo struct {
	ID       ComponentTypeID
	Type     reflect.Type
	Count    int
	Capacity int
}

// ComponentCatalog assigns each registered component type a stable
// ComponentTypeID and owns the ComponentStore backing it. Each Scene has
// its own catalog, so independent scenes never share type IDs.
type ComponentCatalog struct {
	ids         map[reflect.Type]ComponentTypeID
	stores      []iComponentStore
	maxPerStore int
}

// NewComponentCatalog creates a catalog whose stores each hold at most
// maxPerStore components.
func NewComponentCatalog(maxPerStore int) *ComponentCatalog {
	return &ComponentCatalog{
		ids:         make(map[reflect.Type]ComponentTypeID),
		stores:      make([]iComponentStore, 0, MaxComponentTypes),
		maxPerStore: maxPerStore,
	}
}

// RegisterType assigns the next unused type ID to T and allocates its
// store. Registering T again returns the ID it already has.
func RegisterType[T any](c *ComponentCatalog) (ComponentTypeID, error) {
	t := reflect.TypeFor[T]()
	if id, ok := c.ids[t]; ok {
		return id, nil
	}
	if len(c.stores) >= MaxComponentTypes {
		return 0, &ComponentError{Op: "register", Type: t, Err: ErrTooManyTypes}
	}

	id := ComponentTypeID(len(c.stores))
	c.ids[t] = id
	c.stores = append(c.stores, NewComponentStore[T](c.maxPerStore))
	return id, nil
}

// TypeID returns the ID assigned to T.
func TypeID[T any](c *ComponentCatalog) (ComponentTypeID, error) {
	t := reflect.TypeFor[T]()
	id, ok := c.ids[t]
	if !ok {
		return 0, &ComponentError{Op: "type id", Type: t, Err: ErrUnregisteredType}
	}
	return id, nil
}

// StoreOf returns the typed store backing T.
func StoreOf[T any](c *ComponentCatalog) (*ComponentStore[T], error) {
	t := reflect.TypeFor[T]()
	id, ok := c.ids[t]
	if !ok {
		return nil, &ComponentError{Op: "lookup", Type: t, Err: ErrUnregisteredType}
	}
	store, ok := c.stores[id].(*ComponentStore[T])
	if !ok {
		return nil, &ComponentError{Op: "lookup", Type: t, Err: ErrUnregisteredType}
	}
	return store, nil
}

// Add stores value as e's T component.
func Add[T any](c *ComponentCatalog, e Entity, value T) error {
	store, err := StoreOf[T](c)
	if err != nil {
		return err
	}
	return store.Insert(e, value)
}

// Remove drops e's T component.
func Remove[T any](c *ComponentCatalog, e Entity) error {
	store, err := StoreOf[T](c)
	if err != nil {
		return err
	}
	return store.Remove(e)
}

// Get returns a pointer to e's T component. See ComponentStore.Get for how
// long the pointer stays valid.
func Get[T any](c *ComponentCatalog, e Entity) (*T, error) {
	store, err := StoreOf[T](c)
	if err != nil {
		return nil, err
	}
	return store.Get(e)
}

// Has reports whether e holds a T component. Unregistered types report false.
func Has[T any](c *ComponentCatalog, e Entity) bool {
	store, err := StoreOf[T](c)
	if err != nil {
		return false
	}
	return store.Has(e)
}

// GetAny returns e's component of the given type ID as a pointer wrapped in
// an interface, for reflective callers such as editor inspectors.
func (c *ComponentCatalog) GetAny(e Entity, id ComponentTypeID) (any, bool) {
	if int(id) >= len(c.stores) {
		return nil, false
	}
	return c.stores[id].GetAny(e)
}

// EntityDestroyed tells every store that e is gone.
func (c *ComponentCatalog) EntityDestroyed(e Entity) {
	for _, store := range c.stores {
		store.EntityDestroyed(e)
	}
}

// Types lists registered component types in ID order.
func (c *ComponentCatalog) Types() []ComponentInfo {
	infos := make([]ComponentInfo, len(c.stores))
	for i, store := range c.stores {
		infos[i] = ComponentInfo{
			ID:       ComponentTypeID(i),
			Type:     store.Type(),
			Count:    store.Len(),
			Capacity: store.Cap(),
		}
	}
	return infos
}

// Len returns the number of registered component types.
func (c *ComponentCatalog) Len() int {
	return len(c.stores)
}
