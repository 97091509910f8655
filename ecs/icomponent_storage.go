package ecs

import (
	"iter"
	"reflect"
)

// iComponentStore is the type-erased view of a ComponentStore held by the
// catalog so it can fan out destroy notifications and serve inspectors.
type iComponentStore interface {
	Type() reflect.Type
	Has(e Entity) bool
	GetAny(e Entity) (any, bool)
	EntityDestroyed(e Entity)
	Len() int
	Cap() int
	Entities() iter.Seq[Entity]
}
