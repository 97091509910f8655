package ecs

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidEntity is returned for the null entity, an id outside the
	// registry's range, or an id that is not currently alive.
	ErrInvalidEntity = errors.New("invalid entity")
	// ErrCapacityExceeded is returned when every entity slot is alive.
	ErrCapacityExceeded = errors.New("entity capacity exceeded")
	// ErrUnregisteredType is returned for component types never registered
	// with the catalog.
	ErrUnregisteredType = errors.New("component type not registered")
	// ErrTooManyTypes is returned when registering more than
	// MaxComponentTypes component types.
	ErrTooManyTypes = errors.New("too many component types")
	// ErrComponentNotFound is returned by get and remove when the entity
	// does not hold the component.
	ErrComponentNotFound = errors.New("component not found")
	// ErrDuplicateComponent is returned when adding a component the entity
	// already holds. The store is left untouched.
	ErrDuplicateComponent = errors.New("component already present")
	// ErrStoreFull is returned when a component store is at capacity.
	ErrStoreFull = errors.New("component store full")
	// ErrDuplicateSystem is returned when a system type is registered twice.
	ErrDuplicateSystem = errors.New("system already registered")
	// ErrUnregisteredSystem is returned when configuring a system type that
	// was never registered.
	ErrUnregisteredSystem = errors.New("system not registered")
)

// EntityError describes a failed entity registry operation.
type EntityError struct {
	Op     string
	Entity Entity
	Err    error
}

func (e *EntityError) Error() string {
	return fmt.Sprintf("ecs: %s entity %d: %v", e.Op, e.Entity, e.Err)
}

func (e *EntityError) Unwrap() error {
	return e.Err
}

// ComponentError describes a failed component operation.
type ComponentError struct {
	Op     string
	Entity Entity
	Type   reflect.Type
	Err    error
}

func (e *ComponentError) Error() string {
	typeName := "<nil>"
	if e.Type != nil {
		typeName = e.Type.String()
	}
	if e.Entity == Null {
		return fmt.Sprintf("ecs: %s %s: %v", e.Op, typeName, e.Err)
	}
	return fmt.Sprintf("ecs: %s %s on entity %d: %v", e.Op, typeName, e.Entity, e.Err)
}

func (e *ComponentError) Unwrap() error {
	return e.Err
}

// SystemError describes a failed system registry operation.
type SystemError struct {
	Op   string
	Type reflect.Type
	Err  error
}

func (e *SystemError) Error() string {
	return fmt.Sprintf("ecs: %s system %s: %v", e.Op, e.Type, e.Err)
}

func (e *SystemError) Unwrap() error {
	return e.Err
}
