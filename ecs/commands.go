package ecs

import "errors"

// Commands buffers structural changes requested during system execution.
// Scene.Update flushes the buffer after every system has run, so systems
// can safely request removals from the stores they are iterating.
type Commands struct {
	destroys []Entity
	removes  []entityCommand
	adds     []entityCommand
	defers   []func()
}

type entityCommand struct {
	entity Entity
	apply  func(s *Scene) error
}

func newCommands() *Commands {
	return &Commands{}
}

// Destroy queues destruction of e.
func (c *Commands) Destroy(e Entity) {
	c.destroys = append(c.destroys, e)
}

// Defer queues fn to run after every other queued command.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// QueueAdd queues adding value as e's T component.
func QueueAdd[T any](c *Commands, e Entity, value T) {
	c.adds = append(c.adds, entityCommand{
		entity: e,
		apply: func(s *Scene) error {
			return AddComponent(s, e, value)
		},
	})
}

// QueueRemove queues removal of e's T component.
func QueueRemove[T any](c *Commands, e Entity) {
	c.removes = append(c.removes, entityCommand{
		entity: e,
		apply: func(s *Scene) error {
			return RemoveComponent[T](s, e)
		},
	})
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.destroys) + len(c.removes) + len(c.adds) + len(c.defers)
}

// Flush applies queued commands to scene in the order destroys, removes,
// adds, defers, and resets the buffer. Adds and removes that target an
// entity destroyed in the same flush are dropped. Every failure is
// returned, joined.
func (c *Commands) Flush(scene *Scene) error {
	var errs []error
	destroyed := make(map[Entity]bool, len(c.destroys))

	for _, e := range c.destroys {
		if destroyed[e] {
			continue
		}
		if err := scene.DestroyEntity(e); err != nil {
			errs = append(errs, err)
		}
		destroyed[e] = true
	}

	for _, cmd := range c.removes {
		if destroyed[cmd.entity] {
			continue
		}
		if err := cmd.apply(scene); err != nil {
			errs = append(errs, err)
		}
	}

	for _, cmd := range c.adds {
		if destroyed[cmd.entity] {
			continue
		}
		if err := cmd.apply(scene); err != nil {
			errs = append(errs, err)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.destroys = c.destroys[:0]
	c.removes = c.removes[:0]
	c.adds = c.adds[:0]
	c.defers = c.defers[:0]

	return errors.Join(errs...)
}
