package systems

import (
	"github.com/plus3/scene2d/components"
	"github.com/plus3/scene2d/ecs"
	"go.uber.org/zap"
)

// Separation is how far a solid collision pushes overlapping bodies apart
// along the contact normal each frame, in pixels.
const Separation = 2.0

// Contact is one overlapping collider pair found during a frame. Normal
// points from B towards A along the axis of least overlap.
type Contact struct {
	A, B    ecs.Entity
	Normal  components.Vector2
	Trigger bool
}

// CollisionSystem tests every pair of Transform+Collider entities for AABB
// overlap. Solid pairs are nudged apart and any RigidBody velocity along
// the normal is reflected at half strength. Trigger pairs are reported in
// Contacts but not resolved.
type CollisionSystem struct {
	ecs.SystemBase
	contacts []Contact
}

func RegisterCollision(scene *ecs.Scene) (*CollisionSystem, error) {
	s := &CollisionSystem{}
	err := register(scene, s,
		ecs.ComponentType[components.Transform],
		ecs.ComponentType[components.Collider],
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Contacts returns the pairs found by the most recent Update. The slice is
// reused by the next Update.
func (s *CollisionSystem) Contacts() []Contact {
	return s.contacts
}

func (s *CollisionSystem) Update(frame *ecs.UpdateFrame) {
	s.contacts = s.contacts[:0]
	scene := frame.Scene

	transforms, err := ecs.StoreOf[components.Transform](scene.Catalog())
	if err != nil {
		return
	}
	colliders, err := ecs.StoreOf[components.Collider](scene.Catalog())
	if err != nil {
		return
	}

	entities := s.Entities().Sorted()
	for i := 0; i < len(entities); i++ {
		for j := i + 1; j < len(entities); j++ {
			a, b := entities[i], entities[j]
			ta, _ := transforms.Get(a)
			tb, _ := transforms.Get(b)
			ca, _ := colliders.Get(a)
			cb, _ := colliders.Get(b)
			if ta == nil || tb == nil || ca == nil || cb == nil {
				continue
			}

			boundsA := ca.Bounds(ta.Position)
			boundsB := cb.Bounds(tb.Position)
			if !boundsA.Intersects(boundsB) {
				continue
			}

			normal := collisionNormal(boundsA, boundsB)
			trigger := ca.IsTrigger || cb.IsTrigger
			s.contacts = append(s.contacts, Contact{A: a, B: b, Normal: normal, Trigger: trigger})
			if trigger {
				continue
			}

			switch {
			case !ca.IsStatic && !cb.IsStatic:
				ta.Position = ta.Position.Add(normal.Scale(Separation * 0.5))
				tb.Position = tb.Position.Sub(normal.Scale(Separation * 0.5))
			case !ca.IsStatic:
				ta.Position = ta.Position.Add(normal.Scale(Separation))
			case !cb.IsStatic:
				tb.Position = tb.Position.Sub(normal.Scale(Separation))
			}

			if !ca.IsStatic {
				bounce(scene, a, normal)
			}
			if !cb.IsStatic {
				bounce(scene, b, normal)
			}
		}
	}

	if len(s.contacts) > 0 {
		scene.Logger().Debug("collisions resolved", zap.Int("contacts", len(s.contacts)))
	}
}

func bounce(scene *ecs.Scene, e ecs.Entity, normal components.Vector2) {
	rb, err := ecs.GetComponent[components.RigidBody](scene, e)
	if err != nil {
		return
	}
	if normal.X != 0 {
		rb.Velocity.X *= -0.5
	}
	if normal.Y != 0 {
		rb.Velocity.Y *= -0.5
	}
}

func collisionNormal(a, b components.Rect) components.Vector2 {
	diff := a.Center().Sub(b.Center())
	overlapX := (a.Width+b.Width)/2 - abs(diff.X)
	overlapY := (a.Height+b.Height)/2 - abs(diff.Y)

	if overlapX < overlapY {
		return components.Vector2{X: sign(diff.X)}
	}
	return components.Vector2{Y: sign(diff.Y)}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v float32) float32 {
	if v > 0 {
		return 1
	}
	return -1
}
