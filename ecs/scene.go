package ecs

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Name is the built-in component used for editor-facing entity names. It is
// registered by NewScene before any other type.
type Name struct {
	Value string
}

// Scene owns one EntityRegistry, one ComponentCatalog and one
// SystemRegistry, and sequences every mutation across them so that
// signatures and system membership are correct after each call.
//
// A Scene is not safe for concurrent use.
type Scene struct {
	entities  *EntityRegistry
	catalog   *ComponentCatalog
	systems   *SystemRegistry
	resources map[reflect.Type]any
	log       *zap.Logger
}

type sceneOptions struct {
	maxEntities   uint32
	maxComponents int
	logger        *zap.Logger
}

// Option configures a Scene at construction.
type Option func(*sceneOptions)

// WithMaxEntities sets how many entities may be alive at once.
func WithMaxEntities(n uint32) Option {
	return func(o *sceneOptions) {
		o.maxEntities = n
	}
}

// WithMaxComponents sets the per-type component capacity.
func WithMaxComponents(n int) Option {
	return func(o *sceneOptions) {
		o.maxComponents = n
	}
}

// WithLogger sets the logger used for lifecycle and capacity events.
func WithLogger(log *zap.Logger) Option {
	return func(o *sceneOptions) {
		if log != nil {
			o.logger = log
		}
	}
}

// NewScene creates an empty scene.
func NewScene(opts ...Option) *Scene {
	o := sceneOptions{
		maxEntities:   DefaultMaxEntities,
		maxComponents: DefaultMaxComponents,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Scene{
		entities:  NewEntityRegistry(o.maxEntities),
		catalog:   NewComponentCatalog(o.maxComponents),
		systems:   NewSystemRegistry(),
		resources: make(map[reflect.Type]any),
		log:       o.logger,
	}
	// The catalog is empty, so registering Name cannot fail.
	_, _ = RegisterType[Name](s.catalog)
	return s
}

// CreateEntity issues a new entity with an empty signature.
func (s *Scene) CreateEntity() (Entity, error) {
	e, err := s.entities.Create()
	if err != nil {
		s.log.Warn("entity capacity exhausted",
			zap.Uint32("capacity", s.entities.Capacity()))
		return Null, err
	}
	// Systems with an empty required signature match every entity.
	s.systems.EntitySignatureChanged(e, 0)
	s.log.Debug("entity created", zap.Uint32("entity", uint32(e)))
	return e, nil
}

// DestroyEntity drops every component of e, removes it from every system,
// and only then frees the id.
func (s *Scene) DestroyEntity(e Entity) error {
	if !s.entities.Alive(e) {
		return &EntityError{Op: "destroy", Entity: e, Err: ErrInvalidEntity}
	}

	s.catalog.EntityDestroyed(e)
	s.systems.EntityDestroyed(e)
	if err := s.entities.Destroy(e); err != nil {
		return err
	}

	s.log.Debug("entity destroyed", zap.Uint32("entity", uint32(e)))
	return nil
}

// RegisterComponent registers T with the scene's catalog.
func RegisterComponent[T any](s *Scene) (ComponentTypeID, error) {
	return RegisterType[T](s.catalog)
}

// ComponentType returns the type ID assigned to T.
func ComponentType[T any](s *Scene) (ComponentTypeID, error) {
	return TypeID[T](s.catalog)
}

// AddComponent stores value as e's T component, sets the T bit in e's
// signature, and then re-evaluates e against every system.
func AddComponent[T any](s *Scene, e Entity, value T) error {
	sig, err := s.entities.Signature(e)
	if err != nil {
		return err
	}
	id, err := TypeID[T](s.catalog)
	if err != nil {
		return err
	}
	if err := Add(s.catalog, e, value); err != nil {
		if errors.Is(err, ErrStoreFull) {
			s.log.Warn("component store full",
				zap.Uint32("entity", uint32(e)),
				zap.Stringer("type", reflect.TypeFor[T]()))
		}
		return err
	}

	sig = sig.Set(id)
	// e is known to be alive, so this cannot fail.
	_ = s.entities.SetSignature(e, sig)
	s.systems.EntitySignatureChanged(e, sig)
	return nil
}

// RemoveComponent drops e's T component, clears the T bit in e's
// signature, and then re-evaluates e against every system.
func RemoveComponent[T any](s *Scene, e Entity) error {
	sig, err := s.entities.Signature(e)
	if err != nil {
		return err
	}
	id, err := TypeID[T](s.catalog)
	if err != nil {
		return err
	}
	if err := Remove[T](s.catalog, e); err != nil {
		return err
	}

	sig = sig.Clear(id)
	_ = s.entities.SetSignature(e, sig)
	s.systems.EntitySignatureChanged(e, sig)
	return nil
}

// GetComponent returns a pointer to e's T component. The pointer is valid
// until the next add or remove of a T component on any entity.
func GetComponent[T any](s *Scene, e Entity) (*T, error) {
	if !s.entities.Alive(e) {
		return nil, &EntityError{Op: "get component", Entity: e, Err: ErrInvalidEntity}
	}
	return Get[T](s.catalog, e)
}

// HasComponent reports whether e is alive and holds a T component.
func HasComponent[T any](s *Scene, e Entity) bool {
	return s.entities.Alive(e) && Has[T](s.catalog, e)
}

// RegisterSystem adds system to the scene. Its required signature is empty
// until SetSystemSignature is called, so it initially holds every live
// entity. Register systems by pointer so an embedded
// SystemBase can be bound.
func (s *Scene) RegisterSystem(system System) error {
	set, err := s.systems.Register(system)
	if err != nil {
		return err
	}
	for e := range s.entities.Each() {
		set.insert(e)
	}
	return nil
}

// SetSystemSignature fixes the components required by the system of type
// S and immediately rebuilds its membership from every live entity.
func SetSystemSignature[S System](s *Scene, sig Signature) error {
	return s.systems.SetSignature(reflect.TypeFor[S](), sig, s.entities)
}

// SystemSignature returns the required signature of the system of type S.
func SystemSignature[S System](s *Scene) (Signature, error) {
	return s.systems.Signature(reflect.TypeFor[S]())
}

// SystemMembers returns the membership set of the system of type S.
func SystemMembers[S System](s *Scene) (*EntitySet, error) {
	return s.systems.Members(reflect.TypeFor[S]())
}

// Update runs every system with a fresh frame in registration order and
// then flushes the frame's command buffer.
func (s *Scene) Update(dt float64) error {
	frame := newUpdateFrame(dt, s)
	s.systems.Update(frame)
	return frame.Commands.Flush(s)
}

// Render calls every system implementing Renderer with target.
func (s *Scene) Render(target any) {
	s.systems.Render(&RenderFrame{Scene: s, Target: target})
}

// Run calls Update at the given interval until ctx is cancelled. Update
// errors are logged and do not stop the loop.
func (s *Scene) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			if err := s.Update(dt); err != nil {
				s.log.Warn("frame commands failed", zap.Error(err))
			}
		}
	}
}

// Signature returns e's current signature.
func (s *Scene) Signature(e Entity) (Signature, error) {
	return s.entities.Signature(e)
}

func (s *Scene) Alive(e Entity) bool {
	return s.entities.Alive(e)
}

func (s *Scene) LivingCount() uint32 {
	return s.entities.LivingCount()
}

func (s *Scene) Capacity() uint32 {
	return s.entities.Capacity()
}

// LivingEntities returns every live entity in ascending id order,
// including entities that hold no components.
func (s *Scene) LivingEntities() []Entity {
	out := make([]Entity, 0, s.entities.LivingCount())
	for e := range s.entities.Each() {
		out = append(out, e)
	}
	return out
}

// EntitiesWith returns every live entity whose signature contains sig.
func (s *Scene) EntitiesWith(sig Signature) []Entity {
	var out []Entity
	for e := range s.entities.Each() {
		entitySig, _ := s.entities.Signature(e)
		if entitySig.Contains(sig) {
			out = append(out, e)
		}
	}
	return out
}

// SetEntityName sets e's Name component, adding it if needed.
func (s *Scene) SetEntityName(e Entity, name string) error {
	if n, err := GetComponent[Name](s, e); err == nil {
		n.Value = name
		return nil
	}
	return AddComponent(s, e, Name{Value: name})
}

// EntityName returns e's Name, or "Entity <id>" when it has none.
func (s *Scene) EntityName(e Entity) string {
	if n, err := GetComponent[Name](s, e); err == nil {
		return n.Value
	}
	return "Entity " + strconv.FormatUint(uint64(e), 10)
}

// Catalog exposes the scene's component catalog for reflective callers.
func (s *Scene) Catalog() *ComponentCatalog {
	return s.catalog
}

// Systems exposes the scene's system registry for inspection.
func (s *Scene) Systems() *SystemRegistry {
	return s.systems
}

func (s *Scene) Logger() *zap.Logger {
	return s.log
}
