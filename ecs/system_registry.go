package ecs

import (
	"reflect"
	"time"
)

// SystemRegistryStats provides statistics about system execution.
type SystemRegistryStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides membership and execution statistics for one system.
type SystemStats struct {
	Name           string
	Signature      Signature
	Members        int
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemRecord struct {
	name      string
	typ       reflect.Type
	system    System
	signature Signature
	members   *EntitySet

	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func (r *systemRecord) matches(sig Signature) bool {
	return sig.Contains(r.signature)
}

// SystemRegistry holds one instance per system type together with its
// required signature and membership set. Systems run in registration order.
type SystemRegistry struct {
	records []*systemRecord
	byType  map[reflect.Type]*systemRecord
}

func NewSystemRegistry() *SystemRegistry {
	return &SystemRegistry{
		records: make([]*systemRecord, 0, 16),
		byType:  make(map[reflect.Type]*systemRecord),
	}
}

func systemType(system System) reflect.Type {
	return derefType(reflect.TypeOf(system))
}

// derefType keys *S and S to the same record.
func derefType(t reflect.Type) reflect.Type {
	if t != nil && t.Kind() == reflect.Ptr {
		return t.Elem()
	}
	return t
}

// Register adds system with an empty required signature and an empty
// membership set, and returns that set.
func (r *SystemRegistry) Register(system System) (*EntitySet, error) {
	t := systemType(system)
	if _, ok := r.byType[t]; ok {
		return nil, &SystemError{Op: "register", Type: t, Err: ErrDuplicateSystem}
	}

	rec := &systemRecord{
		name:        t.Name(),
		typ:         t,
		system:      system,
		members:     newEntitySet(),
		minDuration: time.Duration(1<<63 - 1),
	}
	if binder, ok := system.(membershipBinder); ok {
		binder.bindEntities(rec.members)
	}

	r.records = append(r.records, rec)
	r.byType[t] = rec
	return rec.members, nil
}

// SetSignature fixes the required signature of the system type t and
// rebuilds its membership from the given live entities.
func (r *SystemRegistry) SetSignature(t reflect.Type, sig Signature, entities *EntityRegistry) error {
	t = derefType(t)
	rec, ok := r.byType[t]
	if !ok {
		return &SystemError{Op: "set signature", Type: t, Err: ErrUnregisteredSystem}
	}

	rec.signature = sig
	rec.members.clear()
	for e := range entities.Each() {
		// Each only yields live entities, so the lookup cannot fail.
		entitySig, _ := entities.Signature(e)
		if rec.matches(entitySig) {
			rec.members.insert(e)
		}
	}
	return nil
}

// Signature returns the required signature of the system type t.
func (r *SystemRegistry) Signature(t reflect.Type) (Signature, error) {
	t = derefType(t)
	rec, ok := r.byType[t]
	if !ok {
		return 0, &SystemError{Op: "get signature", Type: t, Err: ErrUnregisteredSystem}
	}
	return rec.signature, nil
}

// Members returns the membership set of the system type t.
func (r *SystemRegistry) Members(t reflect.Type) (*EntitySet, error) {
	t = derefType(t)
	rec, ok := r.byType[t]
	if !ok {
		return nil, &SystemError{Op: "members", Type: t, Err: ErrUnregisteredSystem}
	}
	return rec.members, nil
}

// EntitySignatureChanged re-evaluates e against every system. A single
// component change can flip membership in any number of systems.
func (r *SystemRegistry) EntitySignatureChanged(e Entity, sig Signature) {
	for _, rec := range r.records {
		if rec.matches(sig) {
			rec.members.insert(e)
		} else {
			rec.members.erase(e)
		}
	}
}

// EntityDestroyed removes e from every membership set.
func (r *SystemRegistry) EntityDestroyed(e Entity) {
	for _, rec := range r.records {
		rec.members.erase(e)
	}
}

// Update runs every system once, in registration order.
func (r *SystemRegistry) Update(frame *UpdateFrame) {
	for _, rec := range r.records {
		start := time.Now()
		rec.system.Update(frame)
		rec.record(time.Since(start))
	}
}

// Render calls Render on every system that implements Renderer, in
// registration order.
func (r *SystemRegistry) Render(frame *RenderFrame) {
	for _, rec := range r.records {
		if renderer, ok := rec.system.(Renderer); ok {
			renderer.Render(frame)
		}
	}
}

func (r *systemRecord) record(duration time.Duration) {
	r.executionCount++
	r.lastDuration = duration
	r.totalDuration += duration

	if duration < r.minDuration {
		r.minDuration = duration
	}
	if duration > r.maxDuration {
		r.maxDuration = duration
	}
}

// Len returns the number of registered systems.
func (r *SystemRegistry) Len() int {
	return len(r.records)
}

// Stats returns a snapshot of membership and execution statistics.
func (r *SystemRegistry) Stats() *SystemRegistryStats {
	stats := &SystemRegistryStats{
		SystemCount: len(r.records),
		Systems:     make([]SystemStats, len(r.records)),
	}

	var totalExecs int64
	for i, rec := range r.records {
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if rec.executionCount > 0 {
			avgDuration = rec.totalDuration / time.Duration(rec.executionCount)
			minDuration = rec.minDuration
		}

		stats.Systems[i] = SystemStats{
			Name:           rec.name,
			Signature:      rec.signature,
			Members:        rec.members.Len(),
			ExecutionCount: rec.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    rec.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   rec.lastDuration,
			TotalDuration:  rec.totalDuration,
		}
		totalExecs += rec.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
