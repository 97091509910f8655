package ecs

// SceneStats is a snapshot of a scene's occupancy.
type SceneStats struct {
	LivingEntities uint32
	Capacity       uint32
	ResourceCount  int
	Components     []ComponentInfo
	Systems        *SystemRegistryStats
}

// CollectStats gathers entity, component, and system statistics.
func (s *Scene) CollectStats() *SceneStats {
	return &SceneStats{
		LivingEntities: s.entities.LivingCount(),
		Capacity:       s.entities.Capacity(),
		ResourceCount:  len(s.resources),
		Components:     s.catalog.Types(),
		Systems:        s.systems.Stats(),
	}
}
