// Package systems holds the engine's reference gameplay systems. Each
// RegisterX function adds the system to a scene and fixes its signature;
// the standard components must already be registered.
package systems

import (
	"github.com/plus3/scene2d/ecs"
)

// register adds system to scene and requires the component types resolved
// by ids.
func register[S ecs.System](scene *ecs.Scene, system S, ids ...func(*ecs.Scene) (ecs.ComponentTypeID, error)) error {
	var sig ecs.Signature
	for _, id := range ids {
		typeID, err := id(scene)
		if err != nil {
			return err
		}
		sig = sig.Set(typeID)
	}
	if err := scene.RegisterSystem(system); err != nil {
		return err
	}
	return ecs.SetSystemSignature[S](scene, sig)
}
