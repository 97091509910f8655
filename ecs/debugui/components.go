package debugui

import (
	"github.com/plus3/scene2d/ecs"
)

type EntityBrowserComponent struct {
	rows               []EntityRow
	sortColumn         int
	sortAscending      bool
	selectedEntity     ecs.Entity
	filterText         string
	filterSignature    ecs.Signature
	maxEntitiesPerPage int
	currentPage        int
}

type ComponentInspectorComponent struct {
	selectedEntity ecs.Entity
}

type ComponentViewerComponent struct {
	selectedType  *ecs.ComponentTypeID
	sortColumn    int
	sortAscending bool
}

type SystemViewerComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

type QueryDebuggerComponent struct {
	selected map[ecs.ComponentTypeID]bool
}
