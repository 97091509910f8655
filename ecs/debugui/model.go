package debugui

import (
	"slices"
	"strconv"
	"strings"

	"github.com/plus3/scene2d/ecs"
)

// EntityRow is one line of the entity browser.
type EntityRow struct {
	ID             ecs.Entity
	Name           string
	Signature      ecs.Signature
	ComponentTypes []string
}

// collectEntities snapshots every live entity of scene.
func collectEntities(scene *ecs.Scene) []EntityRow {
	types := scene.Catalog().Types()
	rows := make([]EntityRow, 0, scene.LivingCount())

	for _, e := range scene.LivingEntities() {
		sig, err := scene.Signature(e)
		if err != nil {
			continue
		}
		names := make([]string, 0, sig.Count())
		for _, info := range types {
			if sig.Has(info.ID) {
				names = append(names, info.Type.String())
			}
		}
		rows = append(rows, EntityRow{
			ID:             e,
			Name:           scene.EntityName(e),
			Signature:      sig,
			ComponentTypes: names,
		})
	}
	return rows
}

// sortEntities orders rows by column: 0 id, 1 name, 2 signature,
// 3 component list, 4 component count.
func sortEntities(rows []EntityRow, column int, ascending bool) {
	slices.SortStableFunc(rows, func(a, b EntityRow) int {
		var c int
		switch column {
		case 1:
			c = strings.Compare(a.Name, b.Name)
		case 2:
			c = compare(a.Signature, b.Signature)
		case 3:
			c = strings.Compare(strings.Join(a.ComponentTypes, ","), strings.Join(b.ComponentTypes, ","))
		case 4:
			c = len(a.ComponentTypes) - len(b.ComponentTypes)
		default:
			c = compare(a.ID, b.ID)
		}
		if !ascending {
			return -c
		}
		return c
	})
}

// filterEntities keeps rows whose id, name or component list contains text
// (case-insensitive) and whose signature contains require.
func filterEntities(rows []EntityRow, text string, require ecs.Signature) []EntityRow {
	if text == "" && require.IsEmpty() {
		return rows
	}

	filtered := make([]EntityRow, 0, len(rows))
	needle := strings.ToLower(text)
	for _, row := range rows {
		if !row.Signature.Contains(require) {
			continue
		}
		if needle != "" {
			id := strconv.FormatUint(uint64(row.ID), 10)
			name := strings.ToLower(row.Name)
			comps := strings.ToLower(strings.Join(row.ComponentTypes, " "))
			if !strings.Contains(id, needle) &&
				!strings.Contains(name, needle) &&
				!strings.Contains(comps, needle) {
				continue
			}
		}
		filtered = append(filtered, row)
	}
	return filtered
}

// SystemMatch reports how a query signature relates to one system.
type SystemMatch struct {
	Name      string
	Signature ecs.Signature
	Members   int
	// Covers is true when every member of the system would also match the
	// query.
	Covers bool
}

// matchSystems lists every system with whether its membership is a subset
// of entities matching query.
func matchSystems(scene *ecs.Scene, query ecs.Signature) []SystemMatch {
	stats := scene.Systems().Stats()
	out := make([]SystemMatch, len(stats.Systems))
	for i, sys := range stats.Systems {
		out[i] = SystemMatch{
			Name:      sys.Name,
			Signature: sys.Signature,
			Members:   sys.Members,
			Covers:    sys.Signature.Contains(query),
		}
	}
	return out
}

func compare[T ~uint32](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
