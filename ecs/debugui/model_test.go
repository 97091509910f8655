package debugui

import (
	"reflect"
	"testing"

	"github.com/plus3/scene2d/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPosition struct {
	X, Y float32
}

type testHealth struct {
	Current int
	Label   string
	hidden  bool
	OnDeath func()
	Owner   *testPosition
}

type testSystem struct {
	ecs.SystemBase
}

func (s *testSystem) Update(*ecs.UpdateFrame) {}

func newTestScene(t *testing.T) (*ecs.Scene, ecs.Entity, ecs.Entity) {
	t.Helper()
	scene := ecs.NewScene()
	_, err := ecs.RegisterComponent[testPosition](scene)
	require.NoError(t, err)
	_, err = ecs.RegisterComponent[testHealth](scene)
	require.NoError(t, err)

	a, _ := scene.CreateEntity()
	require.NoError(t, ecs.AddComponent(scene, a, testPosition{}))
	require.NoError(t, scene.SetEntityName(a, "player"))

	b, _ := scene.CreateEntity()
	require.NoError(t, ecs.AddComponent(scene, b, testPosition{}))
	require.NoError(t, ecs.AddComponent(scene, b, testHealth{Current: 3}))
	return scene, a, b
}

func TestCollectEntities(t *testing.T) {
	scene, a, b := newTestScene(t)
	bare, _ := scene.CreateEntity()

	rows := collectEntities(scene)
	require.Len(t, rows, 3)

	assert.Equal(t, a, rows[0].ID)
	assert.Equal(t, "player", rows[0].Name)
	assert.Equal(t, []string{"ecs.Name", "debugui.testPosition"}, rows[0].ComponentTypes)

	assert.Equal(t, b, rows[1].ID)
	assert.Equal(t, "Entity 2", rows[1].Name)
	assert.Equal(t, 2, rows[1].Signature.Count())

	assert.Equal(t, bare, rows[2].ID)
	assert.Empty(t, rows[2].ComponentTypes)
}

func TestFilterAndSortEntities(t *testing.T) {
	scene, a, b := newTestScene(t)
	rows := collectEntities(scene)

	healthID, err := ecs.ComponentType[testHealth](scene)
	require.NoError(t, err)

	filtered := filterEntities(rows, "", ecs.SignatureOf(healthID))
	require.Len(t, filtered, 1)
	assert.Equal(t, b, filtered[0].ID)

	filtered = filterEntities(rows, "PLAY", 0)
	require.Len(t, filtered, 1)
	assert.Equal(t, a, filtered[0].ID)

	filtered = filterEntities(rows, "testhealth", 0)
	require.Len(t, filtered, 1)

	assert.Len(t, filterEntities(rows, "", 0), 2)

	sortEntities(rows, 0, false)
	assert.Equal(t, []ecs.Entity{b, a}, []ecs.Entity{rows[0].ID, rows[1].ID})
	sortEntities(rows, 2, true)
	assert.Equal(t, a, rows[0].ID, "lower signature first")
	sortEntities(rows, 1, true)
	assert.Equal(t, "Entity 2", rows[0].Name)
}

func TestMatchSystems(t *testing.T) {
	scene, _, _ := newTestScene(t)
	require.NoError(t, scene.RegisterSystem(&testSystem{}))
	posID, _ := ecs.ComponentType[testPosition](scene)
	healthID, _ := ecs.ComponentType[testHealth](scene)
	require.NoError(t, ecs.SetSystemSignature[*testSystem](scene, ecs.SignatureOf(posID, healthID)))

	matches := matchSystems(scene, ecs.SignatureOf(posID))
	require.Len(t, matches, 1)
	assert.Equal(t, "testSystem", matches[0].Name)
	assert.Equal(t, 1, matches[0].Members)
	assert.True(t, matches[0].Covers)

	nameID, _ := ecs.ComponentType[ecs.Name](scene)
	assert.False(t, matchSystems(scene, ecs.SignatureOf(nameID))[0].Covers)
}

func TestQueryDebuggerSignature(t *testing.T) {
	qd := NewQueryDebuggerComponent()
	assert.True(t, qd.Signature().IsEmpty())
	qd.selected[1] = true
	qd.selected[4] = true
	qd.selected[2] = false
	assert.Equal(t, ecs.SignatureOf(1, 4), qd.Signature())
}

func TestReflectionCache(t *testing.T) {
	rc := NewReflectionCache()
	fields := rc.GetFields(reflect.TypeFor[testHealth]())

	var names []string
	for _, f := range fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"Current", "Label", "Owner"}, names)
	assert.True(t, fields[2].IsPointer)
	assert.Equal(t, reflect.TypeFor[testPosition](), fields[2].Type)

	assert.Nil(t, rc.GetFields(reflect.TypeFor[int]()))
	assert.Equal(t, fields, rc.GetFields(reflect.TypeFor[testHealth]()))
}

func TestSetValueThroughCatalog(t *testing.T) {
	scene, _, b := newTestScene(t)
	healthID, _ := ecs.ComponentType[testHealth](scene)

	component, ok := scene.Catalog().GetAny(b, healthID)
	require.True(t, ok)
	val := reflect.ValueOf(component).Elem()

	assert.True(t, setValue(val.Field(0), int64(42)))
	assert.True(t, setValue(val.Field(1), "boss"))
	assert.False(t, setValue(val.Field(1), int64(1)), "kind mismatch is ignored")

	h, err := ecs.GetComponent[testHealth](scene, b)
	require.NoError(t, err)
	assert.Equal(t, 42, h.Current)
	assert.Equal(t, "boss", h.Label)

	var small struct{ V int8 }
	assert.False(t, setValue(reflect.ValueOf(&small).Elem().Field(0), int64(500)))
	assert.False(t, setValue(reflect.ValueOf(small).Field(0), int64(1)), "unaddressable values are never written")
}

func TestSortComponentInfos(t *testing.T) {
	scene, _, _ := newTestScene(t)
	infos := scene.Catalog().Types()

	sortComponentInfos(infos, 2, false)
	assert.Equal(t, "debugui.testPosition", infos[0].Type.String())
	sortComponentInfos(infos, 0, true)
	assert.Equal(t, ecs.ComponentTypeID(0), infos[0].ID)
}
