package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stickering "github.com/SeamusWaldron/gocube_stickering"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func crossMask(t *testing.T) stickering.OrbitsMask {
	t.Helper()
	m, err := stickering.Build(stickering.Custom{}.
		Set(stickering.Solved, "DF", "DR", "DB", "DL", "D").
		Set(stickering.Dim, "F", "R", "B", "L"))
	require.NoError(t, err)
	return m.Orbits()
}

func TestMigrations(t *testing.T) {
	db := openTestDB(t)

	v, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, LatestVersion(), v)

	// applying again is a no-op
	require.NoError(t, db.MigrateUp())
	v, err = db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, LatestVersion(), v)
}

func TestCreateAndGet(t *testing.T) {
	repo := NewPresetRepository(openTestDB(t))

	p, err := NewPreset("cross", crossMask(t), "", "R U R'", "docs/cross.md")
	require.NoError(t, err)
	assert.Equal(t, FormatCompact, p.MaskFormat)
	assert.Nil(t, p.SetupAlg)

	id, err := repo.Create(p)
	require.NoError(t, err)
	assert.Len(t, id, 36)

	got, err := repo.GetByName("cross")
	require.NoError(t, err)
	assert.Equal(t, id, got.PresetID)
	assert.Equal(t, p.Mask, got.Mask)
	require.NotNil(t, got.Alg)
	assert.Equal(t, "R U R'", *got.Alg)
	assert.Nil(t, got.SetupAlg)
	assert.False(t, got.CreatedAt.IsZero())

	om, err := got.Orbits()
	require.NoError(t, err)
	assert.True(t, crossMask(t).Equal(om))
}

func TestCreateDuplicate(t *testing.T) {
	repo := NewPresetRepository(openTestDB(t))
	p, err := NewPreset("cross", crossMask(t), "", "", "")
	require.NoError(t, err)

	_, err = repo.Create(p)
	require.NoError(t, err)
	_, err = repo.Create(p)
	assert.ErrorIs(t, err, ErrPresetExists)

	_, err = repo.Create(Preset{Mask: p.Mask})
	assert.Error(t, err)
}

func TestUpsertKeepsID(t *testing.T) {
	repo := NewPresetRepository(openTestDB(t))

	p, err := NewPreset("oll", crossMask(t), "", "", "a.md")
	require.NoError(t, err)
	first, err := repo.Upsert(p)
	require.NoError(t, err)

	p.Alg = nullable("F R U R' U' F'")
	second, err := repo.Upsert(p)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	got, err := repo.GetByName("oll")
	require.NoError(t, err)
	require.NotNil(t, got.Alg)
	assert.Equal(t, "F R U R' U' F'", *got.Alg)

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestUpsertAllAndList(t *testing.T) {
	repo := NewPresetRepository(openTestDB(t))

	var presets []Preset
	for _, name := range []string{"c", "a", "b"} {
		p, err := NewPreset(name, crossMask(t), "", "", "docs/x.md")
		require.NoError(t, err)
		presets = append(presets, p)
	}
	require.NoError(t, repo.UpsertAll(presets))

	all, err := repo.List(0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].Name)
	assert.Equal(t, "c", all[2].Name)

	limited, err := repo.List(2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	bySource, err := repo.ListBySource("docs/x.md")
	require.NoError(t, err)
	assert.Len(t, bySource, 3)
}

func TestUpsertAllRollsBack(t *testing.T) {
	repo := NewPresetRepository(openTestDB(t))

	good, err := NewPreset("good", crossMask(t), "", "", "")
	require.NoError(t, err)
	err = repo.UpsertAll([]Preset{good, {Mask: good.Mask}})
	require.Error(t, err)

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestDelete(t *testing.T) {
	repo := NewPresetRepository(openTestDB(t))
	p, err := NewPreset("gone", crossMask(t), "", "", "")
	require.NoError(t, err)
	_, err = repo.Create(p)
	require.NoError(t, err)

	require.NoError(t, repo.Delete("gone"))
	_, err = repo.GetByName("gone")
	assert.ErrorIs(t, err, ErrPresetNotFound)
	assert.ErrorIs(t, repo.Delete("gone"), ErrPresetNotFound)
}

func TestTwistedMaskStoredAsOrbits(t *testing.T) {
	repo := NewPresetRepository(openTestDB(t))

	m := stickering.MustBuild(stickering.Custom{}.Set(stickering.Permuted, "UFR"))
	om, err := stickering.ApplySetup(m, "R")
	require.NoError(t, err)

	p, err := NewPreset("twisted", om, "R", "", "")
	require.NoError(t, err)
	assert.Equal(t, FormatOrbits, p.MaskFormat)
	assert.False(t, p.Compact())
	assert.Contains(t, p.Mask, `"orbits"`)

	_, err = repo.Create(p)
	require.NoError(t, err)

	got, err := repo.GetByName("twisted")
	require.NoError(t, err)
	back, err := got.Orbits()
	require.NoError(t, err)
	assert.True(t, om.Equal(back))
}

func TestOrbitsRejectsBadMask(t *testing.T) {
	p := Preset{Name: "bad", Mask: "EDGES:nope", MaskFormat: FormatCompact}
	_, err := p.Orbits()
	assert.ErrorIs(t, err, stickering.ErrInvalidMask)

	p = Preset{Name: "bad", Mask: `{"orbits":{}}`, MaskFormat: FormatOrbits}
	_, err = p.Orbits()
	assert.ErrorIs(t, err, stickering.ErrInvalidMask)

	p = Preset{Name: "bad", Mask: "", MaskFormat: "xml"}
	_, err = p.Orbits()
	assert.Error(t, err)
}
