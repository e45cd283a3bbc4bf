package storage

import (
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	stickering "github.com/SeamusWaldron/gocube_stickering"
)

var (
	ErrPresetNotFound = errors.New("storage: preset not found")
	ErrPresetExists   = errors.New("storage: preset already exists")
)

// Mask formats stored in presets.mask_format.
const (
	FormatCompact = "compact" // EDGES:...,CORNERS:...,CENTERS:...
	FormatOrbits  = "orbits"  // JSON facelet form, for twisted setups
)

// Preset is a named stickering as stored in the database.
type Preset struct {
	PresetID   string
	Name       string
	Mask       string
	MaskFormat string
	SetupAlg   *string
	Alg        *string
	Source     *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// EncodeMask picks the storage form of a facelet mask: the compact string
// when one exists, the JSON facelet form otherwise.
func EncodeMask(om stickering.OrbitsMask) (mask, format string, err error) {
	compact, err := om.Compact()
	if err == nil {
		return compact.String(), FormatCompact, nil
	}
	if !errors.Is(err, stickering.ErrNotCompact) {
		return "", "", err
	}

	data, err := json.Marshal(om)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to encode mask")
	}
	return string(data), FormatOrbits, nil
}

// Orbits decodes the stored mask into its facelet form.
func (p *Preset) Orbits() (stickering.OrbitsMask, error) {
	switch p.MaskFormat {
	case FormatCompact, "":
		m, err := stickering.ParseMask(p.Mask)
		if err != nil {
			return stickering.OrbitsMask{}, err
		}
		return m.Orbits(), nil
	case FormatOrbits:
		var om stickering.OrbitsMask
		if err := json.Unmarshal([]byte(p.Mask), &om); err != nil {
			return stickering.OrbitsMask{}, errors.Wrapf(err, "preset %s: failed to decode mask", p.Name)
		}
		if err := om.Validate(); err != nil {
			return stickering.OrbitsMask{}, errors.Wrapf(err, "preset %s", p.Name)
		}
		return om, nil
	default:
		return stickering.OrbitsMask{}, errors.Newf("preset %s: unknown mask format %q", p.Name, p.MaskFormat)
	}
}

// Compact reports whether the mask is stored as a serialized string.
func (p *Preset) Compact() bool {
	return p.MaskFormat == FormatCompact || p.MaskFormat == ""
}

// PresetRepository provides CRUD operations for presets.
type PresetRepository struct {
	db *DB
}

// NewPresetRepository creates a new preset repository.
func NewPresetRepository(db *DB) *PresetRepository {
	return &PresetRepository{db: db}
}

// queryRower is satisfied by *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Create stores a new preset and returns its ID. The name must be unused.
func (r *PresetRepository) Create(p Preset) (string, error) {
	if p.Name == "" {
		return "", errors.New("preset name must not be empty")
	}
	if p.MaskFormat == "" {
		p.MaskFormat = FormatCompact
	}

	id := uuid.New().String()
	now := time.Now().UTC().Format(time.RFC3339)

	_, err := r.db.Exec(`
		INSERT INTO presets (preset_id, name, mask, mask_format, setup_alg, alg, source, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, p.Name, p.Mask, p.MaskFormat, p.SetupAlg, p.Alg, p.Source, now, now)

	if isUniqueViolation(err) {
		return "", errors.WithHint(errors.Wrapf(ErrPresetExists, "%q", p.Name),
			"delete it first or re-import to update it")
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to create preset")
	}

	return id, nil
}

// Upsert stores the preset, replacing the mask, algs and source of an
// existing preset with the same name. The preset ID of an existing row is
// kept and returned.
func (r *PresetRepository) Upsert(p Preset) (string, error) {
	return upsert(r.db, p)
}

// UpsertAll upserts presets in a single transaction.
func (r *PresetRepository) UpsertAll(presets []Preset) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for _, p := range presets {
			if _, err := upsert(tx, p); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsert(q queryRower, p Preset) (string, error) {
	if p.Name == "" {
		return "", errors.New("preset name must not be empty")
	}
	if p.MaskFormat == "" {
		p.MaskFormat = FormatCompact
	}

	now := time.Now().UTC().Format(time.RFC3339)
	var id string
	err := q.QueryRow(`
		INSERT INTO presets (preset_id, name, mask, mask_format, setup_alg, alg, source, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			mask = excluded.mask,
			mask_format = excluded.mask_format,
			setup_alg = excluded.setup_alg,
			alg = excluded.alg,
			source = excluded.source,
			updated_at = excluded.updated_at
		RETURNING preset_id
	`, uuid.New().String(), p.Name, p.Mask, p.MaskFormat, p.SetupAlg, p.Alg, p.Source, now, now).Scan(&id)
	if err != nil {
		return "", errors.Wrapf(err, "failed to upsert preset %s", p.Name)
	}
	return id, nil
}

const presetColumns = `preset_id, name, mask, mask_format, setup_alg, alg, source, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanPreset(s scanner) (*Preset, error) {
	var p Preset
	var createdAt, updatedAt string
	err := s.Scan(&p.PresetID, &p.Name, &p.Mask, &p.MaskFormat, &p.SetupAlg, &p.Alg, &p.Source, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	p.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse created_at")
	}
	p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse updated_at")
	}
	return &p, nil
}

// GetByName retrieves a preset by name.
func (r *PresetRepository) GetByName(name string) (*Preset, error) {
	row := r.db.QueryRow(`SELECT `+presetColumns+` FROM presets WHERE name = ?`, name)
	p, err := scanPreset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrapf(ErrPresetNotFound, "%q", name)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get preset")
	}
	return p, nil
}

// List retrieves presets ordered by name. A limit of 0 or less lists all.
func (r *PresetRepository) List(limit int) ([]Preset, error) {
	query := `SELECT ` + presetColumns + ` FROM presets ORDER BY name`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list presets")
	}
	defer rows.Close()

	var presets []Preset
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan preset")
		}
		presets = append(presets, *p)
	}

	return presets, rows.Err()
}

// ListBySource retrieves the presets imported from one file.
func (r *PresetRepository) ListBySource(source string) ([]Preset, error) {
	rows, err := r.db.Query(`SELECT `+presetColumns+` FROM presets WHERE source = ? ORDER BY name`, source)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list presets")
	}
	defer rows.Close()

	var presets []Preset
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan preset")
		}
		presets = append(presets, *p)
	}

	return presets, rows.Err()
}

// Delete removes a preset by name.
func (r *PresetRepository) Delete(name string) error {
	result, err := r.db.Exec("DELETE FROM presets WHERE name = ?", name)
	if err != nil {
		return errors.Wrap(err, "failed to delete preset")
	}
	n, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to delete preset")
	}
	if n == 0 {
		return errors.Wrapf(ErrPresetNotFound, "%q", name)
	}
	return nil
}

// Count returns the number of stored presets.
func (r *PresetRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM presets").Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count presets")
	}
	return count, nil
}

// NewPreset builds a preset record for a facelet mask.
func NewPreset(name string, om stickering.OrbitsMask, setup, alg, source string) (Preset, error) {
	mask, format, err := EncodeMask(om)
	if err != nil {
		return Preset{}, err
	}
	return Preset{
		Name:       name,
		Mask:       mask,
		MaskFormat: format,
		SetupAlg:   nullable(setup),
		Alg:        nullable(alg),
		Source:     nullable(source),
	}, nil
}
