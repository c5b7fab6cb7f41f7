// Package unitcache is a persisted, sqlite-backed implementation of the
// "cross-crate variance cache" collaborator spec.md names as out of scope
// (§1, §6): a store of already-solved ItemVariances for items defined
// outside the current compilation unit, keyed by item identifier and the
// unit that published them. It sits beside the core pass — nothing in
// internal/variance imports this package — and is what a driver wires in
// to satisfy variance.ExternalUnits for cross-unit lookups (spec §4.4.1).
package unitcache

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/tamewild/variance/internal/typeir"
)

// Cache is a file-backed store of published ItemVariances. The zero value
// is not usable; construct one with Open.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if necessary) a sqlite database at path and
// ensures its schema exists.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("unitcache: opening %s: %w", path, err)
	}
	c := &Cache{db: db}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

func (c *Cache) migrate() error {
	const schema = `
CREATE TABLE IF NOT EXISTS item_variances (
	unit      TEXT NOT NULL,
	item      TEXT NOT NULL,
	variances TEXT NOT NULL,
	PRIMARY KEY (unit, item)
);`
	_, err := c.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("unitcache: migrating schema: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// record is the JSON-serialized row payload. typeir.Variance marshals as
// its underlying int, which is stable across releases because the
// lattice itself never grows new members.
type record struct {
	SelfParam    *typeir.Variance  `json:"self_param,omitempty"`
	TypeParams   []typeir.Variance `json:"type_params,omitempty"`
	RegionParams []typeir.Variance `json:"region_params,omitempty"`
}

// Put persists the solved variances of item, published by unit, replacing
// any prior entry for the same (unit, item) pair.
func (c *Cache) Put(unit string, item typeir.ItemID, variances typeir.ItemVariances) error {
	payload, err := json.Marshal(record{
		SelfParam:    variances.SelfParam,
		TypeParams:   variances.TypeParams,
		RegionParams: variances.RegionParams,
	})
	if err != nil {
		return fmt.Errorf("unitcache: encoding %q: %w", item, err)
	}
	_, err = c.db.Exec(
		`INSERT INTO item_variances (unit, item, variances) VALUES (?, ?, ?)
		 ON CONFLICT (unit, item) DO UPDATE SET variances = excluded.variances`,
		unit, string(item), string(payload),
	)
	if err != nil {
		return fmt.Errorf("unitcache: writing %q: %w", item, err)
	}
	return nil
}

// Get returns the persisted variances for item published by unit.
func (c *Cache) Get(unit string, item typeir.ItemID) (typeir.ItemVariances, bool, error) {
	var payload string
	err := c.db.QueryRow(
		`SELECT variances FROM item_variances WHERE unit = ? AND item = ?`,
		unit, string(item),
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return typeir.ItemVariances{}, false, nil
	}
	if err != nil {
		return typeir.ItemVariances{}, false, fmt.Errorf("unitcache: reading %q: %w", item, err)
	}

	var rec record
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return typeir.ItemVariances{}, false, fmt.Errorf("unitcache: decoding %q: %w", item, err)
	}
	return typeir.ItemVariances{
		SelfParam:    rec.SelfParam,
		TypeParams:   rec.TypeParams,
		RegionParams: rec.RegionParams,
	}, true, nil
}

// UnitView scopes a Cache to a single publishing unit, implementing
// variance.ExternalUnits. A lookup failure (including a query error) is
// reported as "not found": spec §9 treats every transitive dependency's
// variances as a precondition the caller has already ensured, so a miss
// here signals that precondition was violated, not a recoverable error.
type UnitView struct {
	cache *Cache
	unit  string
}

// View returns an ExternalUnits scoped to unit.
func (c *Cache) View(unit string) *UnitView {
	return &UnitView{cache: c, unit: unit}
}

// Lookup implements variance.ExternalUnits.
func (v *UnitView) Lookup(item typeir.ItemID) (typeir.ItemVariances, bool) {
	iv, ok, err := v.cache.Get(v.unit, item)
	if err != nil {
		return typeir.ItemVariances{}, false
	}
	return iv, ok
}
