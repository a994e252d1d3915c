package coeffdb

import (
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mwittkop/magterm/internal/phase"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS coefficient_sets (
	set_id       TEXT PRIMARY KEY,
	parent_id    TEXT,
	label        TEXT NOT NULL,
	species_json TEXT NOT NULL,
	coeffs       BLOB NOT NULL,
	created_at   TEXT NOT NULL,
	FOREIGN KEY (parent_id) REFERENCES coefficient_sets(set_id)
);

CREATE TABLE IF NOT EXISTS active_set (
	id     INTEGER PRIMARY KEY CHECK (id = 1),
	set_id TEXT NOT NULL,
	FOREIGN KEY (set_id) REFERENCES coefficient_sets(set_id)
);

CREATE TABLE IF NOT EXISTS eval_log (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	set_id      TEXT NOT NULL,
	phase_name  TEXT NOT NULL,
	temperature REAL NOT NULL,
	regime      TEXT,
	tau         REAL,
	outcome     TEXT NOT NULL,
	reason      TEXT,
	created_at  TEXT NOT NULL,
	FOREIGN KEY (set_id) REFERENCES coefficient_sets(set_id)
);
`

// #endregion schema

// #region store-struct
// Store manages versioned coefficient sets in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other packages (e.g. the
// evaluation log).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion db-accessor

// #region save-set
// SaveSet inserts a coefficient set. The first saved set becomes active
// automatically; later sets leave the active pointer alone.
func (s *Store) SaveSet(rec SetRecord) error {
	if len(rec.Species) != len(rec.Coeffs) {
		return fmt.Errorf("set %s: %d species vs %d coefficient rows", rec.SetID, len(rec.Species), len(rec.Coeffs))
	}
	speciesJSON, err := json.Marshal(rec.Species)
	if err != nil {
		return fmt.Errorf("marshal species: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var parentPtr interface{}
	if rec.ParentID != "" {
		parentPtr = rec.ParentID
	}

	_, err = tx.Exec(
		`INSERT INTO coefficient_sets (set_id, parent_id, label, species_json, coeffs, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.SetID, parentPtr, rec.Label, string(speciesJSON), encodeCoeffs(rec.Coeffs),
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert set: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO active_set (id, set_id) VALUES (1, ?)
		 ON CONFLICT(id) DO NOTHING`,
		rec.SetID,
	)
	if err != nil {
		return fmt.Errorf("init active: %w", err)
	}

	return tx.Commit()
}

// #endregion save-set

// #region get-set
// GetSet retrieves a coefficient set by ID.
func (s *Store) GetSet(id string) (SetRecord, error) {
	var rec SetRecord
	var parentID sql.NullString
	var speciesJSON string
	var blob []byte
	var createdStr string

	err := s.db.QueryRow(
		`SELECT set_id, parent_id, label, species_json, coeffs, created_at
		 FROM coefficient_sets WHERE set_id = ?`, id,
	).Scan(&rec.SetID, &parentID, &rec.Label, &speciesJSON, &blob, &createdStr)
	if err != nil {
		return SetRecord{}, fmt.Errorf("get set %s: %w", id, err)
	}

	if parentID.Valid {
		rec.ParentID = parentID.String
	}
	if err := json.Unmarshal([]byte(speciesJSON), &rec.Species); err != nil {
		return SetRecord{}, fmt.Errorf("unmarshal species: %w", err)
	}
	rec.Coeffs, err = decodeCoeffs(blob)
	if err != nil {
		return SetRecord{}, fmt.Errorf("set %s: %w", id, err)
	}
	if len(rec.Coeffs) != len(rec.Species) {
		return SetRecord{}, fmt.Errorf("set %s: %d species vs %d coefficient rows", id, len(rec.Species), len(rec.Coeffs))
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)

	return rec, nil
}

// #endregion get-set

// #region active
// GetActive reads the active coefficient set.
func (s *Store) GetActive() (SetRecord, error) {
	var setID string
	err := s.db.QueryRow(`SELECT set_id FROM active_set WHERE id = 1`).Scan(&setID)
	if err != nil {
		return SetRecord{}, fmt.Errorf("get active: %w", err)
	}
	return s.GetSet(setID)
}

// SetActive points the active marker at an existing set.
func (s *Store) SetActive(id string) error {
	var exists int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM coefficient_sets WHERE set_id = ?`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check set: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("set %s not found", id)
	}

	_, err = s.db.Exec(
		`INSERT INTO active_set (id, set_id) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET set_id = excluded.set_id`, id,
	)
	if err != nil {
		return fmt.Errorf("set active: %w", err)
	}
	return nil
}

// #endregion active

// #region list-sets
// ListSets returns the most recent coefficient sets.
func (s *Store) ListSets(limit int) ([]SetRecord, error) {
	rows, err := s.db.Query(
		`SELECT set_id, parent_id, label, species_json, coeffs, created_at
		 FROM coefficient_sets ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}
	defer rows.Close()

	var records []SetRecord
	for rows.Next() {
		var rec SetRecord
		var parentID sql.NullString
		var speciesJSON string
		var blob []byte
		var createdStr string

		if err := rows.Scan(&rec.SetID, &parentID, &rec.Label, &speciesJSON, &blob, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if parentID.Valid {
			rec.ParentID = parentID.String
		}
		if err := json.Unmarshal([]byte(speciesJSON), &rec.Species); err != nil {
			return nil, fmt.Errorf("unmarshal species: %w", err)
		}
		rec.Coeffs, err = decodeCoeffs(blob)
		if err != nil {
			return nil, fmt.Errorf("set %s: %w", rec.SetID, err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion list-sets

// #region coeff-encoding
// 16 bytes per species: critical temperature then moment, little-endian
// float64.
func encodeCoeffs(coeffs []phase.Coefficients) []byte {
	buf := make([]byte, len(coeffs)*16)
	for i, c := range coeffs {
		binary.LittleEndian.PutUint64(buf[i*16:], math.Float64bits(c.CriticalTemp))
		binary.LittleEndian.PutUint64(buf[i*16+8:], math.Float64bits(c.Moment))
	}
	return buf
}

func decodeCoeffs(b []byte) ([]phase.Coefficients, error) {
	if len(b)%16 != 0 {
		return nil, fmt.Errorf("coefficient blob length %d is not a multiple of 16", len(b))
	}
	coeffs := make([]phase.Coefficients, len(b)/16)
	for i := range coeffs {
		coeffs[i].CriticalTemp = math.Float64frombits(binary.LittleEndian.Uint64(b[i*16:]))
		coeffs[i].Moment = math.Float64frombits(binary.LittleEndian.Uint64(b[i*16+8:]))
	}
	return coeffs, nil
}

// #endregion coeff-encoding
