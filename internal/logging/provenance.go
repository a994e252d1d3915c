package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region log-evaluation

// LogEvaluation writes one row to the eval_log table. The table lives in
// the coefficient store's database; pass its connection.
func LogEvaluation(db *sql.DB, entry Entry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO eval_log (set_id, phase_name, temperature, regime, tau, outcome, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.SetID,
		entry.PhaseName,
		entry.Temperature,
		nullIfEmpty(entry.Regime),
		entry.Tau,
		entry.Outcome,
		nullIfEmpty(entry.Reason),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log evaluation: %w", err)
	}
	return nil
}

// #endregion log-evaluation

// #region list-evaluations

// ListEvaluations returns the most recent provenance rows for a set.
func ListEvaluations(db *sql.DB, setID string, limit int) ([]Entry, error) {
	rows, err := db.Query(
		`SELECT set_id, phase_name, temperature, regime, tau, outcome, reason, created_at
		 FROM eval_log WHERE set_id = ? ORDER BY id DESC LIMIT ?`, setID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var regime, reason sql.NullString
		var createdStr string
		if err := rows.Scan(&e.SetID, &e.PhaseName, &e.Temperature, &regime, &e.Tau, &e.Outcome, &reason, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if regime.Valid {
			e.Regime = regime.String
		}
		if reason.Valid {
			e.Reason = reason.String
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion list-evaluations

// #region helpers

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
