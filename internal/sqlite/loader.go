package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// loadAllJSONL reads each table's JSONL file into the records table inside
// one transaction: either every file loads or the database stays empty.
// Lines that are not objects with a string "id" are skipped; unknown fields
// are kept in the stored document.
func loadAllJSONL(db *sql.DB, dataDir string, tables []string) (map[string]int, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO records (tbl, id, seq, doc) VALUES (?, ?, ?, ?)")
	if err != nil {
		return nil, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	counts := make(map[string]int, len(tables))
	for _, table := range tables {
		records, err := readJSONL(jsonlFile(dataDir, table))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", table, err)
		}
		for i, rec := range records {
			id, ok := recordID(rec)
			if !ok {
				continue
			}
			if _, err := stmt.Exec(table, id, i+1, string(rec)); err != nil {
				return nil, fmt.Errorf("loading %s record %s: %w", table, id, err)
			}
			counts[table]++
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing load transaction: %w", err)
	}
	return counts, nil
}

func recordID(rec json.RawMessage) (string, bool) {
	var head struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec, &head); err != nil || head.ID == "" {
		return "", false
	}
	return head.ID, true
}
