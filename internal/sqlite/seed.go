package sqlite

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

//go:embed seed/*.jsonl
var seedFS embed.FS

// seedMissingJSONL creates each table's JSONL file that does not exist yet.
// Tables with embedded demo data get it; the rest start empty. Existing
// files are never touched, so seeding happens once per data dir. Returns the
// tables that were created.
func seedMissingJSONL(dataDir string, tables []string) ([]string, error) {
	var created []string
	for _, table := range tables {
		dst := jsonlFile(dataDir, table)
		if _, err := os.Stat(dst); err == nil {
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return created, fmt.Errorf("checking %s: %w", dst, err)
		}

		data, err := seedFS.ReadFile(path.Join("seed", table+".jsonl"))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return created, fmt.Errorf("reading seed for %s: %w", table, err)
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return created, fmt.Errorf("seeding %s: %w", table, err)
		}
		created = append(created, table)
	}
	return created, nil
}
