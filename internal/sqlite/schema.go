package sqlite

// Every feature's records share one table keyed by (tbl, id). seq keeps the
// insertion order that Fetch returns; doc holds the entity as JSON.
const createRecords = `CREATE TABLE records (
    tbl TEXT NOT NULL,
    id TEXT NOT NULL,
    seq INTEGER NOT NULL,
    doc TEXT NOT NULL,
    PRIMARY KEY (tbl, id)
);`

const createRecordsSeqIndex = `CREATE INDEX idx_records_seq ON records (tbl, seq);`

var schemaDDL = []string{createRecords, createRecordsSeqIndex}
