// Package sqlite implements types.Book on an in-memory SQLite database.
package sqlite

// Schema DDL. Phones are stored one row per number; ordinal keeps the
// insertion order of a record's phones.
const (
	createContacts = `CREATE TABLE contacts (
    record_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    birthday TEXT,
    seq INTEGER NOT NULL
);`

	createPhones = `CREATE TABLE phones (
    record_id TEXT NOT NULL,
    ordinal INTEGER NOT NULL,
    phone TEXT NOT NULL,
    PRIMARY KEY (record_id, ordinal)
);`
)

// Index DDL for common queries.
const (
	idxContactsSeq     = `CREATE INDEX idx_contacts_seq ON contacts(seq);`
	idxPhonesRecord    = `CREATE INDEX idx_phones_record ON phones(record_id);`
	idxPhonesUniqueNum = `CREATE UNIQUE INDEX idx_phones_unique ON phones(record_id, phone);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createContacts,
	createPhones,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxContactsSeq,
	idxPhonesRecord,
	idxPhonesUniqueNum,
}
