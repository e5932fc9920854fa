package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// memoryDSN opens a private in-memory database. Nothing is written to
// disk; the data lives as long as the single open connection.
const memoryDSN = ":memory:"

// Compile-time check.
var _ types.Store = (*Backend)(nil)

// Backend implements types.Book using SQLite as the store. Records handed
// out by Find and Records are fresh copies; callers write changes back
// with AddRecord.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	db       *sql.DB
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach opens the in-memory database and creates the schema.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	// Every connection to :memory: gets its own database, so pin one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("create schema: %w", err)
		}
	}
	for _, stmt := range indexDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("create index: %w", err)
		}
	}

	b.db = db
	b.attached = true
	return nil
}

// Detach closes the database and drops all records. Idempotent.
// After Detach, operations return ErrBookDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.attached = false
	return nil
}

// AddRecord upserts r keyed by its name. A replaced name keeps its
// position and loses its previous phones and birthday.
func (b *Backend) AddRecord(r *types.Record) error {
	if r == nil || r.Name().String() == "" {
		return types.ErrInvalidRecord
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return types.ErrBookDetached
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	name := r.Name().String()
	if _, err := tx.Exec(
		"DELETE FROM phones WHERE record_id IN (SELECT record_id FROM contacts WHERE name = ?)", name); err != nil {
		return fmt.Errorf("clearing phones: %w", err)
	}

	var birthday sql.NullString
	if bd, ok := r.Birthday(); ok {
		birthday = sql.NullString{String: bd.String(), Valid: true}
	}

	// A replaced name keeps its seq so iteration order is stable.
	var seq int64
	err = tx.QueryRow("SELECT seq FROM contacts WHERE name = ?", name).Scan(&seq)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if err := tx.QueryRow("SELECT COALESCE(MAX(seq), 0) + 1 FROM contacts").Scan(&seq); err != nil {
			return fmt.Errorf("next seq: %w", err)
		}
	case err != nil:
		return fmt.Errorf("looking up contact: %w", err)
	default:
		if _, err := tx.Exec("DELETE FROM contacts WHERE name = ?", name); err != nil {
			return fmt.Errorf("replacing contact: %w", err)
		}
	}

	if _, err := tx.Exec(
		"INSERT INTO contacts (record_id, name, birthday, seq) VALUES (?, ?, ?, ?)",
		r.ID, name, birthday, seq); err != nil {
		return fmt.Errorf("inserting contact: %w", err)
	}

	for i, p := range r.Phones() {
		if _, err := tx.Exec(
			"INSERT INTO phones (record_id, ordinal, phone) VALUES (?, ?, ?)",
			r.ID, i, p.String()); err != nil {
			return fmt.Errorf("inserting phone: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Find returns a copy of the record stored under name.
// Returns ErrNotFound if there is none.
func (b *Backend) Find(name string) (*types.Record, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrBookDetached
	}

	var id, stored string
	var birthday sql.NullString
	err := b.db.QueryRow(
		"SELECT record_id, name, birthday FROM contacts WHERE name = ?", name).
		Scan(&id, &stored, &birthday)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning contact: %w", err)
	}

	phones, err := b.loadPhones(id)
	if err != nil {
		return nil, err
	}
	return restore(id, stored, phones[id], birthday)
}

// Delete removes the record stored under name. Absent names succeed.
func (b *Backend) Delete(name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return types.ErrBookDetached
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"DELETE FROM phones WHERE record_id IN (SELECT record_id FROM contacts WHERE name = ?)", name); err != nil {
		return fmt.Errorf("deleting phones: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM contacts WHERE name = ?", name); err != nil {
		return fmt.Errorf("deleting contact: %w", err)
	}
	return tx.Commit()
}

// Records returns copies of every record in insertion order.
func (b *Backend) Records() ([]*types.Record, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrBookDetached
	}

	type row struct {
		id, name string
		birthday sql.NullString
	}

	// Collect contacts before loading phones: the single connection
	// cannot serve a second query while rows are open.
	rows, err := b.db.Query("SELECT record_id, name, birthday FROM contacts ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("querying contacts: %w", err)
	}
	var contacts []row
	for rows.Next() {
		var c row
		if err := rows.Scan(&c.id, &c.name, &c.birthday); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	phones, err := b.loadPhones("")
	if err != nil {
		return nil, err
	}

	out := make([]*types.Record, 0, len(contacts))
	for _, c := range contacts {
		r, err := restore(c.id, c.name, phones[c.id], c.birthday)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// Len returns the number of stored records.
func (b *Backend) Len() (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return 0, types.ErrBookDetached
	}
	var n int
	if err := b.db.QueryRow("SELECT COUNT(*) FROM contacts").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting contacts: %w", err)
	}
	return n, nil
}

// loadPhones returns phones grouped by record ID in ordinal order. An
// empty recordID loads every record's phones.
func (b *Backend) loadPhones(recordID string) (map[string][]string, error) {
	query := "SELECT record_id, phone FROM phones ORDER BY record_id, ordinal"
	var args []any
	if recordID != "" {
		query = "SELECT record_id, phone FROM phones WHERE record_id = ? ORDER BY ordinal"
		args = append(args, recordID)
	}

	rows, err := b.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("loading phones: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var id, phone string
		if err := rows.Scan(&id, &phone); err != nil {
			return nil, fmt.Errorf("scanning phone: %w", err)
		}
		out[id] = append(out[id], phone)
	}
	return out, rows.Err()
}

func restore(id, name string, phones []string, birthday sql.NullString) (*types.Record, error) {
	r, err := types.RestoreRecord(id, name, phones, birthday.String)
	if err != nil {
		return nil, fmt.Errorf("restoring contact %q: %w", name, err)
	}
	return r, nil
}
