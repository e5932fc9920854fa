package types

// Store is a Book backed by an external engine. Callers attach before use
// and detach when done.
type Store interface {
	Book

	// Attach opens the backing store. Returns ErrAlreadyAttached if called
	// while already attached.
	Attach() error

	// Detach releases backend resources and drops every record.
	// Idempotent: multiple calls succeed. After Detach, Book operations
	// return ErrBookDetached.
	Detach() error
}
