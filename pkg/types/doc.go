// Package types defines the contact data model: validated field values,
// the Record aggregate, the name-keyed AddressBook, the Book storage
// interface, and the standard error values shared by every backend.
//
// The package is pure in-memory logic. It never logs, never exits the
// process, and reports failures as error values or status results.
package types
