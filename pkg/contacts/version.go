// Package contacts holds build metadata for the contacts CLI.
package contacts

// Version is the released version of the contacts CLI.
const Version = "0.1.0"

// ModulePath is the Go module path of this repository.
const ModulePath = "github.com/mesh-intelligence/contacts"
