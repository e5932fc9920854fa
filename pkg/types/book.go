package types

// Book is the storage interface the command layer works against.
// Records handed out by Find may be copies; callers write a modified
// record back with AddRecord.
type Book interface {
	// AddRecord inserts the record, or replaces the record already stored
	// under the same name. Phones are not merged.
	AddRecord(r *Record) error

	// Find returns the record stored under name.
	// Returns ErrNotFound if there is none.
	Find(name string) (*Record, error)

	// Delete removes the record stored under name. Deleting an absent
	// name succeeds.
	Delete(name string) error

	// Records returns every record in insertion order.
	Records() ([]*Record, error)
}

// Compile-time check.
var _ Book = (*AddressBook)(nil)

// AddressBook is the in-memory Book: an insertion-ordered mapping from
// name to record. Names are case-sensitive and unique. Not safe for
// concurrent use.
type AddressBook struct {
	order []string
	index map[string]*Record
}

// NewAddressBook returns an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{index: make(map[string]*Record)}
}

// AddRecord upserts r keyed by its name. A replaced name keeps its
// original position.
func (b *AddressBook) AddRecord(r *Record) error {
	if r == nil || r.Name().String() == "" {
		return ErrInvalidRecord
	}
	if b.index == nil {
		b.index = make(map[string]*Record)
	}
	key := r.Name().String()
	if _, ok := b.index[key]; !ok {
		b.order = append(b.order, key)
	}
	b.index[key] = r
	return nil
}

// Find returns the record for name, or ErrNotFound.
func (b *AddressBook) Find(name string) (*Record, error) {
	r, ok := b.index[name]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

// Delete removes name if present.
func (b *AddressBook) Delete(name string) error {
	if _, ok := b.index[name]; !ok {
		return nil
	}
	delete(b.index, name)
	for i, k := range b.order {
		if k == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Records returns the records in insertion order. The error is always nil.
func (b *AddressBook) Records() ([]*Record, error) {
	out := make([]*Record, 0, len(b.order))
	for _, k := range b.order {
		out = append(out, b.index[k])
	}
	return out, nil
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.order)
}
