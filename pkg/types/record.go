package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BirthdayNotSet is what BirthdayDisplay returns for a record without a birthday.
const BirthdayNotSet = "not set"

// Record is one contact: a name, an ordered set of unique phones, and an
// optional birthday. The name never changes after creation.
type Record struct {
	ID       string // UUID v7, generated on creation.
	name     Name
	phones   []Phone
	birthday Birthday
}

// NewRecord creates an empty record for name.
// Returns a *ValidationError wrapping ErrInvalidName if name is empty.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{ID: generateUUID(), name: n}, nil
}

// Name returns the record's name.
func (r *Record) Name() Name {
	return r.name
}

// Phones returns a copy of the phones in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// AddPhone validates raw and appends it unless an equal phone is already
// stored. Adding a duplicate is a silent no-op.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	if r.indexOf(raw) >= 0 {
		return nil
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the phone equal to raw. Reports whether it was found.
func (r *Record) RemovePhone(raw string) bool {
	i := r.indexOf(raw)
	if i < 0 {
		return false
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return true
}

// EditPhone replaces oldRaw with newRaw at the same position.
// newRaw is validated before anything is touched; on a validation error
// the record is unchanged. Reports whether oldRaw was found.
func (r *Record) EditPhone(oldRaw, newRaw string) (bool, error) {
	p, err := NewPhone(newRaw)
	if err != nil {
		return false, err
	}
	i := r.indexOf(oldRaw)
	if i < 0 {
		return false, nil
	}
	r.phones[i] = p
	return true, nil
}

// FindPhone returns the stored phone equal to raw.
func (r *Record) FindPhone(raw string) (Phone, bool) {
	i := r.indexOf(raw)
	if i < 0 {
		return Phone{}, false
	}
	return r.phones[i], true
}

// ListPhones joins the phones with ", " in insertion order.
func (r *Record) ListPhones() string {
	parts := make([]string, len(r.phones))
	for i, p := range r.phones {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

// SetBirthday validates raw and replaces any previous birthday.
func (r *Record) SetBirthday(raw string) error {
	b, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = b
	return nil
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	return r.birthday, !r.birthday.IsZero()
}

// BirthdayDisplay returns the raw birthday or BirthdayNotSet.
func (r *Record) BirthdayDisplay() string {
	if r.birthday.IsZero() {
		return BirthdayNotSet
	}
	return r.birthday.String()
}

// DaysUntilBirthday returns the number of days from today to the next
// occurrence of the birthday, 0 when it is today. The second result is
// false when no birthday is set.
//
// A 29 February birthday falls on 1 March in non-leap years.
func (r *Record) DaysUntilBirthday(today time.Time) (int, bool) {
	if r.birthday.IsZero() {
		return 0, false
	}
	day := truncateDay(today)
	bd := r.birthday.Date()
	next := time.Date(day.Year(), bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(day) {
		next = time.Date(day.Year()+1, bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
	}
	return daysBetween(day, next), true
}

func (r *Record) indexOf(raw string) int {
	for i, p := range r.phones {
		if p.value == raw {
			return i
		}
	}
	return -1
}

// RestoreRecord rebuilds a record from stored values. Backends use it to
// hand out records they persisted; every value is validated again.
func RestoreRecord(id, name string, phones []string, birthday string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	r := &Record{ID: id, name: n}
	if r.ID == "" {
		r.ID = generateUUID()
	}
	for _, raw := range phones {
		if err := r.AddPhone(raw); err != nil {
			return nil, err
		}
	}
	if birthday != "" {
		if err := r.SetBirthday(birthday); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// generateUUID generates a new UUID v7 for record IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
