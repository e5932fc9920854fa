package types

import "time"

// BirthdayLayout is the only accepted birthday format (DD.MM.YYYY).
const BirthdayLayout = "02.01.2006"

// PhoneLength is the exact number of digits in a phone number.
const PhoneLength = 10

// User-facing validation messages.
const (
	msgInvalidName     = "Name must not be empty"
	msgInvalidPhone    = "Invalid phone number format: expected exactly 10 digits"
	msgInvalidBirthday = "Invalid date format. Use DD.MM.YYYY"
)

// Field is a validated, immutable scalar value. String returns the raw
// value the field was constructed from.
type Field interface {
	String() string
}

// Compile-time checks that every field kind conforms to Field.
var (
	_ Field = Name{}
	_ Field = Phone{}
	_ Field = Birthday{}
)

// Name is a contact's name. Any non-empty string is accepted.
type Name struct {
	value string
}

// NewName returns a Name or a *ValidationError wrapping ErrInvalidName.
func NewName(raw string) (Name, error) {
	if raw == "" {
		return Name{}, &ValidationError{Kind: ErrInvalidName, Value: raw, Message: msgInvalidName}
	}
	return Name{value: raw}, nil
}

func (n Name) String() string { return n.value }

// Phone is a phone number of exactly PhoneLength ASCII digits.
type Phone struct {
	value string
}

// NewPhone returns a Phone or a *ValidationError wrapping ErrInvalidPhone.
// Separators are not stripped; "050-123-4567" is rejected.
func NewPhone(raw string) (Phone, error) {
	if !ValidPhone(raw) {
		return Phone{}, &ValidationError{Kind: ErrInvalidPhone, Value: raw, Message: msgInvalidPhone}
	}
	return Phone{value: raw}, nil
}

// ValidPhone reports whether s has length PhoneLength and only decimal digits.
func ValidPhone(s string) bool {
	if len(s) != PhoneLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (p Phone) String() string { return p.value }

// Birthday is a calendar date written as DD.MM.YYYY.
type Birthday struct {
	value string
	date  time.Time
}

// NewBirthday returns a Birthday or a *ValidationError wrapping
// ErrInvalidBirthday. Nonexistent dates such as 31.02.2024 or 29.02.2021
// are rejected.
func NewBirthday(raw string) (Birthday, error) {
	d, err := time.Parse(BirthdayLayout, raw)
	if err != nil {
		return Birthday{}, &ValidationError{Kind: ErrInvalidBirthday, Value: raw, Message: msgInvalidBirthday}
	}
	return Birthday{value: raw, date: d}, nil
}

// ValidBirthday reports whether s is an existing date in DD.MM.YYYY form.
func ValidBirthday(s string) bool {
	_, err := time.Parse(BirthdayLayout, s)
	return err == nil
}

func (b Birthday) String() string { return b.value }

// Date returns the birthday at midnight UTC.
func (b Birthday) Date() time.Time { return b.date }

// IsZero reports whether b was never set.
func (b Birthday) IsZero() bool { return b.value == "" }
