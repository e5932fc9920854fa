package types

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "ten digits", raw: "0501234567"},
		{name: "all zeros", raw: "0000000000"},
		{name: "all nines", raw: "9999999999"},
		{name: "nine digits", raw: "050123456", wantErr: true},
		{name: "eleven digits", raw: "05012345678", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "letter inside", raw: "05012a4567", wantErr: true},
		{name: "dashes not stripped", raw: "050-123-45", wantErr: true},
		{name: "leading plus", raw: "+380501234", wantErr: true},
		{name: "space padded", raw: " 050123456", wantErr: true},
		{name: "non-ascii digits", raw: "٠١٢٣٤٥٦٧٨٩", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPhone(tt.raw)
			assert.Equal(t, !tt.wantErr, ValidPhone(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidPhone)
				assert.True(t, IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, p.String())
		})
	}
}

func TestNewBirthday(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
		want    time.Time
	}{
		{name: "ordinary date", raw: "15.03.1990", want: time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{name: "leap day in leap year", raw: "29.02.2020", want: time.Date(2020, time.February, 29, 0, 0, 0, 0, time.UTC)},
		{name: "last day of year", raw: "31.12.1999", want: time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC)},
		{name: "leap day in common year", raw: "29.02.2021", wantErr: true},
		{name: "thirty first of february", raw: "31.02.2024", wantErr: true},
		{name: "month thirteen", raw: "01.13.2024", wantErr: true},
		{name: "day zero", raw: "00.01.2024", wantErr: true},
		{name: "iso format", raw: "2024-03-15", wantErr: true},
		{name: "slashes", raw: "15/03/2024", wantErr: true},
		{name: "single digit day", raw: "5.03.2024", wantErr: true},
		{name: "two digit year", raw: "15.03.24", wantErr: true},
		{name: "trailing text", raw: "15.03.2024x", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBirthday(tt.raw)
			assert.Equal(t, !tt.wantErr, ValidBirthday(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidBirthday)
				assert.Equal(t, msgInvalidBirthday, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, b.String())
			assert.True(t, tt.want.Equal(b.Date()))
			assert.False(t, b.IsZero())
		})
	}
}

func TestNewName(t *testing.T) {
	n, err := NewName("Ann")
	require.NoError(t, err)
	assert.Equal(t, "Ann", n.String())

	_, err = NewName("")
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestValidationErrorUnwrap(t *testing.T) {
	_, err := NewPhone("123")
	require.Error(t, err)

	wrapped := errors.Join(errors.New("add contact"), err)

	var ve *ValidationError
	require.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, "123", ve.Value)
	assert.Equal(t, msgInvalidPhone, ve.Message)
	assert.ErrorIs(t, wrapped, ErrInvalidPhone)
	assert.NotErrorIs(t, wrapped, ErrInvalidBirthday)
}

func TestFieldRendering(t *testing.T) {
	name, _ := NewName("Ann")
	phone, _ := NewPhone("0501234567")
	bday, _ := NewBirthday("01.01.2000")

	for _, f := range []Field{name, phone, bday} {
		assert.NotEmpty(t, f.String())
	}
	assert.Equal(t, "01.01.2000", Field(bday).String())
}
