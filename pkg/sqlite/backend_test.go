package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

func TestNewBackend(t *testing.T) {
	store := NewBackend()
	require.NoError(t, store.Attach())
	defer store.Detach()

	r, err := types.NewRecord("Ann")
	require.NoError(t, err)
	require.NoError(t, r.AddPhone("0501234567"))
	require.NoError(t, store.AddRecord(r))

	got, err := store.Find("Ann")
	require.NoError(t, err)
	assert.Equal(t, "0501234567", got.ListPhones())

	require.NoError(t, store.Detach())
	_, err = store.Find("Ann")
	assert.ErrorIs(t, err, types.ErrBookDetached)
}
