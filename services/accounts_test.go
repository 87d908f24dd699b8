package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSetPassword(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := SetPassword(ctx, store.Users, "admin", "first")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = SetPassword(ctx, store.Users, "admin", "second")
	require.NoError(t, err)
	assert.False(t, created)

	u, err := store.Users.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("second")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("first")))

	_, err = SetPassword(ctx, store.Users, "", "x")
	assert.Error(t, err)
}
