package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ogurasousui/timetrack/internal/core/staff"
)

var (
	_ staff.PasswordHasher = (*BcryptHasher)(nil)
	_ staff.Notifier       = (*LinkNotifier)(nil)
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("Secret#123")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret#123", hash)

	again, err := h.Hash("Secret#123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "hashes are salted")

	require.NoError(t, h.Compare(hash, "Secret#123"))
	assert.ErrorIs(t, h.Compare(hash, "secret#123"), ErrPasswordMismatch)
	assert.Error(t, h.Compare("not-a-hash", "Secret#123"))
}

func TestNewBcryptHasher_OutOfRangeCost(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(bcrypt.MaxCost+1).cost)
}

func TestLinkNotifier(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n := NewLinkNotifier("https://timetrack.example.com/", slog.New(slog.NewJSONHandler(&buf, nil)))

	assert.Equal(t, "https://timetrack.example.com/activate/s1/abc", n.ActivationLink("s1", "abc"))
	assert.Equal(t, "https://timetrack.example.com/reset-password/s1/a%2Fb", n.ResetLink("s1", "a/b"))

	require.NoError(t, n.SendActivationLink(context.Background(), "s1", "abc"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "activation link issued", entry["msg"])
	assert.Equal(t, "s1", entry["staff_id"])
	assert.Equal(t, "https://timetrack.example.com/activate/s1/abc", entry["link"])
}
