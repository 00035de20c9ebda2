package utils

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := EncryptPassword("correct-horse-battery")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct-horse-battery", hash)

	assert.True(t, CheckPassword("correct-horse-battery", hash))
	assert.False(t, CheckPassword("wrong-password", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestEncryptPasswordProducesUniqueHashes(t *testing.T) {
	t.Parallel()

	first, err := EncryptPassword("aynisifre")
	require.NoError(t, err)
	second, err := EncryptPassword("aynisifre")
	require.NoError(t, err)

	// bcrypt salts every hash
	assert.NotEqual(t, first, second)
}

// A fresh deployment must allow the seeded admin to log in, so the hash baked
// into the migration has to verify against the documented initial password.
func TestSeededAdminHashMatchesInitialPassword(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile(filepath.Join("..", "database", "migrations", "00001_auth.up.sql"))
	require.NoError(t, err)

	hashPattern := regexp.MustCompile(`\$2[aby]\$\d\d\$[./A-Za-z0-9]{53}`)
	seedHash := hashPattern.FindString(string(data))
	require.NotEmpty(t, seedHash, "seed migration contains no bcrypt hash")

	assert.True(t, CheckPassword("admin123", seedHash))
}
