package database

import (
	"context"
	"testing"
	"viralgenix/internal/auth"
	"viralgenix/internal/models"

	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T, username string) *models.User {
	hashedPassword, err := auth.HashPassword("secretpassword")
	require.NoError(t, err)

	user, err := testStore.CreateUser(context.Background(), CreateUserParams{
		Username:     username,
		PasswordHash: hashedPassword,
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

func TestCreateUser(t *testing.T) {
	user := createTestUser(t, "user_create")

	require.NotZero(t, user.ID)
	require.Equal(t, "user_create", user.Username)
	require.NotEmpty(t, user.PasswordHash)
	require.NotEqual(t, "secretpassword", user.PasswordHash)
	require.NotZero(t, user.CreatedAt)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	createTestUser(t, "user_duplicate")

	_, err := testStore.CreateUser(context.Background(), CreateUserParams{
		Username:     "user_duplicate",
		PasswordHash: "some_other_hash",
	})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrDuplicateUsername)

	// exactly one row survived the conflict
	var count int
	err = testStore.pool.QueryRow(context.Background(),
		`SELECT count(*) FROM users WHERE username = $1`, "user_duplicate").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestGetUserByUsername(t *testing.T) {
	created := createTestUser(t, "user_lookup")

	foundUser, err := testStore.GetUserByUsername(context.Background(), "user_lookup")

	require.NoError(t, err)
	require.NotNil(t, foundUser)
	require.Equal(t, created.ID, foundUser.ID)
	require.Equal(t, "user_lookup", foundUser.Username)
	require.NotEmpty(t, foundUser.PasswordHash)

	nonExistentUser, err := testStore.GetUserByUsername(context.Background(), "nonexistent")
	require.NoError(t, err)
	require.Nil(t, nonExistentUser)
}

func TestGetUserByUsername_CaseSensitive(t *testing.T) {
	createTestUser(t, "CaseUser")

	found, err := testStore.GetUserByUsername(context.Background(), "caseuser")
	require.NoError(t, err)
	require.Nil(t, found, "usernames are case-sensitive")
}

func TestGetUserByID(t *testing.T) {
	created := createTestUser(t, "user_by_id")

	found, err := testStore.GetUserByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, created.Username, found.Username)

	missing, err := testStore.GetUserByID(context.Background(), 999999)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPasswordRoundTrip(t *testing.T) {
	password := "secret1"
	hashedPassword, err := auth.HashPassword(password)
	require.NoError(t, err)

	user, err := testStore.CreateUser(context.Background(), CreateUserParams{
		Username:     "user_roundtrip",
		PasswordHash: hashedPassword,
	})
	require.NoError(t, err)

	stored, err := testStore.GetUserByUsername(context.Background(), "user_roundtrip")
	require.NoError(t, err)
	require.Equal(t, user.ID, stored.ID)
	require.True(t, auth.CheckPasswordHash(password, stored.PasswordHash))
	require.False(t, auth.CheckPasswordHash("secret2", stored.PasswordHash))
}
