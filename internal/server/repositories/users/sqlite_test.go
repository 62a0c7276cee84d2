package users_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/retail-hub/accounts/internal/common"
	"github.com/retail-hub/accounts/internal/server/models"
	"github.com/retail-hub/accounts/internal/server/repositories/repomanager"
	"github.com/retail-hub/accounts/internal/server/repositories/users"
)

var dbSeq int

func setupSQLite(t *testing.T) (*users.SQLiteRepository, *sql.DB) {
	t.Helper()

	dbSeq++
	dsn := fmt.Sprintf("file:users_tests_%d?mode=memory&cache=shared", dbSeq)
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	m := repomanager.NewSQLiteRepositoryManager()
	require.NoError(t, m.RunMigrations(context.Background(), db))

	return users.NewSQLiteRepository(db), db
}

func newUser(id, username, email string) *models.User {
	now := time.Now().UTC().Truncate(time.Second)
	return &models.User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: "$argon2id$hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestSQLite_CreateAndLookup(t *testing.T) {
	repo, _ := setupSQLite(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, newUser("usr_1", "alice", "alice@x.com"))
	require.NoError(t, err)

	byName, err := repo.GetByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "usr_1", byName.ID)

	byEmail, err := repo.GetByLogin(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, "usr_1", byEmail.ID)

	byID, err := repo.GetByID(ctx, "usr_1")
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	_, err = repo.GetByLogin(ctx, "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSQLite_DuplicateUsernameAndEmail(t *testing.T) {
	repo, _ := setupSQLite(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, newUser("usr_1", "alice", "alice@x.com"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newUser("usr_2", "alice", "other@x.com"))
	assert.ErrorIs(t, err, common.ErrorAlreadyExists, "duplicate username")

	_, err = repo.Create(ctx, newUser("usr_3", "other", "alice@x.com"))
	assert.ErrorIs(t, err, common.ErrorAlreadyExists, "duplicate email")
}

func TestSQLite_ConcurrentDuplicateCreates_ExactlyOneWins(t *testing.T) {
	repo, _ := setupSQLite(t)
	ctx := context.Background()

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.Create(ctx, newUser(fmt.Sprintf("usr_%d", i), "bob", "bob@x.com"))
		}(i)
	}
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, common.ErrorAlreadyExists):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok, "exactly one create must succeed")
	assert.Equal(t, n-1, conflicts, "all other creates must conflict")
}

func TestSQLite_SaveUpdatesRowAndTimestamps(t *testing.T) {
	repo, _ := setupSQLite(t)
	ctx := context.Background()

	u, err := repo.Create(ctx, newUser("usr_1", "alice", "alice@x.com"))
	require.NoError(t, err)

	city := "Springfield"
	u.AddressCity = &city
	u.Username = "alice2"
	u.UpdatedAt = u.UpdatedAt.Add(time.Minute)

	require.NoError(t, repo.Save(ctx, u))

	got, err := repo.GetByID(ctx, "usr_1")
	require.NoError(t, err)
	assert.Equal(t, "alice2", got.Username)
	require.NotNil(t, got.AddressCity)
	assert.Equal(t, "Springfield", *got.AddressCity)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt), "updated_at must move forward")
}

func TestSQLite_SaveMissingRow(t *testing.T) {
	repo, _ := setupSQLite(t)

	err := repo.Save(context.Background(), newUser("usr_ghost", "ghost", "ghost@x.com"))
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSQLite_SaveConflictingEmail(t *testing.T) {
	repo, _ := setupSQLite(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, newUser("usr_1", "alice", "alice@x.com"))
	require.NoError(t, err)
	bob, err := repo.Create(ctx, newUser("usr_2", "bob", "bob@x.com"))
	require.NoError(t, err)

	bob.Email = "alice@x.com"
	err = repo.Save(ctx, bob)
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestSQLite_LoginTaken(t *testing.T) {
	repo, _ := setupSQLite(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, newUser("usr_1", "alice", "alice@x.com"))
	require.NoError(t, err)

	taken, err := repo.LoginTaken(ctx, "alice", "", "")
	require.NoError(t, err)
	assert.True(t, taken, "username owned by someone else")

	taken, err = repo.LoginTaken(ctx, "alice", "", "usr_1")
	require.NoError(t, err)
	assert.False(t, taken, "own username excluded")

	taken, err = repo.LoginTaken(ctx, "", "alice@x.com", "usr_2")
	require.NoError(t, err)
	assert.True(t, taken, "email owned by someone else")

	taken, err = repo.LoginTaken(ctx, "", "", "usr_2")
	require.NoError(t, err)
	assert.False(t, taken, "empty identifiers match nothing")
}
