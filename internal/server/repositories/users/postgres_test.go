package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/retail-hub/accounts/internal/common"
	"github.com/retail-hub/accounts/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var userCols = []string{
	"id", "username", "email", "password_hash",
	"given_name", "family_name", "avatar_url",
	"address_line1", "address_line2", "address_city",
	"address_state", "address_postal_code", "address_country",
	"created_at", "updated_at",
}

func userRow(id, username, email string) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows(userCols).
		AddRow(id, username, email, "$argon2id$hash",
			nil, nil, nil,
			nil, nil, nil,
			nil, nil, nil,
			now, now)
}

func testUser(id string) *models.User {
	now := time.Now().UTC()
	return &models.User{
		ID:           id,
		Username:     "alice",
		Email:        "alice@x.com",
		PasswordHash: "$argon2id$hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users\s*\(.*\)\s*VALUES\s*\(\$1.*\$15\)\s*$`

	mock.ExpectExec(q).WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Create(context.Background(), testUser("usr_1"))
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "usr_1" || got.Username != "alice" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users`

	mock.ExpectExec(q).WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	_, err := repo.Create(context.Background(), testUser("usr_1"))
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want common.ErrorAlreadyExists, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users`

	mock.ExpectExec(q).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), testUser("usr_1"))
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByLogin_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*\s+FROM\s+users\s+WHERE\s+username\s*=\s*\$1\s+OR\s+email\s*=\s*\$1\s+ORDER\s+BY\s+created_at,\s*id\s+LIMIT\s+1\s*$`

	mock.ExpectQuery(q).
		WithArgs("alice").
		WillReturnRows(userRow("usr_1", "alice", "alice@x.com"))

	got, err := repo.GetByLogin(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByLogin error: %v", err)
	}
	if got.ID != "usr_1" || got.Email != "alice@x.com" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByLogin_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*\s+FROM\s+users\s+WHERE\s+username`

	mock.ExpectQuery(q).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByLogin(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectQuery(q).
		WithArgs("usr_1").
		WillReturnRows(userRow("usr_1", "alice", "alice@x.com"))

	got, err := repo.GetByID(context.Background(), "usr_1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Username != "alice" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestSave_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+username\s*=\s*\$2.*WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Save(context.Background(), testUser("usr_1")); err != nil {
		t.Fatalf("Save error: %v", err)
	}
}

func TestSave_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET`

	mock.ExpectExec(q).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Save(context.Background(), testUser("usr_missing"))
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestSave_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET`

	mock.ExpectExec(q).WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	err := repo.Save(context.Background(), testUser("usr_1"))
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want common.ErrorAlreadyExists, got %v", err)
	}
}

func TestLoginTaken(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+EXISTS`

	mock.ExpectQuery(q).
		WithArgs("alice", "alice@x.com", "usr_self").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	taken, err := repo.LoginTaken(context.Background(), "alice", "alice@x.com", "usr_self")
	if err != nil {
		t.Fatalf("LoginTaken error: %v", err)
	}
	if !taken {
		t.Fatalf("expected taken=true")
	}
}
