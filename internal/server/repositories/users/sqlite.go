package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sqlite "modernc.org/sqlite"

	"github.com/retail-hub/accounts/internal/common"
	"github.com/retail-hub/accounts/internal/dbx"
	"github.com/retail-hub/accounts/internal/server/models"
)

// SQLite extended result codes for uniqueness violations.
const (
	sqliteConstraintPrimaryKey = 1555
	sqliteConstraintUnique     = 2067
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const sqliteUserColumns = `id, username, email, password_hash,
	 given_name, family_name, avatar_url,
	 address_line1, address_line2, address_city,
	 address_state, address_postal_code, address_country,
	 created_at, updated_at`

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (` + sqliteUserColumns + `)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 `

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash,
		user.GivenName, user.FamilyName, user.AvatarURL,
		user.AddressLine1, user.AddressLine2, user.AddressCity,
		user.AddressState, user.AddressPostalCode, user.AddressCountry,
		user.CreatedAt, user.UpdatedAt)

	if err != nil {
		if isSQLiteUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *SQLiteRepository) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	query :=
		`SELECT ` + sqliteUserColumns + ` FROM users
		 WHERE username = ? OR email = ?
		 ORDER BY created_at, id
		 LIMIT 1
		 `

	return r.scanUser(r.db.QueryRowContext(ctx, query, login, login))
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT ` + sqliteUserColumns + ` FROM users
		 WHERE id = ?
		 `

	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteRepository) Save(ctx context.Context, user *models.User) error {
	query :=
		`UPDATE users
		 SET username = ?, email = ?, password_hash = ?,
		     given_name = ?, family_name = ?, avatar_url = ?,
		     address_line1 = ?, address_line2 = ?, address_city = ?,
		     address_state = ?, address_postal_code = ?, address_country = ?,
		     updated_at = ?
		 WHERE id = ?
		 `

	res, err := r.db.ExecContext(ctx, query,
		user.Username, user.Email, user.PasswordHash,
		user.GivenName, user.FamilyName, user.AvatarURL,
		user.AddressLine1, user.AddressLine2, user.AddressCity,
		user.AddressState, user.AddressPostalCode, user.AddressCountry,
		user.UpdatedAt, user.ID)

	if err != nil {
		if isSQLiteUniqueViolation(err) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *SQLiteRepository) LoginTaken(ctx context.Context, username, email, excludeID string) (bool, error) {
	query :=
		`SELECT EXISTS (
		   SELECT 1 FROM users
		   WHERE ((username = ? AND ? <> '') OR (email = ? AND ? <> ''))
		     AND id <> ?
		 )`

	var taken bool
	err := r.db.QueryRowContext(ctx, query, username, username, email, email, excludeID).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return taken, nil
}

func (r *SQLiteRepository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.GivenName, &user.FamilyName, &user.AvatarURL,
		&user.AddressLine1, &user.AddressLine2, &user.AddressCity,
		&user.AddressState, &user.AddressPostalCode, &user.AddressCountry,
		&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func isSQLiteUniqueViolation(err error) bool {
	var sqErr *sqlite.Error
	if !errors.As(err, &sqErr) {
		return false
	}
	code := sqErr.Code()
	return code == sqliteConstraintUnique || code == sqliteConstraintPrimaryKey
}
