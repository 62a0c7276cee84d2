package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/retail-hub/accounts/internal/common"
	"github.com/retail-hub/accounts/internal/dbx"
	"github.com/retail-hub/accounts/internal/server/models"
)

// pgUniqueViolation is the PostgreSQL error code for unique_violation.
const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const pgUserColumns = `id, username, email, password_hash,
	 given_name, family_name, avatar_url,
	 address_line1, address_line2, address_city,
	 address_state, address_postal_code, address_country,
	 created_at, updated_at`

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (` + pgUserColumns + `)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 `

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash,
		user.GivenName, user.FamilyName, user.AvatarURL,
		user.AddressLine1, user.AddressLine2, user.AddressCity,
		user.AddressState, user.AddressPostalCode, user.AddressCountry,
		user.CreatedAt, user.UpdatedAt)

	if err != nil {
		if isPgUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	query :=
		`SELECT ` + pgUserColumns + ` FROM users
		 WHERE username = $1 OR email = $1
		 ORDER BY created_at, id
		 LIMIT 1
		 `

	return r.scanUser(r.db.QueryRowContext(ctx, query, login))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT ` + pgUserColumns + ` FROM users
		 WHERE id = $1
		 `

	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) Save(ctx context.Context, user *models.User) error {
	query :=
		`UPDATE users
		 SET username = $2, email = $3, password_hash = $4,
		     given_name = $5, family_name = $6, avatar_url = $7,
		     address_line1 = $8, address_line2 = $9, address_city = $10,
		     address_state = $11, address_postal_code = $12, address_country = $13,
		     updated_at = $14
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash,
		user.GivenName, user.FamilyName, user.AvatarURL,
		user.AddressLine1, user.AddressLine2, user.AddressCity,
		user.AddressState, user.AddressPostalCode, user.AddressCountry,
		user.UpdatedAt)

	if err != nil {
		if isPgUniqueViolation(err) {
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

func (r *PostgresRepository) LoginTaken(ctx context.Context, username, email, excludeID string) (bool, error) {
	query :=
		`SELECT EXISTS (
		   SELECT 1 FROM users
		   WHERE ((username = $1 AND $1 <> '') OR (email = $2 AND $2 <> ''))
		     AND id <> $3
		 )`

	var taken bool
	err := r.db.QueryRowContext(ctx, query, username, email, excludeID).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return taken, nil
}

func (r *PostgresRepository) scanUser(row *sql.Row) (*models.User, error) {
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

func isPgUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
