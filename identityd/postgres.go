package identityd

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/centavo/centavo/core"
)

// PostgresStorage backs the identity endpoints with Postgres. Expected
// schema:
//
//	CREATE TABLE users (
//	    id         uuid PRIMARY KEY DEFAULT gen_random_uuid(),
//	    first_name text NOT NULL,
//	    last_name  text NOT NULL,
//	    username   text NOT NULL UNIQUE,
//	    password   text NOT NULL,
//	    created_at timestamptz NOT NULL DEFAULT now()
//	);
type PostgresStorage struct {
	pool *pgxpool.Pool
}

var _ UserStorage = (*PostgresStorage)(nil)

func NewPostgresStorage(pool *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{pool: pool}
}

func (p *PostgresStorage) CreateUser(ctx context.Context, record *core.UserRecord) error {
	query := `INSERT INTO users (first_name, last_name, username, password) VALUES ($1, $2, $3, $4) RETURNING id, created_at`

	err := p.pool.QueryRow(ctx, query,
		record.FirstName, record.LastName, record.Username, record.Password,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return core.ErrUserExists
		}
		return err
	}
	return nil
}

func (p *PostgresStorage) FindByUsername(ctx context.Context, username string) ([]*core.UserRecord, error) {
	query := `SELECT id, first_name, last_name, username, password, created_at FROM users WHERE username = $1`

	rows, err := p.pool.Query(ctx, query, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*core.UserRecord{}
	for rows.Next() {
		record := &core.UserRecord{}
		if err := rows.Scan(
			&record.ID, &record.FirstName, &record.LastName,
			&record.Username, &record.Password, &record.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
