package internal

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/DrGermanius/Zencoo/internal/model"
)

type IRepository interface {
	Register(context.Context, model.User) (int, error)
	IsEmailRegistered(context.Context, string) (bool, error)
	IsUsernameTaken(context.Context, string) (bool, error)
	GetCredentials(context.Context, string) (int, string, error)
}

type Repository struct {
	Conn   *sql.DB
	Logger *zap.SugaredLogger
}

func NewRepository(connString string, logger *zap.SugaredLogger) (*Repository, error) {
	conn, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	if err = conn.Ping(); err != nil {
		return nil, errors.Wrap(err, "ping database")
	}

	if err = migrate(conn); err != nil {
		return nil, err
	}

	return &Repository{Conn: conn, Logger: logger}, nil
}

func (r Repository) Close() error {
	return r.Conn.Close()
}

func (r Repository) Register(ctx context.Context, u model.User) (int, error) {
	var id int
	row := r.Conn.QueryRowContext(ctx,
		"INSERT INTO users (email, username, password, full_name, door_number, community) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id",
		u.Email, u.Username, u.Password, u.FullName, u.DoorNumber, u.Community)

	if err := row.Scan(&id); err != nil {
		return 0, errors.Wrap(err, "insert user")
	}
	return id, nil
}

func (r Repository) IsEmailRegistered(ctx context.Context, email string) (bool, error) {
	exist := false

	row := r.Conn.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", email)
	if err := row.Scan(&exist); err != nil {
		return false, errors.Wrap(err, "check email")
	}
	return exist, nil
}

func (r Repository) IsUsernameTaken(ctx context.Context, username string) (bool, error) {
	exist := false

	row := r.Conn.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)", username)
	if err := row.Scan(&exist); err != nil {
		return false, errors.Wrap(err, "check username")
	}
	return exist, nil
}

// GetCredentials returns the id and password hash of the user with email.
func (r Repository) GetCredentials(ctx context.Context, email string) (int, string, error) {
	var (
		id   int
		hash string
	)

	err := r.Conn.QueryRowContext(ctx, "SELECT id, password FROM users WHERE email = $1", email).Scan(&id, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		r.Logger.Infof("Login attempt for unknown email %s", email)
		return 0, "", ErrInvalidCredentials
	}
	if err != nil {
		return 0, "", errors.Wrap(err, "select credentials")
	}

	return id, hash, nil
}
