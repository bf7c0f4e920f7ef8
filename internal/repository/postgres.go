// Package repository содержит реализацию доступа к данным в PostgreSQL.
package repository

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrUserNotFound возвращается, если пользователь не найден.
var (
	ErrUserNotFound = errors.New("user not found")
	// ErrOrderNotFound возвращается, если заказ не найден или принадлежит другому пользователю.
	ErrOrderNotFound = errors.New("order not found")
)

// StoreError описывает ошибку хранилища: соединение, нарушение ограничения и т.п.
type StoreError struct {
	Op   string
	Code string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeError(op string, err error) error {
	se := &StoreError{Op: op, Err: err}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		se.Code = pgErr.Code
	}
	return se
}

// IsConstraintViolation сообщает, что ошибка вызвана нарушением ограничения целостности.
func IsConstraintViolation(err error) bool {
	var se *StoreError
	if !errors.As(err, &se) || se.Code == "" {
		return false
	}
	return pgerrcode.IsIntegrityConstraintViolation(se.Code)
}

// TxBeginner открывает транзакции. Реализуется *pgxpool.Pool и *pgx.Conn.
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

var txOptions = pgx.TxOptions{IsoLevel: pgx.Serializable}

// inTx выполняет fn в одной сериализуемой транзакции.
func inTx(ctx context.Context, db TxBeginner, op string, fn func(tx pgx.Tx) error) error {
	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return storeError(op+": begin tx", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrOrderNotFound) {
			return err
		}
		var se *StoreError
		if errors.As(err, &se) {
			return err
		}
		return storeError(op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return storeError(op+": commit tx", err)
	}
	return nil
}

// Postgres владеет пулом соединений и схемой БД.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres создаёт пул соединений и применяет миграции.
func NewPostgres(dsn string) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	p := &Postgres{pool: pool}

	if err := p.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return p, nil
}

func (p *Postgres) runMigrations(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(p.pool)
	defer db.Close()

	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// Pool возвращает пул соединений для конструкторов DAO.
func (p *Postgres) Pool() *pgxpool.Pool {
	return p.pool
}

// Close закрывает пул соединений с БД.
func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
