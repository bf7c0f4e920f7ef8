package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mmeshcher/users-orders-api/internal/model"
)

const userColumns = `id, first_name, last_name, email, first_line_of_address, second_line_of_address, town, post_code`

// UserDAO выполняет операции над таблицей users. Каждый вызов — одна транзакция.
type UserDAO struct {
	db TxBeginner
}

// NewUserDAO создаёт DAO пользователей поверх указанного хранилища.
func NewUserDAO(db TxBeginner) *UserDAO {
	return &UserDAO{db: db}
}

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email,
		&u.FirstLineOfAddress, &u.SecondLineOfAddress, &u.Town, &u.PostCode,
	)
	return u, err
}

// CreateUser сохраняет пользователя и возвращает его с присвоенным идентификатором.
func (d *UserDAO) CreateUser(ctx context.Context, u model.User) (model.User, error) {
	err := inTx(ctx, d.db, "create user", func(tx pgx.Tx) error {
		return tx.QueryRow(ctx,
			`INSERT INTO users (first_name, last_name, email, first_line_of_address, second_line_of_address, town, post_code)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING id`,
			u.FirstName, u.LastName, u.Email, u.FirstLineOfAddress, u.SecondLineOfAddress, u.Town, u.PostCode,
		).Scan(&u.ID)
	})
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

// GetUser возвращает пользователя по идентификатору.
func (d *UserDAO) GetUser(ctx context.Context, id int64) (model.User, error) {
	var u model.User
	err := inTx(ctx, d.db, "get user", func(tx pgx.Tx) error {
		var err error
		u, err = getUser(ctx, tx, id)
		return err
	})
	return u, err
}

func getUser(ctx context.Context, tx pgx.Tx, id int64) (model.User, error) {
	u, err := scanUser(tx.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("select user: %w", err)
	}
	return u, nil
}

// ListUsers возвращает всех пользователей в порядке создания.
func (d *UserDAO) ListUsers(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	err := inTx(ctx, d.db, "list users", func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
		if err != nil {
			return fmt.Errorf("select users: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			u, err := scanUser(rows)
			if err != nil {
				return fmt.Errorf("scan user: %w", err)
			}
			users = append(users, u)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("rows error: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser перезаписывает все изменяемые поля пользователя.
func (d *UserDAO) UpdateUser(ctx context.Context, id int64, u model.User) (model.User, error) {
	var updated model.User
	err := inTx(ctx, d.db, "update user", func(tx pgx.Tx) error {
		var err error
		updated, err = scanUser(tx.QueryRow(ctx,
			`UPDATE users
			 SET first_name = $2, last_name = $3, email = $4, first_line_of_address = $5,
			     second_line_of_address = $6, town = $7, post_code = $8
			 WHERE id = $1
			 RETURNING `+userColumns,
			id, u.FirstName, u.LastName, u.Email, u.FirstLineOfAddress, u.SecondLineOfAddress, u.Town, u.PostCode,
		))
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	})
	return updated, err
}

// PatchUser перезаписывает только переданные поля. Пустое обновление возвращает текущую запись.
func (d *UserDAO) PatchUser(ctx context.Context, id int64, p model.PartialUserUpdate) (model.User, error) {
	var updated model.User
	err := inTx(ctx, d.db, "patch user", func(tx pgx.Tx) error {
		if p.IsEmpty() {
			var err error
			updated, err = getUser(ctx, tx, id)
			return err
		}

		q := &query{}
		set := &assignments{q: q}
		setString(set, "first_name", p.FirstName)
		setString(set, "last_name", p.LastName)
		setString(set, "email", p.Email)
		setString(set, "first_line_of_address", p.FirstLineOfAddress)
		if p.SecondLineOfAddress.Set {
			var v *string
			if !p.SecondLineOfAddress.Null {
				v = &p.SecondLineOfAddress.Value
			}
			set.set("second_line_of_address", v)
		}
		setString(set, "town", p.Town)
		setString(set, "post_code", p.PostCode)

		where := (&predicate{q: q}).eq("id", id)

		var err error
		updated, err = scanUser(tx.QueryRow(ctx,
			`UPDATE users SET `+set.String()+` WHERE `+where.String()+` RETURNING `+userColumns,
			q.args...,
		))
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	})
	return updated, err
}

func setString(set *assignments, col string, f model.Field[string]) {
	if f.Present() {
		set.set(col, f.Value)
	}
}

// DeleteUser удаляет пользователя вместе с его заказами и сообщает, была ли удалена запись.
func (d *UserDAO) DeleteUser(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := inTx(ctx, d.db, "delete user", func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
		if err != nil {
			return err
		}
		deleted = tag.RowsAffected() > 0
		return nil
	})
	return deleted, err
}
