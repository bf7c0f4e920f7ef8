package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mmeshcher/users-orders-api/internal/model"
)

const orderColumns = `id, description, price_in_pence, completed_status, user_id`

// OrderDAO выполняет операции над таблицей orders.
// Все операции, кроме создания и списка, ограничены парой (id заказа, id владельца):
// чужой заказ неотличим от несуществующего.
type OrderDAO struct {
	db TxBeginner
}

// NewOrderDAO создаёт DAO заказов поверх указанного хранилища.
func NewOrderDAO(db TxBeginner) *OrderDAO {
	return &OrderDAO{db: db}
}

func scanOrder(row pgx.Row) (model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.Description, &o.PriceInPence, &o.CompletedStatus, &o.UserID)
	return o, err
}

func ownedBy(q *query, userID, orderID int64) *predicate {
	return (&predicate{q: q}).eq("id", orderID).eq("user_id", userID)
}

// CreateOrder сохраняет заказ пользователя userID. Поле UserID из o игнорируется.
func (d *OrderDAO) CreateOrder(ctx context.Context, userID int64, o model.Order) (model.Order, error) {
	o.UserID = userID
	err := inTx(ctx, d.db, "create order", func(tx pgx.Tx) error {
		return tx.QueryRow(ctx,
			`INSERT INTO orders (description, price_in_pence, completed_status, user_id)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id`,
			o.Description, o.PriceInPence, o.CompletedStatus, userID,
		).Scan(&o.ID)
	})
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// GetOrder возвращает заказ orderID, если он принадлежит userID.
func (d *OrderDAO) GetOrder(ctx context.Context, userID, orderID int64) (model.Order, error) {
	var o model.Order
	err := inTx(ctx, d.db, "get order", func(tx pgx.Tx) error {
		var err error
		o, err = getOrder(ctx, tx, userID, orderID)
		return err
	})
	return o, err
}

func getOrder(ctx context.Context, tx pgx.Tx, userID, orderID int64) (model.Order, error) {
	q := &query{}
	where := ownedBy(q, userID, orderID)

	o, err := scanOrder(tx.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE `+where.String(), q.args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Order{}, ErrOrderNotFound
		}
		return model.Order{}, fmt.Errorf("select order: %w", err)
	}
	return o, nil
}

// ListOrdersByUser возвращает заказы пользователя в порядке создания.
func (d *OrderDAO) ListOrdersByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	orders := make([]model.Order, 0)
	err := inTx(ctx, d.db, "list orders", func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx,
			`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY id`,
			userID,
		)
		if err != nil {
			return fmt.Errorf("select orders: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			o, err := scanOrder(rows)
			if err != nil {
				return fmt.Errorf("scan order: %w", err)
			}
			orders = append(orders, o)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("rows error: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrder перезаписывает описание, цену и статус заказа.
func (d *OrderDAO) UpdateOrder(ctx context.Context, userID, orderID int64, o model.Order) (model.Order, error) {
	var updated model.Order
	err := inTx(ctx, d.db, "update order", func(tx pgx.Tx) error {
		q := &query{}
		set := &assignments{q: q}
		set.set("description", o.Description)
		set.set("price_in_pence", o.PriceInPence)
		set.set("completed_status", o.CompletedStatus)
		where := ownedBy(q, userID, orderID)

		var err error
		updated, err = scanOrder(tx.QueryRow(ctx,
			`UPDATE orders SET `+set.String()+` WHERE `+where.String()+` RETURNING `+orderColumns,
			q.args...,
		))
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrOrderNotFound
		}
		return err
	})
	return updated, err
}

// PatchOrder перезаписывает только переданные поля заказа.
func (d *OrderDAO) PatchOrder(ctx context.Context, userID, orderID int64, p model.PartialOrderUpdate) (model.Order, error) {
	var updated model.Order
	err := inTx(ctx, d.db, "patch order", func(tx pgx.Tx) error {
		if p.IsEmpty() {
			var err error
			updated, err = getOrder(ctx, tx, userID, orderID)
			return err
		}

		q := &query{}
		set := &assignments{q: q}
		if p.Description.Present() {
			set.set("description", p.Description.Value)
		}
		if p.PriceInPence.Present() {
			set.set("price_in_pence", p.PriceInPence.Value)
		}
		if p.CompletedStatus.Present() {
			set.set("completed_status", p.CompletedStatus.Value)
		}

		where := ownedBy(q, userID, orderID)

		var err error
		updated, err = scanOrder(tx.QueryRow(ctx,
			`UPDATE orders SET `+set.String()+` WHERE `+where.String()+` RETURNING `+orderColumns,
			q.args...,
		))
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrOrderNotFound
		}
		return err
	})
	return updated, err
}

// DeleteOrder удаляет заказ orderID пользователя userID и сообщает, была ли удалена запись.
func (d *OrderDAO) DeleteOrder(ctx context.Context, userID, orderID int64) (bool, error) {
	var deleted bool
	err := inTx(ctx, d.db, "delete order", func(tx pgx.Tx) error {
		q := &query{}
		where := ownedBy(q, userID, orderID)

		tag, err := tx.Exec(ctx, `DELETE FROM orders WHERE `+where.String(), q.args...)
		if err != nil {
			return err
		}
		deleted = tag.RowsAffected() > 0
		return nil
	})
	return deleted, err
}
