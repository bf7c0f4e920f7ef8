// Package gen генерирует правдоподобных пользователей и заказы для наполнения БД и тестов.
package gen

import (
	"github.com/brianvoe/gofakeit/v6"

	"github.com/mmeshcher/users-orders-api/internal/model"
)

// FakeUser возвращает пользователя без идентификатора. Длины полей укладываются в схему.
func FakeUser() model.User {
	u := model.User{
		FirstName:          truncate(gofakeit.FirstName(), 50),
		LastName:           truncate(gofakeit.LastName(), 50),
		Email:              truncate(gofakeit.Email(), 120),
		FirstLineOfAddress: truncate(gofakeit.Street(), 50),
		Town:               truncate(gofakeit.City(), 50),
		PostCode:           truncate(gofakeit.Zip(), 10),
	}
	if gofakeit.Bool() {
		u.SecondLineOfAddress = model.StringPtr(truncate("Apt "+gofakeit.DigitN(3), 50))
	}
	return u
}

// FakeOrder возвращает заказ пользователя userID без идентификатора.
func FakeOrder(userID int64) model.Order {
	return model.Order{
		Description:     truncate(gofakeit.ProductName(), 120),
		PriceInPence:    int64(gofakeit.Number(100, 100000)),
		CompletedStatus: gofakeit.Bool(),
		UserID:          userID,
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
