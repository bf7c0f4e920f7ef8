// Package model содержит доменные сущности сервиса пользователей и заказов.
package model

// User представляет пользователя с почтовым адресом.
type User struct {
	ID                  int64   `json:"id,omitempty"`
	FirstName           string  `json:"firstName"`
	LastName            string  `json:"lastName"`
	Email               string  `json:"email"`
	FirstLineOfAddress  string  `json:"firstLineOfAddress"`
	SecondLineOfAddress *string `json:"secondLineOfAddress,omitempty"`
	Town                string  `json:"town"`
	PostCode            string  `json:"postCode"`
}

// Order описывает заказ, принадлежащий пользователю. Цена хранится в пенсах.
type Order struct {
	ID              int64  `json:"id,omitempty"`
	Description     string `json:"description"`
	PriceInPence    int64  `json:"priceInPence"`
	CompletedStatus bool   `json:"completedStatus"`
	UserID          int64  `json:"userId"`
}

// PartialUserUpdate описывает частичное обновление пользователя.
// Отсутствующие поля не изменяются.
type PartialUserUpdate struct {
	FirstName           Field[string] `json:"firstName"`
	LastName            Field[string] `json:"lastName"`
	Email               Field[string] `json:"email"`
	FirstLineOfAddress  Field[string] `json:"firstLineOfAddress"`
	SecondLineOfAddress Field[string] `json:"secondLineOfAddress"`
	Town                Field[string] `json:"town"`
	PostCode            Field[string] `json:"postCode"`
}

// PartialOrderUpdate описывает частичное обновление заказа.
// Явно переданный false для CompletedStatus перезаписывает значение.
type PartialOrderUpdate struct {
	Description     Field[string] `json:"description"`
	PriceInPence    Field[int64]  `json:"priceInPence"`
	CompletedStatus Field[bool]   `json:"completedStatus"`
}

// StringPtr возвращает указатель на копию строки.
func StringPtr(s string) *string {
	return &s
}
