package model

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// Field хранит необязательное значение с тремя состояниями:
// поле отсутствует, передано как null, передано со значением.
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some возвращает заполненное поле.
func Some[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Null возвращает поле, явно переданное как null.
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

// Present сообщает, что поле передано и содержит значение.
func (f Field[T]) Present() bool {
	return f.Set && !f.Null
}

// UnmarshalJSON вызывается только для ключей, присутствующих в документе.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

// IsEmpty сообщает, что обновление ничего не меняет: ни одно поле не передано
// со значением, а secondLineOfAddress не передан вовсе. null для обязательных
// полей не учитывается.
func (p PartialUserUpdate) IsEmpty() bool {
	return !p.FirstName.Present() && !p.LastName.Present() && !p.Email.Present() &&
		!p.FirstLineOfAddress.Present() && !p.SecondLineOfAddress.Set &&
		!p.Town.Present() && !p.PostCode.Present()
}

// IsEmpty сообщает, что обновление не содержит ни одного поля со значением.
func (p PartialOrderUpdate) IsEmpty() bool {
	return !p.Description.Present() && !p.PriceInPence.Present() && !p.CompletedStatus.Present()
}
