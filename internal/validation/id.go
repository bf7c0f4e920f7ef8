// Package validation содержит функции валидации входных данных.
package validation

import (
	"errors"
	"strconv"
)

// ErrInvalidID возвращается, если идентификатор отсутствует или не является целым числом.
var ErrInvalidID = errors.New("invalid id")

// ParseID разбирает идентификатор из параметра пути.
// Отрицательные значения допустимы: такой записи просто не будет в хранилище.
func ParseID(raw string) (int64, error) {
	if raw == "" {
		return 0, ErrInvalidID
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}

	return id, nil
}
