package gen

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFakeUser_FitsSchema(t *testing.T) {
	for i := 0; i < 50; i++ {
		u := FakeUser()

		assert.Zero(t, u.ID)
		assert.NotEmpty(t, u.FirstName)
		assert.NotEmpty(t, u.Email)
		assert.LessOrEqual(t, utf8.RuneCountInString(u.FirstName), 50)
		assert.LessOrEqual(t, utf8.RuneCountInString(u.Email), 120)
		assert.LessOrEqual(t, utf8.RuneCountInString(u.PostCode), 10)
	}
}

func TestFakeOrder(t *testing.T) {
	o := FakeOrder(7)

	assert.Equal(t, int64(7), o.UserID)
	assert.NotEmpty(t, o.Description)
	assert.GreaterOrEqual(t, o.PriceInPence, int64(100))
	assert.LessOrEqual(t, o.PriceInPence, int64(100000))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "жё", truncate("жёлтый", 2))
}
