// Package utility - Test các hàm convert định dạng.
package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestString2ObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	assert.Equal(t, id, String2ObjectID(id.Hex()))

	// Chuỗi không hợp lệ trả về NilObjectID, caller tự kiểm tra IsZero
	assert.True(t, String2ObjectID("khong-hop-le").IsZero())
	assert.True(t, String2ObjectID("").IsZero())
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.0 KB", FormatBytes(1024))
	assert.Equal(t, "1.5 MB", FormatBytes(1536*1024))
}

func TestUnixMilli(t *testing.T) {
	// Mốc thời gian cố định để không phụ thuộc vào rounding của nano giây
	fixed := time.UnixMilli(1700000000123)
	assert.Equal(t, int64(1700000000123), UnixMilli(fixed))

	// CurrentTimeInMilli không được nhỏ hơn mốc đã qua
	assert.GreaterOrEqual(t, CurrentTimeInMilli(), int64(1700000000123))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"admin", "staff", "bhw"}, "bhw"))
	assert.False(t, Contains([]string{"admin", "staff"}, "parent"))
	assert.False(t, Contains(nil, "admin"))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("me@tram-y-te.vn"))
	assert.Error(t, ValidateEmail("khong-phai-email"))
	assert.Error(t, ValidateEmail("thieu@domain"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("du-8-ky-tu"))
	assert.Error(t, ValidatePassword("ngan"))
}

func TestGenerateRandomCode(t *testing.T) {
	code, err := GenerateRandomCode(32)
	assert.NoError(t, err)
	assert.Len(t, code, 32)

	other, err := GenerateRandomCode(32)
	assert.NoError(t, err)
	assert.NotEqual(t, code, other)
}
