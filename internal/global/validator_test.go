// Package global - Test các custom validator.
package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNoXSS(t *testing.T) {
	InitValidator()

	// Chuỗi bình thường hợp lệ
	assert.NoError(t, Validate.Var("Nguyễn Văn An", "no_xss"))

	// Các pattern nguy hiểm bị chặn, không phân biệt hoa thường
	assert.Error(t, Validate.Var("<script>alert(1)</script>", "no_xss"))
	assert.Error(t, Validate.Var("<SCRIPT>alert(1)</SCRIPT>", "no_xss"))
	assert.Error(t, Validate.Var("javascript:void(0)", "no_xss"))
	assert.Error(t, Validate.Var(`<img onerror=alert(1)>`, "no_xss"))
}

func TestValidateNoSQLInjection(t *testing.T) {
	InitValidator()

	assert.NoError(t, Validate.Var("Tram y te phuong 5", "no_sql_injection"))

	assert.Error(t, Validate.Var("a' OR '1'='1", "no_sql_injection"))
	assert.Error(t, Validate.Var("x; drop table users", "no_sql_injection"))
	assert.Error(t, Validate.Var("select * from users", "no_sql_injection"))
}

func TestValidateStrongPassword(t *testing.T) {
	InitValidator()

	// Đủ 3/4 điều kiện: hoa, thường, số
	assert.NoError(t, Validate.Var("MatKhau123", "strong_password"))
	// Đủ 3/4 điều kiện: thường, số, ký tự đặc biệt
	assert.NoError(t, Validate.Var("matkhau1!", "strong_password"))

	// Quá ngắn
	assert.Error(t, Validate.Var("Ab1!", "strong_password"))
	// Chỉ có chữ thường và số (2/4 điều kiện)
	assert.Error(t, Validate.Var("matkhau123", "strong_password"))
	// Chỉ toàn chữ thường
	assert.Error(t, Validate.Var("matkhaudai", "strong_password"))
}

func TestValidateExists_KhongCanDatabase(t *testing.T) {
	InitValidator()

	// Thiếu tên collection trong param
	assert.Error(t, Validate.Var("64f1a2b3c4d5e6f7a8b9c0d1", "exists"))

	// Chuỗi không phải hex ObjectID bị từ chối trước khi chạm tới database
	assert.Error(t, Validate.Var("khong-phai-objectid", "exists=newborns"))

	// Chuỗi rỗng được coi là optional, bỏ qua validation
	assert.NoError(t, Validate.Var("", "exists=newborns"))
}
