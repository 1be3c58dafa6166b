package socket

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newborn_tracking/internal/common"
	"newborn_tracking/internal/registry"
)

func ungDungTest(hub *Hub) *fiber.App {
	app := fiber.New()
	app.Get("/ws", hub.HandleUpgrade)
	return app
}

func TestHandleUpgrade_ThieuToken(t *testing.T) {
	hub := NewHub(registry.NewRegistry[*Client]())
	app := ungDungTest(hub)

	resp, err := app.Test(httptest.NewRequest("GET", "/ws", nil))
	require.NoError(t, err)
	assert.Equal(t, common.StatusUnauthorized, resp.StatusCode)
}

func TestHandleUpgrade_NhanTokenTuBearerHeader(t *testing.T) {
	hub := NewHub(registry.NewRegistry[*Client]())
	app := ungDungTest(hub)

	// Token lấy được từ header nên vượt qua bước kiểm tra thiếu token;
	// collection users chưa đăng ký trong môi trường test nên dừng ở bước khởi tạo service
	req := httptest.NewRequest("GET", "/ws", nil)
	req.Header.Set("Authorization", "Bearer abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.NotEqual(t, common.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, common.StatusInternalServerError, resp.StatusCode)
}
