package socket

import (
	"strings"

	"github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authsvc "newborn_tracking/internal/api/auth/service"
	"newborn_tracking/internal/api/middleware"
	"newborn_tracking/internal/common"
	"newborn_tracking/internal/registry"
)

// Hub giữ các kết nối websocket đang mở. Kết nối được key theo
// "<userIDHex>:<uuid>" để một người dùng có thể mở nhiều kết nối song song.
// Registry được inject khi khởi tạo, không dùng biến toàn cục mức package.
type Hub struct {
	clients  *registry.Registry[*Client]
	upgrader websocket.FastHTTPUpgrader
}

// NewHub tạo Hub mới với registry kết nối được inject từ ngoài.
func NewHub(clients *registry.Registry[*Client]) *Hub {
	return &Hub{
		clients: clients,
		upgrader: websocket.FastHTTPUpgrader{
			// Origin đã được CORS middleware kiểm soát ở tầng HTTP
			CheckOrigin: func(ctx *fasthttp.RequestCtx) bool { return true },
		},
	}
}

// HandleUpgrade xác thực token rồi upgrade kết nối HTTP lên websocket.
// Token nhận qua query param "token" (browser không set được header khi mở websocket)
// hoặc header Authorization dạng Bearer.
func (h *Hub) HandleUpgrade(c fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		authHeader := c.Get("Authorization")
		token = strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			token = ""
		}
	}
	if token == "" {
		middleware.HandleErrorResponse(c, common.ErrTokenMissing)
		return nil
	}

	userService, err := authsvc.NewUserService()
	if err != nil {
		middleware.HandleErrorResponse(c, common.NewError(common.ErrCodeInternalServer, "Không thể khởi tạo user service", common.StatusInternalServerError, err))
		return nil
	}
	user, err := middleware.FindUserByToken(c.Context(), userService, token)
	if err != nil {
		middleware.HandleErrorResponse(c, err)
		return nil
	}
	if user.IsBlock {
		middleware.HandleErrorResponse(c, common.ErrAccountDeactive)
		return nil
	}

	userID := user.ID
	err = h.upgrader.Upgrade(c.RequestCtx(), func(conn *websocket.Conn) {
		client := NewClient(userID, conn)
		key := userID.Hex() + ":" + uuid.NewString()
		if _, regErr := h.clients.Register(key, client); regErr != nil {
			logrus.WithError(regErr).Warn("⚠️ Socket: Không thể đăng ký kết nối vào registry")
			_ = client.Close()
			return
		}
		logrus.WithFields(logrus.Fields{"user_id": userID.Hex(), "key": key}).Debug("Socket: Kết nối mới")

		// Block tới khi client đóng kết nối
		client.ReadLoop()

		_, _ = h.clients.Clear(key, func(cl *Client) error { return cl.Close() })
		logrus.WithFields(logrus.Fields{"user_id": userID.Hex(), "key": key}).Debug("Socket: Kết nối đóng")
	})
	if err != nil {
		logrus.WithError(err).Warn("⚠️ Socket: Upgrade thất bại")
	}
	return nil
}

// Push đẩy event tới tất cả kết nối của các user trong danh sách. Best effort:
// kết nối ghi lỗi sẽ bị gỡ khỏi registry, không trả lỗi cho caller.
func (h *Hub) Push(userIDs []primitive.ObjectID, event Event) {
	if len(userIDs) == 0 {
		return
	}
	prefixes := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		prefixes[id.Hex()] = true
	}

	var deadKeys []string
	h.clients.Range(func(key string, client *Client) bool {
		idx := strings.IndexByte(key, ':')
		if idx < 0 || !prefixes[key[:idx]] {
			return true
		}
		if err := client.Send(event); err != nil {
			deadKeys = append(deadKeys, key)
		}
		return true
	})

	for _, key := range deadKeys {
		_, _ = h.clients.Clear(key, func(cl *Client) error { return cl.Close() })
	}
}

// PushAll đẩy event tới mọi kết nối đang mở.
func (h *Hub) PushAll(event Event) {
	var deadKeys []string
	h.clients.Range(func(key string, client *Client) bool {
		if err := client.Send(event); err != nil {
			deadKeys = append(deadKeys, key)
		}
		return true
	})
	for _, key := range deadKeys {
		_, _ = h.clients.Clear(key, func(cl *Client) error { return cl.Close() })
	}
}
