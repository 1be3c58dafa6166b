// Package socket - kênh realtime đẩy thông báo tiêm chủng và bảo trì tới client.
package socket

import (
	"sync"

	"github.com/fasthttp/websocket"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event là thông điệp đẩy xuống client qua websocket.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// Client là một kết nối websocket của một người dùng.
// Một người dùng có thể có nhiều kết nối (nhiều thiết bị), mỗi kết nối là một Client riêng.
type Client struct {
	UserID primitive.ObjectID
	conn   *websocket.Conn
	mu     sync.Mutex // websocket.Conn không cho phép ghi đồng thời
}

// NewClient tạo Client bao quanh một kết nối websocket đã upgrade.
func NewClient(userID primitive.ObjectID, conn *websocket.Conn) *Client {
	return &Client{
		UserID: userID,
		conn:   conn,
	}
}

// Send ghi event xuống kết nối. Best effort: lỗi ghi trả về để hub gỡ kết nối.
func (c *Client) Send(event Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(event)
}

// Close đóng kết nối.
func (c *Client) Close() error {
	return c.conn.Close()
}

// ReadLoop đọc và bỏ qua message từ client, chỉ để phát hiện kết nối đóng.
// Trả về khi kết nối lỗi hoặc bị đóng.
func (c *Client) ReadLoop() {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
