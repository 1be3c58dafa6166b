package socket

import "sync"

var (
	defaultHub   *Hub
	defaultHubMu sync.RWMutex
)

// SetDefaultHub gán hub mặc định cho toàn ứng dụng. Được gọi một lần lúc khởi động.
func SetDefaultHub(h *Hub) {
	defaultHubMu.Lock()
	defer defaultHubMu.Unlock()
	defaultHub = h
}

// GetDefaultHub trả về hub mặc định. Trả về nil nếu chưa được khởi tạo,
// caller phải tự kiểm tra trước khi push.
func GetDefaultHub() *Hub {
	defaultHubMu.RLock()
	defer defaultHubMu.RUnlock()
	return defaultHub
}
