package utility

import (
	"sync"
	"time"
)

// cacheEntry là một giá trị kèm hạn sử dụng.
type cacheEntry struct {
	value     interface{}
	expiresAt time.Time
}

// Cache là cache in-memory với TTL theo từng entry, dùng cho các tra cứu
// nóng (user theo token trong auth middleware). Một process một cache,
// không cần datastore ngoài.
type Cache struct {
	items    map[string]cacheEntry
	mu       sync.RWMutex
	ttl      time.Duration
	cleanup  time.Duration
	stopChan chan struct{}
}

// NewCache tạo một instance mới của Cache và chạy vòng dọn dẹp nền.
func NewCache(ttl, cleanup time.Duration) *Cache {
	cache := &Cache{
		items:    make(map[string]cacheEntry),
		ttl:      ttl,
		cleanup:  cleanup,
		stopChan: make(chan struct{}),
	}
	go cache.cleanupLoop()
	return cache
}

// Set lưu giá trị vào cache với hạn ttl tính từ bây giờ.
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cacheEntry{value: value, expiresAt: time.Now().Add(c.ttl)}
}

// Get lấy giá trị từ cache. Entry hết hạn coi như không tồn tại.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, exists := c.items[key]
	if !exists || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.value, true
}

// Delete xóa một entry khỏi cache (dùng khi user đổi mật khẩu / logout).
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Stop dừng vòng dọn dẹp nền.
func (c *Cache) Stop() {
	close(c.stopChan)
}

// cleanupLoop xóa các entry hết hạn theo chu kỳ.
func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(c.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for k, entry := range c.items {
				if now.After(entry.expiresAt) {
					delete(c.items, k)
				}
			}
			c.mu.Unlock()
		case <-c.stopChan:
			return
		}
	}
}
