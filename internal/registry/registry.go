// Package registry cung cấp implementation của registry pattern với generic type.
// Package này cho phép quản lý các singleton instances trong ứng dụng một cách thread-safe
// (ở đây chủ yếu là các *mongo.Collection).
package registry

import (
	"fmt"
	"sync"

	"github.com/ChiragDawra/BrainBug/internal/common"
)

// Registry là một thread-safe generic registry pattern implementation.
// Type parameter T cho phép registry quản lý bất kỳ loại object nào.
// Thread-safety được đảm bảo thông qua sync.RWMutex.
type Registry[T any] struct {
	items map[string]T // Map lưu trữ các items theo key
	mu    sync.RWMutex // Mutex để đảm bảo thread-safety
}

// NewRegistry tạo và trả về một registry mới.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register đăng ký một item mới vào registry.
// Nếu item với name đã tồn tại, nó sẽ bị ghi đè.
//
// Returns:
//   - isNew: true nếu là item mới, false nếu ghi đè item cũ
//   - err: Trả về lỗi nếu name rỗng
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get lấy item theo tên.
// Trả về item và một boolean cho biết item có tồn tại hay không.
func (r *Registry[T]) Get(name string) (item T, exists bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists = r.items[name]
	return item, exists
}

// MustGet lấy item theo tên, trả về lỗi nếu không tồn tại.
// Dùng ở các service khi collection bắt buộc phải có sẵn.
func (r *Registry[T]) MustGet(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists := r.items[name]
	if !exists {
		var zero T
		return zero, fmt.Errorf("item %q not registered: %w", name, common.ErrNotFound)
	}
	return item, nil
}

// Keys trả về danh sách tên các items đã đăng ký.
func (r *Registry[T]) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.items))
	for k := range r.items {
		keys = append(keys, k)
	}
	return keys
}

// Clear xóa một item khỏi registry.
func (r *Registry[T]) Clear(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, name)
}

// ClearAll xóa toàn bộ items khỏi registry.
func (r *Registry[T]) ClearAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make(map[string]T)
}
