package cache_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/yeisme/schoolvault/pkg/cache"
)

// testNews 测试用的新闻结构体.
type testNews struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
}

// mockKVStore 模拟KV存储实现.
type mockKVStore struct {
	data map[string][]byte
}

func newMockKVStore() *mockKVStore {
	return &mockKVStore{
		data: make(map[string][]byte),
	}
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if value, exists := m.data[key]; exists {
		return value, nil
	}

	return nil, fmt.Errorf("key not found")
}

func (m *mockKVStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.data[key] = value

	return nil
}

func (m *mockKVStore) Delete(ctx context.Context, key string) error {
	delete(m.data, key)

	return nil
}

func (m *mockKVStore) Exists(ctx context.Context, key string) (bool, error) {
	_, exists := m.data[key]

	return exists, nil
}

func (m *mockKVStore) Keys(ctx context.Context, pattern string) ([]string, error) {
	keys := make([]string, 0, len(m.data))
	for key := range m.data {
		keys = append(keys, key)
	}

	return keys, nil
}

func (m *mockKVStore) Close() error {
	return nil
}

// TestNewCache 测试 NewCache 函数.
func TestNewCache(t *testing.T) {
	mockStore := newMockKVStore()
	c := cache.NewCache(mockStore)

	if c == nil {
		t.Fatal("NewCache returned nil")
	}
}

// TestCache_GetSet 测试 Get/Set 往返.
func TestCache_GetSet(t *testing.T) {
	mockStore := newMockKVStore()
	c := cache.NewCache(mockStore)
	ctx := context.Background()

	// 测试获取不存在的键
	_, err := cache.Get[testNews](ctx, c, "nonexistent")
	if err == nil {
		t.Error("Expected error for nonexistent key")
	}

	// 设置测试数据
	item := testNews{ID: 1, Title: "Sports Day", Image: "https://example.com/a.jpg"}

	err = cache.Set(ctx, c, "news:1", item, 0)
	if err != nil {
		t.Fatalf("Failed to set cache: %v", err)
	}

	// 获取存在的键
	got, err := cache.Get[testNews](ctx, c, "news:1")
	if err != nil {
		t.Fatalf("Failed to get cache: %v", err)
	}

	if got.ID != item.ID || got.Title != item.Title || got.Image != item.Image {
		t.Errorf("Retrieved item %+v does not match original %+v", got, item)
	}
}

// TestCache_Delete 测试 Delete 方法.
func TestCache_Delete(t *testing.T) {
	mockStore := newMockKVStore()
	c := cache.NewCache(mockStore)
	ctx := context.Background()

	err := cache.Set(ctx, c, "news:3", testNews{ID: 3, Title: "Science Fair"}, 0)
	if err != nil {
		t.Fatalf("Failed to set cache: %v", err)
	}

	exists, err := c.Exists(ctx, "news:3")
	if err != nil || !exists {
		t.Errorf("Key should exist before deletion, exists=%v err=%v", exists, err)
	}

	err = c.Delete(ctx, "news:3")
	if err != nil {
		t.Fatalf("Failed to delete cache: %v", err)
	}

	exists, err = c.Exists(ctx, "news:3")
	if err != nil {
		t.Fatalf("Failed to check existence after deletion: %v", err)
	}

	if exists {
		t.Error("Key should not exist after deletion")
	}
}

// TestGetOrSet 测试 GetOrSet 方法.
func TestGetOrSet(t *testing.T) {
	mockStore := newMockKVStore()
	c := cache.NewCache(mockStore)
	ctx := context.Background()

	callCount := 0
	getter := func() ([]testNews, error) {
		callCount++

		return []testNews{{ID: 5, Title: "Annual Day"}}, nil
	}

	// 第一次调用，应该调用getter
	first, err := cache.GetOrSet(ctx, c, "news:list", getter, 0)
	if err != nil {
		t.Fatalf("Failed to get or set: %v", err)
	}

	if callCount != 1 {
		t.Errorf("Expected getter to be called once, got %d", callCount)
	}

	// 第二次调用，应该从缓存获取
	second, err := cache.GetOrSet(ctx, c, "news:list", getter, 0)
	if err != nil {
		t.Fatalf("Failed to get or set: %v", err)
	}

	if callCount != 1 {
		t.Errorf("Expected getter to be called only once, got %d", callCount)
	}

	if len(first) != len(second) || first[0].ID != second[0].ID {
		t.Errorf("Results don't match: %+v vs %+v", first, second)
	}
}

// TestGetOrSet_GetterError 测试 GetOrSet 方法中 getter 返回错误的情况.
func TestGetOrSet_GetterError(t *testing.T) {
	mockStore := newMockKVStore()
	c := cache.NewCache(mockStore)
	ctx := context.Background()

	getter := func() (testNews, error) {
		return testNews{}, errors.New("getter error")
	}

	_, err := cache.GetOrSet(ctx, c, "news:error", getter, 0)
	if err == nil {
		t.Error("Expected error from getter")
	}

	if err.Error() != "getter error" {
		t.Errorf("Expected 'getter error', got '%s'", err.Error())
	}
}

// TestCache_InvalidatePrefix 测试按前缀失效列表缓存.
func TestCache_InvalidatePrefix(t *testing.T) {
	mockStore := newMockKVStore()
	c := cache.NewCache(mockStore)
	ctx := context.Background()

	keys := []string{"news:list", "news:list:page=2", "events:list"}
	for _, key := range keys {
		if err := cache.Set(ctx, c, key, "cached", 0); err != nil {
			t.Fatalf("Failed to set %s: %v", key, err)
		}
	}

	if err := c.InvalidatePrefix(ctx, "news:"); err != nil {
		t.Fatalf("Failed to invalidate prefix: %v", err)
	}

	for _, key := range []string{"news:list", "news:list:page=2"} {
		if exists, _ := c.Exists(ctx, key); exists {
			t.Errorf("Key %s should be invalidated", key)
		}
	}

	if exists, _ := c.Exists(ctx, "events:list"); !exists {
		t.Error("Key events:list should survive news invalidation")
	}
}

// TestCache_Clear 测试 Clear 方法.
func TestCache_Clear(t *testing.T) {
	mockStore := newMockKVStore()
	c := cache.NewCache(mockStore)
	ctx := context.Background()

	items := []testNews{
		{ID: 6, Title: "Library Week"},
		{ID: 7, Title: "Art Exhibition"},
		{ID: 8, Title: "Math Olympiad"},
	}

	for i, item := range items {
		key := fmt.Sprintf("news:%d", item.ID)

		err := cache.Set(ctx, c, key, item, 0)
		if err != nil {
			t.Fatalf("Failed to set cache for item %d: %v", i, err)
		}
	}

	if len(mockStore.data) != len(items) {
		t.Errorf("Expected %d items, got %d", len(items), len(mockStore.data))
	}

	err := c.Clear(ctx)
	if err != nil {
		t.Fatalf("Failed to clear cache: %v", err)
	}

	if len(mockStore.data) != 0 {
		t.Errorf("Expected 0 items after clear, got %d", len(mockStore.data))
	}
}

// TestCache_GenericTypes 测试缓存对不同数据类型的支持.
func TestCache_GenericTypes(t *testing.T) {
	mockStore := newMockKVStore()
	c := cache.NewCache(mockStore)
	ctx := context.Background()

	// 测试字符串类型
	err := cache.Set(ctx, c, "string:key", "hello world", 0)
	if err != nil {
		t.Fatalf("Failed to set string: %v", err)
	}

	str, err := cache.Get[string](ctx, c, "string:key")
	if err != nil {
		t.Fatalf("Failed to get string: %v", err)
	}

	if str != "hello world" {
		t.Errorf("Expected 'hello world', got '%s'", str)
	}

	// 测试整数类型
	err = cache.Set(ctx, c, "int:key", 42, 0)
	if err != nil {
		t.Fatalf("Failed to set int: %v", err)
	}

	num, err := cache.Get[int](ctx, c, "int:key")
	if err != nil {
		t.Fatalf("Failed to get int: %v", err)
	}

	if num != 42 {
		t.Errorf("Expected 42, got %d", num)
	}

	// 测试切片类型
	slice := []string{"a", "b", "c"}

	err = cache.Set(ctx, c, "slice:key", slice, 0)
	if err != nil {
		t.Fatalf("Failed to set slice: %v", err)
	}

	retrievedSlice, err := cache.Get[[]string](ctx, c, "slice:key")
	if err != nil {
		t.Fatalf("Failed to get slice: %v", err)
	}

	if len(retrievedSlice) != len(slice) {
		t.Errorf("Slice length mismatch: expected %d, got %d", len(slice), len(retrievedSlice))
	}

	for i, v := range slice {
		if retrievedSlice[i] != v {
			t.Errorf("Slice element %d mismatch: expected %s, got %s", i, v, retrievedSlice[i])
		}
	}
}
