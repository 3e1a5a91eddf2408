package kv_test

import (
	"context"
	crand "crypto/rand"
	"fmt"
	mrand "math/rand"
	"testing"
	"time"

	"github.com/yeisme/schoolvault/pkg/configs"
	"github.com/yeisme/schoolvault/pkg/internal/storage/kv"
)

// newStores 构建所有本地可用的 KV 实现.
func newStores(t *testing.T) map[string]kv.KVStore {
	t.Helper()

	ctx := context.Background()

	mem, err := kv.NewKVStore(ctx, kv.KVTypeMemory, nil)
	if err != nil {
		t.Fatalf("create memory kv: %v", err)
	}

	gc, err := kv.NewKVStore(ctx, kv.KVTypeGroupcache, &configs.GroupcacheKVConfig{
		Name:       fmt.Sprintf("test-groupcache-%d", mrand.Int()),
		CacheBytes: 8 * 1024 * 1024,
	})
	if err != nil {
		t.Fatalf("create groupcache kv: %v", err)
	}

	return map[string]kv.KVStore{"memory": mem, "groupcache": gc}
}

// TestKVBasic 测试 Set/Get/Exists/Delete 基本流程.
func TestKVBasic(t *testing.T) {
	ctx := context.Background()

	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			key := "news:list:page=1"
			value := []byte(`[{"id":1,"title":"Sports Day"}]`)

			if err := store.Set(ctx, key, value, 0); err != nil {
				t.Fatalf("set failed: %v", err)
			}

			got, err := store.Get(ctx, key)
			if err != nil {
				t.Fatalf("get failed: %v", err)
			}

			if string(got) != string(value) {
				t.Errorf("got %q, want %q", got, value)
			}

			exists, err := store.Exists(ctx, key)
			if err != nil || !exists {
				t.Errorf("expected key to exist, got exists=%v err=%v", exists, err)
			}

			if err := store.Delete(ctx, key); err != nil {
				t.Fatalf("delete failed: %v", err)
			}

			if _, err := store.Get(ctx, key); err == nil {
				t.Error("expected error after delete, got nil")
			}
		})
	}
}

// TestKVOverwriteAndDeleteVisible 测试覆盖写与删除对后续读取立即生效，
// 读穿透缓存里已装入的旧值不能再被读到.
func TestKVOverwriteAndDeleteVisible(t *testing.T) {
	ctx := context.Background()

	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			key := "list:news"
			if err := store.Set(ctx, key, []byte("v1"), 0); err != nil {
				t.Fatalf("set failed: %v", err)
			}

			// 先读一次，让读穿透缓存装入当前值
			if _, err := store.Get(ctx, key); err != nil {
				t.Fatalf("warm get failed: %v", err)
			}

			if err := store.Set(ctx, key, []byte("v2"), 0); err != nil {
				t.Fatalf("overwrite failed: %v", err)
			}

			got, err := store.Get(ctx, key)
			if err != nil {
				t.Fatalf("get after overwrite failed: %v", err)
			}
			if string(got) != "v2" {
				t.Errorf("got stale value %q after overwrite", got)
			}

			if err := store.Delete(ctx, key); err != nil {
				t.Fatalf("delete failed: %v", err)
			}

			if _, err := store.Get(ctx, key); err == nil {
				t.Error("expected error after delete, got stale value")
			}
		})
	}
}

// TestKVTTLExpiry 测试 TTL 包装器在读取时惰性过期.
func TestKVTTLExpiry(t *testing.T) {
	ctx := context.Background()

	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			// 1ns 的 TTL 落在当前 unix 秒内，读取时必然已过期
			if err := store.Set(ctx, "ephemeral", []byte("x"), time.Nanosecond); err != nil {
				t.Fatalf("set failed: %v", err)
			}

			if _, err := store.Get(ctx, "ephemeral"); err == nil {
				t.Error("expected expired key to be missing, got value")
			}
		})
	}
}

// TestKVGetReturnsCopy 测试 Get 返回副本，修改不影响存储值.
func TestKVGetReturnsCopy(t *testing.T) {
	ctx := context.Background()

	store, err := kv.NewKVStore(ctx, kv.KVTypeMemory, nil)
	if err != nil {
		t.Fatalf("create memory kv: %v", err)
	}
	defer store.Close()

	if err := store.Set(ctx, "k", []byte("abc"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, _ := store.Get(ctx, "k")
	got[0] = 'z'

	again, _ := store.Get(ctx, "k")
	if string(again) != "abc" {
		t.Errorf("stored value mutated: %q", again)
	}
}

// randBytes returns n random bytes for bench payloads.
func randBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := crand.Read(b); err != nil {
		mr := mrand.New(mrand.NewSource(42))
		for i := range b {
			b[i] = byte(mr.Intn(256))
		}
	}

	return b
}

func BenchmarkMemoryKV(b *testing.B) {
	store, err := kv.NewKVStore(context.Background(), kv.KVTypeMemory, nil)
	if err != nil {
		b.Fatalf("create memory kv: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	payload := randBytes(1024)

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		key := fmt.Sprintf("bench-%d", i)
		if err := store.Set(ctx, key, payload, 0); err != nil {
			b.Fatalf("set failed: %v", err)
		}

		if _, err := store.Get(ctx, key); err != nil {
			b.Fatalf("get failed: %v", err)
		}

		if err := store.Delete(ctx, key); err != nil {
			b.Fatalf("delete failed: %v", err)
		}
	}
}
