package upload

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/yeisme/schoolvault/pkg/configs"
)

// LocalStore 本地磁盘存储，对象写在 dir 下并通过 /uploads 静态路由对外暴露.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore 创建本地磁盘存储.
func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

// Strategy 实现 Store.
func (s *LocalStore) Strategy() configs.UploadStrategy { return configs.UploadStrategyLocal }

// Save 先写临时文件再原子重命名，避免读到半截文件.
func (s *LocalStore) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dst := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("upload: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("upload: create temp: %w", err)
	}
	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("upload: write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("upload: close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("upload: rename: %w", err)
	}
	return s.baseURL + "/uploads/" + key, nil
}

// Remove 删除文件并尽力清掉空目录，文件不存在视为成功.
func (s *LocalStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dst := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("upload: remove: %w", err)
	}
	// 分类目录空了就顺手删掉，失败无所谓
	_ = os.Remove(filepath.Dir(dst))
	return nil
}

// List 遍历存储目录，键还原为斜杠分隔的相对路径.
func (s *LocalStore) List(ctx context.Context) ([]StoredObject, error) {
	var objects []StoredObject
	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(s.dir, path)
		if err != nil {
			return err
		}
		objects = append(objects, StoredObject{
			Key:          filepath.ToSlash(rel),
			Size:         info.Size(),
			LastModified: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("upload: walk local dir: %w", err)
	}
	return objects, nil
}
