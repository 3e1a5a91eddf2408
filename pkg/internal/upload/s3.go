package upload

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"

	"github.com/yeisme/schoolvault/pkg/configs"
	"github.com/yeisme/schoolvault/pkg/internal/storage/s3"
)

// S3Store 对象存储策略，复用存储层的 MinIO 客户端与桶配置.
type S3Store struct {
	client *s3.Client
}

// NewS3Store 创建对象存储策略.
func NewS3Store(client *s3.Client) *S3Store {
	return &S3Store{client: client}
}

// Strategy 实现 Store.
func (s *S3Store) Strategy() configs.UploadStrategy { return configs.UploadStrategyS3 }

// Save 上传对象并返回公开访问地址.
func (s *S3Store) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.client.Bucket(), key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload: put object %s: %w", key, err)
	}
	return s.client.PublicURL(key), nil
}

// Remove 删除对象，MinIO 对不存在的对象同样返回成功.
func (s *S3Store) Remove(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.client.Bucket(), key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("upload: remove object %s: %w", key, err)
	}
	return nil
}

// List 枚举桶内全部对象.
func (s *S3Store) List(ctx context.Context) ([]StoredObject, error) {
	var objects []StoredObject
	for obj := range s.client.ListObjects(ctx, s.client.Bucket(), minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("upload: list objects: %w", obj.Err)
		}
		objects = append(objects, StoredObject{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}
	return objects, nil
}
