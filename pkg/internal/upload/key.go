package upload

import (
	"crypto/rand"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// newULID 生成单调递增的 ULID，monotonic reader 非并发安全需要加锁.
func newULID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// BuildKey 生成存储键：{images|documents}/{清洗后的文件名}_{ulid}{扩展名}.
// ULID 保证同名文件互不覆盖，键本身不含任何路径穿越成分.
func BuildKey(category Category, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	base := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	return category.keyPrefix() + "/" + sanitizeName(base) + "_" + newULID() + ext
}

// maxNameLen 清洗后文件名的长度上限.
const maxNameLen = 64

// sanitizeName 把文件名清洗为只含字母数字与连字符的安全片段.
func sanitizeName(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
			lastDash = false
		default:
			// 连续的非法字符折叠成一个连字符
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
		if b.Len() >= maxNameLen {
			break
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "file"
	}
	return out
}
