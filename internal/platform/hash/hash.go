package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Text 将多个字段按换行拼接后计算 SHA-256。
// 用于日志里的请求体指纹，便于对比两次 run 是否发出了相同的请求。
func Text(parts ...string) string {
	h := sha256.New()
	for i, p := range parts {
		if i > 0 {
			_, _ = h.Write([]byte("\n"))
		}
		_, _ = h.Write([]byte(strings.TrimSpace(p)))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Short 返回指纹前 12 位，用于控制台展示。
func Short(sum string) string {
	if len(sum) <= 12 {
		return sum
	}
	return sum[:12]
}
