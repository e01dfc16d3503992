package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// New 生成带前缀的 run id：prefix + 毫秒时间戳 + 随机后缀。
// 只用于把同一次运行的日志串起来，不落盘。
func New(prefix string) string {
	return newAt(prefix, time.Now())
}

func newAt(prefix string, now time.Time) string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	if prefix == "" {
		return fmt.Sprintf("%d_%s", now.UnixMilli(), hex.EncodeToString(buf))
	}
	return fmt.Sprintf("%s_%d_%s", prefix, now.UnixMilli(), hex.EncodeToString(buf))
}
