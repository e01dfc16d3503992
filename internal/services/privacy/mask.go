package privacy

import (
	"net/url"
	"regexp"
	"strings"
)

// Mode 控制日志里是否脱敏。stdout 上的报告始终是原文。
type Mode string

const (
	ModeOff    Mode = "off"
	ModeMasked Mode = "masked"
)

var (
	reLineraOwner = regexp.MustCompile(`^(?i)(0x)?[0-9a-f]{64}$`)
	reEVMAddress  = regexp.MustCompile(`^(?i)0x[0-9a-f]{40}$`)
	reURLScheme   = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)
)

// ParseMode 解析 --privacy-mode，空值视为 off。
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeOff:
		return ModeOff, true
	case ModeMasked:
		return ModeMasked, true
	default:
		return "", false
	}
}

// Masker 按模式决定是否脱敏。
type Masker struct {
	Mode Mode
}

func (m Masker) Address(addr string) string {
	if m.Mode != ModeMasked {
		return addr
	}
	return MaskAddress(addr)
}

func (m Masker) URL(raw string) string {
	if m.Mode != ModeMasked {
		return raw
	}
	return MaskURL(raw)
}

// MaskAddress 保留前 6 位与后 4 位。
// 不像账户地址的输入直接返回 "<masked>"，避免把任意字符串写进日志。
func MaskAddress(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return ""
	}
	if !looksLikeAddress(addr) {
		return "<masked>"
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}

func looksLikeAddress(s string) bool {
	return reLineraOwner.MatchString(s) || reEVMAddress.MatchString(s)
}

// MaskURL 把 URL 降级为“仅保留主机名”，chain/app id 等路径信息不进日志。
// 输入不是合法 URL 时，返回 "<masked_url>"。
func MaskURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !reURLScheme.MatchString(raw) {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "<masked_url>"
	}
	host := strings.TrimSpace(u.Hostname())
	if host == "" {
		return "<masked_url>"
	}
	return host
}
