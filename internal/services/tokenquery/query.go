package tokenquery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"alethea-inspector/internal/domain/model"
)

const tokenInfoQuery = "{ tokenInfo { name symbol decimals totalSupply } }"

// BalanceQuery 生成 { balance(owner: "<owner>") }。
//
// escape=false 时 owner 原样拼接，与旧脚本发出的请求逐字节一致；
// escape=true 时按 GraphQL 字符串规则转义引号、反斜杠与控制字符。
func BalanceQuery(owner string, escape bool) string {
	if escape {
		owner = escapeGraphQLString(owner)
	}
	return `{ balance(owner: "` + owner + `") }`
}

// TokenInfoQuery 与地址、数量无关，每次都相同。
func TokenInfoQuery() string {
	return tokenInfoQuery
}

// scalarQuery 用于 totalMinted / totalBurned / admin 这类无参字段。
func scalarQuery(field string) string {
	return "{ " + field + " }"
}

// EncodeRequest 输出 {"query": "..."}（冒号后保留一个空格），不转义 HTML 字符。
func EncodeRequest(req model.QueryRequest) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(req.Query); err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}
	quoted := bytes.TrimRight(buf.Bytes(), "\n")

	out := make([]byte, 0, len(quoted)+12)
	out = append(out, `{"query": `...)
	out = append(out, quoted...)
	out = append(out, '}')
	return out, nil
}

func escapeGraphQLString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}
