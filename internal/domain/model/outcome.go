package model

import "fmt"

// OutcomeKind 区分一次查询的三种结果。
type OutcomeKind string

const (
	OutcomeSuccess          OutcomeKind = "success"
	OutcomeApplicationError OutcomeKind = "application_error"
	OutcomeTransportError   OutcomeKind = "transport_error"
)

// Outcome 是单次 GraphQL 查询的结果。
//
// 约定：
// - Success：HTTP 200 且 body 是合法 JSON，Body 原样保留
// - ApplicationError：非 200，或 200 但 body 不是 JSON；StatusCode/Body 为原始响应
// - TransportError：没有拿到 HTTP 响应（拒绝连接、DNS、超时等），Err 非空
type Outcome struct {
	Name       string      `json:"name"`
	Kind       OutcomeKind `json:"kind"`
	StatusCode int         `json:"status_code,omitempty"`
	Body       []byte      `json:"body,omitempty"`
	Err        error       `json:"-"`
}

func (o Outcome) OK() bool { return o.Kind == OutcomeSuccess }

func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeSuccess:
		return fmt.Sprintf("%s: ok", o.Name)
	case OutcomeApplicationError:
		return fmt.Sprintf("%s: http %d", o.Name, o.StatusCode)
	default:
		return fmt.Sprintf("%s: transport error: %v", o.Name, o.Err)
	}
}

// Report 汇总一次 run 的两次查询。
type Report struct {
	Address   string   `json:"address"`
	Amount    string   `json:"amount"`
	Endpoint  Endpoint `json:"endpoint"`
	Balance   Outcome  `json:"balance"`
	TokenInfo Outcome  `json:"token_info"`
}

// Failed 表示至少有一次查询在传输层失败。
func (r Report) Failed() bool {
	return r.Balance.Kind == OutcomeTransportError || r.TokenInfo.Kind == OutcomeTransportError
}
