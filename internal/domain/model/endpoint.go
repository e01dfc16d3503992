package model

import "strings"

// Endpoint 描述一个 Linera 应用的 GraphQL 服务地址。
// 进程生命周期内不变；chain/app id 不做格式校验，交给节点返回错误即可。
type Endpoint struct {
	ServiceURL string `json:"service_url"`
	ChainID    string `json:"chain_id"`
	AppID      string `json:"app_id"`
}

// URL 拼接为 {service}/chains/{chain}/applications/{app}。
func (e Endpoint) URL() string {
	base := strings.TrimRight(strings.TrimSpace(e.ServiceURL), "/")
	return base + "/chains/" + e.ChainID + "/applications/" + e.AppID
}

// QueryRequest 是发送给 GraphQL 服务的请求体，只有 query 一个字段。
type QueryRequest struct {
	Query string `json:"query"`
}
