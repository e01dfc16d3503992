package tokenquery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"alethea-inspector/internal/domain/model"
	"alethea-inspector/internal/platform/hash"

	"github.com/rs/zerolog"
)

// Client 通过 Linera 节点的 GraphQL 服务查询 token 应用。
//
// 只读：不签名、不出块。每次调用发出一个 POST，不重试。
// HTTPClient 为空时使用不带超时的 http.Client（与旧脚本一致）。
type Client struct {
	Endpoint   model.Endpoint
	HTTPClient *http.Client
	Logger     zerolog.Logger

	// EscapeArgs 打开后 owner 等字符串参数会按 GraphQL 规则转义。
	EscapeArgs bool
}

func NewClient(ep model.Endpoint) *Client {
	return &Client{Endpoint: ep, Logger: zerolog.Nop()}
}

// Balance 查询 owner 的余额。
func (c *Client) Balance(ctx context.Context, owner string) model.Outcome {
	return c.Do(ctx, "balance", model.QueryRequest{Query: BalanceQuery(owner, c.EscapeArgs)})
}

// TokenInfo 查询 name/symbol/decimals/totalSupply。
func (c *Client) TokenInfo(ctx context.Context) model.Outcome {
	return c.Do(ctx, "tokenInfo", model.QueryRequest{Query: TokenInfoQuery()})
}

func (c *Client) TotalMinted(ctx context.Context) model.Outcome {
	return c.Do(ctx, "totalMinted", model.QueryRequest{Query: scalarQuery("totalMinted")})
}

func (c *Client) TotalBurned(ctx context.Context) model.Outcome {
	return c.Do(ctx, "totalBurned", model.QueryRequest{Query: scalarQuery("totalBurned")})
}

func (c *Client) Admin(ctx context.Context) model.Outcome {
	return c.Do(ctx, "admin", model.QueryRequest{Query: scalarQuery("admin")})
}

// Do 发出一次查询并把结果归类为 Success / ApplicationError / TransportError。
func (c *Client) Do(ctx context.Context, name string, q model.QueryRequest) model.Outcome {
	out := model.Outcome{Name: name}

	raw, err := EncodeRequest(q)
	if err != nil {
		out.Kind = model.OutcomeTransportError
		out.Err = err
		return out
	}

	hc := c.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}

	log := c.Logger.With().Str("query", name).Str("body_sha256", hash.Short(hash.Text(string(raw)))).Logger()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint.URL(), bytes.NewReader(raw))
	if err != nil {
		out.Kind = model.OutcomeTransportError
		out.Err = fmt.Errorf("build request: %w", err)
		return out
	}
	req.Header.Set("Content-Type", "application/json")

	log.Debug().Msg("sending graphql request")
	start := time.Now()

	resp, err := hc.Do(req)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("graphql request failed")
		out.Kind = model.OutcomeTransportError
		out.Err = err
		return out
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		log.Error().Err(err).Int("status", resp.StatusCode).Msg("read graphql response")
		out.Kind = model.OutcomeTransportError
		out.Err = fmt.Errorf("read response: %w", err)
		return out
	}

	out.StatusCode = resp.StatusCode
	out.Body = b
	log.Debug().Int("status", resp.StatusCode).Dur("elapsed", time.Since(start)).Int("bytes", len(b)).Msg("graphql response")

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Msg("unexpected status code")
		out.Kind = model.OutcomeApplicationError
		return out
	}
	if !json.Valid(b) {
		log.Warn().Msg("response is not valid json")
		out.Kind = model.OutcomeApplicationError
		return out
	}
	out.Kind = model.OutcomeSuccess
	return out
}
