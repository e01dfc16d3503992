package mintreport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"alethea-inspector/internal/app"
	"alethea-inspector/internal/domain/model"
	"alethea-inspector/internal/services/privacy"
	"alethea-inspector/internal/services/tokenquery"

	"github.com/rs/zerolog"
)

// ErrTransport 表示至少一次查询没有拿到 HTTP 响应。
var ErrTransport = errors.New("graphql endpoint unreachable")

// Advisory 每次运行结束都会打印：本工具不能铸币，只给出替代方式。
const Advisory = `⚠️  Note: Direct minting via GraphQL is not supported.
The ALETHEA contract requires operation execution through Linera blocks.

To mint tokens, you need to:
1. Use the Linera CLI to create a block with Mint operation
2. Or use the dashboard UI which handles operation execution
3. Or implement a proper RPC client that can sign and submit blocks
`

const rule = "=================================================="

// Querier 是 Reporter 依赖的最小查询接口，tokenquery.Client 实现了它。
type Querier interface {
	Balance(ctx context.Context, owner string) model.Outcome
	TokenInfo(ctx context.Context) model.Outcome
	TotalMinted(ctx context.Context) model.Outcome
	TotalBurned(ctx context.Context) model.Outcome
	Admin(ctx context.Context) model.Outcome
}

// Reporter 查询余额与 token 信息并输出给人读的文本。
// 所有报告写 Out；诊断日志写 Logger。
type Reporter struct {
	Config  app.Config
	Querier Querier
	Out     io.Writer
	Logger  zerolog.Logger
	Masker  privacy.Masker
}

// New 按配置构造 Reporter 与底层 GraphQL 客户端。out 为 nil 时写 os.Stdout。
func New(cfg app.Config, out io.Writer, log zerolog.Logger) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	mode, ok := privacy.ParseMode(cfg.PrivacyMode)
	if !ok {
		mode = privacy.ModeOff
	}

	c := tokenquery.NewClient(cfg.Endpoint())
	c.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	c.EscapeArgs = cfg.EscapeArgs
	c.Logger = log

	return &Reporter{
		Config:  cfg,
		Querier: c,
		Out:     out,
		Logger:  log,
		Masker:  privacy.Masker{Mode: mode},
	}
}

// Report 按顺序：打印抬头 -> 查余额 -> 查 token 信息 -> 打印铸币说明。
// 两次查询相互独立，前一次失败不影响后一次；amount 只用于展示，不进入任何请求。
func (r *Reporter) Report(ctx context.Context, address, amount string) model.Report {
	ep := r.Config.Endpoint()
	rep := model.Report{Address: address, Amount: amount, Endpoint: ep}

	log := r.Logger.With().
		Str("address", r.Masker.Address(address)).
		Str("endpoint", r.Masker.URL(ep.URL())).
		Logger()
	log.Info().Msg("report started")

	r.printHeader(address, amount)

	r.printf("🔍 Checking current balance for %s...\n", address)
	rep.Balance = r.Querier.Balance(ctx, address)
	r.printOutcome(rep.Balance, "✅ Current balance: ", "Could not check balance", false)

	r.printf("\n🪙 Checking token info...\n")
	rep.TokenInfo = r.Querier.TokenInfo(ctx)
	r.printOutcome(rep.TokenInfo, "✅ Token info: ", "Could not get token info", true)

	r.printf("\n%s", Advisory)

	log.Info().
		Str("balance", string(rep.Balance.Kind)).
		Str("token_info", string(rep.TokenInfo.Kind)).
		Msg("report finished")
	return rep
}

// Inspect 查询 totalMinted / totalBurned / admin，返回其中的传输层失败。
func (r *Reporter) Inspect(ctx context.Context) error {
	ep := r.Config.Endpoint()
	r.printf("🔎 Token counters for app %s on chain %s\n", ep.AppID, ep.ChainID)

	var failed []string
	for _, q := range []struct {
		label string
		run   func(context.Context) model.Outcome
	}{
		{"Total minted", r.Querier.TotalMinted},
		{"Total burned", r.Querier.TotalBurned},
		{"Admin", r.Querier.Admin},
	} {
		out := q.run(ctx)
		r.printOutcome(out, "✅ "+q.label+": ", "Could not get "+strings.ToLower(q.label), false)
		if out.Kind == model.OutcomeTransportError {
			failed = append(failed, out.Name)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("%w: %s", ErrTransport, strings.Join(failed, ", "))
	}
	return nil
}

func (r *Reporter) printHeader(address, amount string) {
	r.printf("🚀 ALETHEA Token Mint Script\n")
	r.printf("%s\n", rule)
	r.printf("To Address: %s\n", address)
	r.printf("Amount: %s\n", amount)
	r.printf("Chain ID: %s\n", r.Config.ChainID)
	r.printf("App ID: %s\n", r.Config.AppID)
	r.printf("%s\n\n", rule)
}

func (r *Reporter) printOutcome(out model.Outcome, okPrefix, failPrefix string, indent bool) {
	switch out.Kind {
	case model.OutcomeSuccess:
		body := bytes.TrimSpace(out.Body)
		if indent {
			var buf bytes.Buffer
			if err := json.Indent(&buf, body, "", "  "); err == nil {
				body = buf.Bytes()
			}
		}
		r.printf("%s%s\n", okPrefix, body)
	case model.OutcomeApplicationError:
		r.printf("⚠️  %s: %d\n", failPrefix, out.StatusCode)
		r.printf("Response: %s\n", out.Body)
	default:
		r.printf("⚠️  %s: could not reach %s: %v\n", failPrefix, r.Config.Endpoint().URL(), out.Err)
	}
}

func (r *Reporter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.Out, format, args...)
}
