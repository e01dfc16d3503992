package main

import (
	"fmt"

	"alethea-inspector/internal/services/mintreport"

	"github.com/spf13/cobra"
)

// newRunCmd: run [destination_address] [amount]
// 两个位置参数都可省略；amount 只展示，不参与请求。
func newRunCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "run [destination_address] [amount]",
		Short: "Check balance and token info, then print minting guidance",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			address := env.cfg.DefaultAddress
			if len(args) > 0 {
				address = args[0]
			}
			amount := env.cfg.DefaultAmount
			if len(args) > 1 {
				amount = args[1]
			}

			r := mintreport.New(env.cfg, env.stdout, env.logger)
			rep := r.Report(cmd.Context(), address, amount)
			if rep.Failed() {
				return fmt.Errorf("%w: %s; %s", mintreport.ErrTransport, rep.Balance, rep.TokenInfo)
			}
			return nil
		},
	}
}

func newInspectCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Print token counters (total minted, total burned, admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return mintreport.New(env.cfg, env.stdout, env.logger).Inspect(cmd.Context())
		},
	}
}
