package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

var increaseCmd = &cobra.Command{
	Use:   "increase",
	Short: "发送交易让计数器加一，等待确认后刷新",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		env, err := newCLIEnv(ctx, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer env.Close()

		if _, err := env.connect(ctx); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "正在发送交易并等待确认...")
		hash, err := env.session.IncreaseCounter(ctx)
		if hash != (common.Hash{}) {
			fmt.Fprintf(cmd.OutOrStdout(), "交易哈希: %s\n", hash.Hex())
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(increaseCmd)
}
