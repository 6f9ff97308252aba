package cmd

import (
	"fmt"

	"counter-dapp/internal/session"

	"github.com/spf13/cobra"
)

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "连接钱包并显示账户地址",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		env, err := newCLIEnv(ctx, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer env.Close()

		address, err := env.connect(ctx)
		if err != nil {
			return err
		}

		full, _ := cmd.Flags().GetBool("full")
		if full {
			fmt.Fprintln(cmd.OutOrStdout(), address)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Connected: %s\n", session.ShortAddress(address))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addressCmd)
	addressCmd.Flags().Bool("full", false, "显示完整地址")
}
