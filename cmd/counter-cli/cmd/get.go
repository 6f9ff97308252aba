package cmd

import (
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "读取计数器当前值",
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
		// 结果通过 Console 通知打印
		_, err = env.session.ReadCounter(ctx)
		return err
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
