package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"counter-dapp/internal/wallet"
	"counter-dapp/pkg/bip39"
	"counter-dapp/pkg/config"
	"counter-dapp/pkg/keystore"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const minPasswordLen = 6

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "初始化一个新的钱包 (生成助记词并加密保存)",
	Long:  `生成新的 BIP-39 助记词，并使用用户输入的密码进行加密，保存为 Keystore 文件。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile, _ := cmd.Flags().GetString("output")
		if outputFile == "" {
			outputFile = config.Global.Wallet.KeystorePath
		}
		if keystore.Exists(outputFile) {
			return fmt.Errorf("文件 %s 已存在。请先删除或指定其他文件名", outputFile)
		}
		words, _ := cmd.Flags().GetInt("words")
		bitSize := 128
		if words == 24 {
			bitSize = 256
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "正在初始化新钱包...")
		fmt.Fprintln(out, "请设置一个强密码来保护您的助记词。")

		// 1. 输入密码
		password, err := readPassword(cmd, "输入密码: ")
		if err != nil {
			return err
		}
		confirm, err := readPassword(cmd, "确认密码: ")
		if err != nil {
			return err
		}
		if password != confirm {
			return errors.New("两次输入的密码不一致")
		}
		if len(password) < minPasswordLen {
			return fmt.Errorf("密码长度至少需要 %d 位", minPasswordLen)
		}

		// 2. 生成助记词
		service := bip39.NewMnemonicService()
		mnemonic, err := service.GenerateMnemonic(bitSize)
		if err != nil {
			return err
		}

		// 3. 加密并保存
		encryptedKey, err := keystore.EncryptMnemonic(mnemonic, password)
		if err != nil {
			return fmt.Errorf("加密失败: %w", err)
		}
		if err := encryptedKey.SaveToFile(outputFile); err != nil {
			return fmt.Errorf("保存文件失败: %w", err)
		}

		// 4. 展示派生出的地址，方便领取测试币
		account, err := wallet.NewMnemonicProvider(mnemonic, config.Global.Wallet.DerivationPath,
			big.NewInt(config.Global.Chain.ChainID)).Enable(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "\n✅ 钱包已初始化！\n")
		fmt.Fprintf(out, "文件位置: %s\n", outputFile)
		fmt.Fprintf(out, "您的 ID: %s\n", encryptedKey.Id)
		fmt.Fprintf(out, "地址 [%s]: %s\n", config.Global.Wallet.DerivationPath, account.Address.Hex())
		fmt.Fprintln(out, "\n⚠️  警告: 请务必记住您的密码！如果丢失密码，您将无法恢复钱包。")

		fmt.Fprint(out, "\n是否需要现在显示助记词以便备份? (y/N): ")
		input, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		input = strings.TrimSpace(strings.ToLower(input))
		if input == "y" || input == "yes" {
			fmt.Fprintln(out, "\n---------------------------------------------------")
			fmt.Fprintln(out, "助记词 (请抄写在纸上并安全保管):")
			fmt.Fprintln(out, mnemonic)
			fmt.Fprintln(out, "---------------------------------------------------")
		}
		return nil
	},
}

func readPassword(cmd *cobra.Command, label string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), label)
	bytePassword, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(cmd.OutOrStdout())
	if err != nil {
		return "", fmt.Errorf("读取密码失败: %w", err)
	}
	return string(bytePassword), nil
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringP("output", "o", "", "输出的 Keystore 文件名 (默认 wallet.keystore_path)")
	initCmd.Flags().Int("words", 12, "助记词单词数 (12 或 24)")
}
