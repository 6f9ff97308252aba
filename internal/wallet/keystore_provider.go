package wallet

import (
	"context"
	"fmt"
	"math/big"

	"counter-dapp/pkg/config"
	"counter-dapp/pkg/keystore"
	"counter-dapp/pkg/logger"

	"go.uber.org/zap"
)

// KeystoreProvider 从加密的助记词 keystore 文件解锁账户
type KeystoreProvider struct {
	path           string
	derivationPath string
	chainID        *big.Int
	prompt         PasswordPrompt
}

func NewKeystoreProvider(path, derivationPath string, chainID *big.Int, prompt PasswordPrompt) *KeystoreProvider {
	return &KeystoreProvider{
		path:           path,
		derivationPath: derivationPath,
		chainID:        chainID,
		prompt:         prompt,
	}
}

func (p *KeystoreProvider) Enable(ctx context.Context) (*Account, error) {
	password, err := p.prompt(ctx)
	if err != nil {
		return nil, err
	}

	encrypted, err := keystore.LoadFromFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("加载 Keystore 失败: %w", err)
	}

	mnemonic, err := keystore.DecryptMnemonic(encrypted, password)
	if err != nil {
		return nil, err
	}
	return accountFromMnemonic(mnemonic, p.derivationPath, p.chainID)
}

// MnemonicProvider 开发环境 fallback: 直接使用配置里的助记词，不需要授权
type MnemonicProvider struct {
	mnemonic       string
	derivationPath string
	chainID        *big.Int
}

func NewMnemonicProvider(mnemonic, derivationPath string, chainID *big.Int) *MnemonicProvider {
	return &MnemonicProvider{
		mnemonic:       mnemonic,
		derivationPath: derivationPath,
		chainID:        chainID,
	}
}

func (p *MnemonicProvider) Enable(ctx context.Context) (*Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return accountFromMnemonic(p.mnemonic, p.derivationPath, p.chainID)
}

// Detect 返回当前环境中可用的钱包，没有则返回 nil。
// 优先 keystore 文件；配置了 wallet.password 时不再询问用户。
func Detect(cfg config.WalletConfig, chainID *big.Int, prompt PasswordPrompt) Provider {
	if keystore.Exists(cfg.KeystorePath) {
		if cfg.Password != "" {
			prompt = StaticPassword(cfg.Password)
		}
		logger.Info("检测到 Keystore 钱包", zap.String("path", cfg.KeystorePath))
		return NewKeystoreProvider(cfg.KeystorePath, cfg.DerivationPath, chainID, prompt)
	}

	if cfg.Mnemonic != "" {
		logger.Warn("使用配置中的助记词作为钱包 (仅限开发环境)")
		return NewMnemonicProvider(cfg.Mnemonic, cfg.DerivationPath, chainID)
	}

	logger.Warn("未检测到钱包", zap.String("keystore_path", cfg.KeystorePath))
	return nil
}
