package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"counter-dapp/pkg/bip32"
	"counter-dapp/pkg/bip39"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Provider 钱包能力: 请求授权，成功后返回可签名的账户。
// Enable 可能阻塞等待用户输入 (终端密码、Web 表单)。
type Provider interface {
	Enable(ctx context.Context) (*Account, error)
}

// Account 已授权账户
type Account struct {
	Address common.Address
	Signer  *bind.TransactOpts
}

// DefaultDerivationPath BIP-44 以太坊第一个地址
const DefaultDerivationPath = "m/44'/60'/0'/0/0"

// accountFromMnemonic 助记词 -> Seed -> BIP-32 派生 -> ECDSA 私钥 -> 交易签名者
func accountFromMnemonic(mnemonic, path string, chainID *big.Int) (*Account, error) {
	seed, err := bip39.NewMnemonicService().SeedFromMnemonic(mnemonic, "")
	if err != nil {
		return nil, err
	}

	hd, err := bip32.NewMasterKeyFromSeed(seed, nil)
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultDerivationPath
	}
	key, err := hd.DerivePath(path)
	if err != nil {
		return nil, err
	}

	priv, err := key.ToECDSA()
	if err != nil {
		return nil, err
	}
	return accountFromKey(priv, chainID)
}

func accountFromKey(priv *ecdsa.PrivateKey, chainID *big.Int) (*Account, error) {
	signer, err := bind.NewKeyedTransactorWithChainID(priv, chainID)
	if err != nil {
		return nil, fmt.Errorf("create transactor: %w", err)
	}
	return &Account{
		Address: crypto.PubkeyToAddress(priv.PublicKey),
		Signer:  signer,
	}, nil
}
