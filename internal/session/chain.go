package session

import (
	"context"

	"counter-dapp/internal/contract"
	"counter-dapp/internal/wallet"

	"github.com/ethereum/go-ethereum/common"
)

// CounterReader 只读合约句柄
type CounterReader interface {
	GetCounter(ctx context.Context) (uint32, error)
}

// CounterTransactor 绑定签名者的合约句柄
type CounterTransactor interface {
	IncreaseCounter(ctx context.Context) (common.Hash, error)
}

// Chain 会话依赖的链上能力: 只读句柄、签名句柄、等待交易最终确认
type Chain interface {
	NewReader() CounterReader
	BindSigner(account *wallet.Account) CounterTransactor
	WaitFinality(ctx context.Context, hash common.Hash) error
}

type contractChain struct {
	client *contract.Client
}

// NewContractChain 把 contract.Client 适配为 Chain
func NewContractChain(client *contract.Client) Chain {
	return &contractChain{client: client}
}

func (c *contractChain) NewReader() CounterReader {
	return c.client.NewReader()
}

func (c *contractChain) BindSigner(account *wallet.Account) CounterTransactor {
	return c.client.BindSigner(account.Signer)
}

func (c *contractChain) WaitFinality(ctx context.Context, hash common.Hash) error {
	_, err := c.client.Waiter().WaitFinality(ctx, hash)
	return err
}
