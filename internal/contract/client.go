package contract

import (
	"context"
	"fmt"
	"math/big"

	"counter-dapp/pkg/config"
	"counter-dapp/pkg/logger"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// Client 持有固定的 RPC 连接与合约地址，所有句柄都从这里派生
type Client struct {
	rpc     *ethclient.Client
	address common.Address
	abi     abi.ABI
	chainID *big.Int
	waiter  *ReceiptWaiter
}

// Dial 连接 RPC 节点。chain_id 未配置时向节点查询。
func Dial(ctx context.Context, cfg config.ChainConfig) (*Client, error) {
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("invalid contract address %q", cfg.ContractAddress)
	}

	parsed, err := ParseABI()
	if err != nil {
		return nil, fmt.Errorf("parse counter abi: %w", err)
	}

	rpc, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		return nil, fmt.Errorf("dial rpc %s: %w", cfg.RpcUrl, err)
	}

	chainID := big.NewInt(cfg.ChainID)
	if cfg.ChainID == 0 {
		chainID, err = rpc.ChainID(ctx)
		if err != nil {
			rpc.Close()
			return nil, fmt.Errorf("query chain id: %w", err)
		}
	}

	logger.Info("RPC 已连接",
		zap.String("rpc", cfg.RpcUrl),
		zap.String("contract", cfg.ContractAddress),
		zap.String("chain_id", chainID.String()))

	return &Client{
		rpc:     rpc,
		address: common.HexToAddress(cfg.ContractAddress),
		abi:     parsed,
		chainID: chainID,
		waiter:  NewReceiptWaiter(rpc, cfg.PollInterval, cfg.FinalityTimeout),
	}, nil
}

func (c *Client) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

// NewReader 新建只读句柄
func (c *Client) NewReader() *Reader {
	return NewReader(c.address, c.abi, c.rpc)
}

// BindSigner 新建绑定签名者的句柄
func (c *Client) BindSigner(signer *bind.TransactOpts) *Transactor {
	return NewTransactor(c.address, c.abi, c.rpc, signer)
}

func (c *Client) Waiter() *ReceiptWaiter {
	return c.waiter
}

func (c *Client) Close() {
	c.rpc.Close()
}
