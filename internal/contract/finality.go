package contract

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"counter-dapp/pkg/logger"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrTxReverted = errors.New("transaction reverted")
	ErrTxTimeout  = errors.New("timed out waiting for transaction receipt")
)

// ReceiptFetcher 只需要 ethclient 的回执查询能力
type ReceiptFetcher interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// ReceiptWaiter 通过轮询交易回执等待交易上链
type ReceiptWaiter struct {
	client   ReceiptFetcher
	interval time.Duration
	timeout  time.Duration
}

// NewReceiptWaiter interval <= 0 时使用 3 秒；timeout <= 0 表示只受 ctx 控制
func NewReceiptWaiter(client ReceiptFetcher, interval, timeout time.Duration) *ReceiptWaiter {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	return &ReceiptWaiter{
		client:   client,
		interval: interval,
		timeout:  timeout,
	}
}

// WaitFinality 阻塞直到回执出现。
// ethereum.NotFound 表示仍在 mempool 中，继续轮询；其他 RPC 错误直接返回。
func (w *ReceiptWaiter) WaitFinality(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		receipt, err := w.client.TransactionReceipt(ctx, hash)
		switch {
		case err == nil:
			if receipt.Status != types.ReceiptStatusSuccessful {
				return receipt, fmt.Errorf("%w: %s", ErrTxReverted, hash.Hex())
			}
			logger.Info("交易已确认",
				zap.String("tx", hash.Hex()),
				zap.Uint64("block", blockNumber(receipt)),
				zap.String("fee_eth", FeeInEther(receipt).String()))
			return receipt, nil
		case errors.Is(err, ethereum.NotFound):
			logger.Debug("回执尚未出现，继续等待", zap.String("tx", hash.Hex()))
		default:
			if ctx.Err() != nil {
				return nil, waitErr(ctx, hash)
			}
			return nil, fmt.Errorf("fetch receipt %s: %w", hash.Hex(), err)
		}

		select {
		case <-ctx.Done():
			return nil, waitErr(ctx, hash)
		case <-ticker.C:
		}
	}
}

// FeeInEther 计算 gasUsed * effectiveGasPrice，单位 ETH
func FeeInEther(receipt *types.Receipt) decimal.Decimal {
	if receipt == nil || receipt.EffectiveGasPrice == nil {
		return decimal.Zero
	}
	wei := new(big.Int).Mul(new(big.Int).SetUint64(receipt.GasUsed), receipt.EffectiveGasPrice)
	return decimal.NewFromBigInt(wei, -18)
}

func waitErr(ctx context.Context, hash common.Hash) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrTxTimeout, hash.Hex())
	}
	return ctx.Err()
}

func blockNumber(receipt *types.Receipt) uint64 {
	if receipt.BlockNumber == nil {
		return 0
	}
	return receipt.BlockNumber.Uint64()
}
