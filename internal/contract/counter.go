package contract

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

var ErrUnexpectedOutput = errors.New("unexpected getCounter output")

// Reader 只读合约句柄，绑定 RPC 节点，不需要签名者
type Reader struct {
	contract *bind.BoundContract
}

// NewReader 每次读取都新建一个句柄，与会话状态无关
func NewReader(address common.Address, parsed abi.ABI, caller bind.ContractCaller) *Reader {
	return &Reader{
		contract: bind.NewBoundContract(address, parsed, caller, nil, nil),
	}
}

// GetCounter 调用 getCounter() view 方法
func (r *Reader) GetCounter(ctx context.Context) (uint32, error) {
	var out []interface{}
	if err := r.contract.Call(&bind.CallOpts{Context: ctx}, &out, MethodGetCounter); err != nil {
		return 0, err
	}
	if len(out) != 1 {
		return 0, fmt.Errorf("%w: %d values", ErrUnexpectedOutput, len(out))
	}
	value, ok := out[0].(uint32)
	if !ok {
		return 0, fmt.Errorf("%w: %T", ErrUnexpectedOutput, out[0])
	}
	return value, nil
}

// Transactor 绑定了已连接账户的合约句柄，可以发送交易
type Transactor struct {
	contract *bind.BoundContract
	signer   *bind.TransactOpts
}

func NewTransactor(address common.Address, parsed abi.ABI, backend bind.ContractBackend, signer *bind.TransactOpts) *Transactor {
	return &Transactor{
		contract: bind.NewBoundContract(address, parsed, backend, backend, backend),
		signer:   signer,
	}
}

// IncreaseCounter 构造、签名并广播 increaseCounter() 交易，返回交易哈希
func (t *Transactor) IncreaseCounter(ctx context.Context) (common.Hash, error) {
	opts := *t.signer
	opts.Context = ctx

	tx, err := t.contract.Transact(&opts, MethodIncreaseCounter)
	if err != nil {
		return common.Hash{}, err
	}
	return tx.Hash(), nil
}
