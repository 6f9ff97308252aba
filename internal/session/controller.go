package session

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"counter-dapp/internal/notify"
	"counter-dapp/internal/wallet"
	"counter-dapp/pkg/errno"
	"counter-dapp/pkg/logger"
	"counter-dapp/pkg/monitor"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// WalletUnavailableMessage 未检测到钱包时给用户的提醒
const WalletUnavailableMessage = "No wallet found. Create a keystore with `counter-cli init` or configure wallet.mnemonic."

// Controller 会话控制器: 持有会话状态，驱动 connect / read / increase 三个操作。
//
// 每个操作的失败都在这里被捕获、记录并以 errno 错误返回，不会向上 panic。
// 外部调用 (钱包授权、RPC、等待回执) 不持有锁。
type Controller struct {
	provider wallet.Provider
	chain    Chain
	notifier notify.Notifier

	mu      sync.RWMutex
	state   State
	counter CounterValue

	// 同一时间只允许一笔 increaseCounter 交易在途
	inFlight atomic.Bool
}

// NewController provider 可以为 nil，表示环境中没有钱包
func NewController(provider wallet.Provider, chain Chain, notifier notify.Notifier) *Controller {
	if notifier == nil {
		notifier = notify.Multi{}
	}
	return &Controller{
		provider: provider,
		chain:    chain,
		notifier: notifier,
		state:    Disconnected{},
	}
}

// State 返回当前会话状态
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Counter 返回缓存的计数器值
func (c *Controller) Counter() CounterValue {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counter
}

// Snapshot 渲染用的只读视图
func (c *Controller) Snapshot() View {
	c.mu.RLock()
	defer c.mu.RUnlock()

	view := View{
		Counter:        c.counter.String(),
		CounterFetched: c.counter.Fetched(),
		Pending:        c.inFlight.Load(),
	}
	if conn, ok := c.state.(Connected); ok {
		view.Connected = true
		view.Address = conn.Address
		view.DisplayAddress = ShortAddress(conn.Address)
	}
	return view
}

// Connect 请求钱包授权，成功后绑定签名句柄并切换到 Connected。
// 已连接时再次调用会用新授权的账户替换句柄。
func (c *Controller) Connect(ctx context.Context) (string, error) {
	if c.provider == nil {
		c.notify(ctx, notify.KindAlert, WalletUnavailableMessage, "")
		observe("connect", errno.ErrWalletUnavailable)
		return "", errno.ErrWalletUnavailable
	}

	account, err := c.provider.Enable(ctx)
	if err != nil {
		logger.Error("钱包连接失败", zap.Error(err))
		observe("connect", errno.ErrConnectionFailed)
		return "", fmt.Errorf("%w: %w", errno.ErrConnectionFailed, err)
	}

	handle := c.chain.BindSigner(account)
	address := account.Address.Hex()

	c.mu.Lock()
	c.state = Connected{Address: address, handle: handle}
	c.mu.Unlock()

	monitor.Session.Connected.Set(1)
	observe("connect", nil)
	logger.Info("钱包已连接", zap.String("address", address))
	return address, nil
}

// ReadCounter 通过新建的只读句柄读取 getCounter()。
// 未连接时不发起任何 RPC，返回 errno.ErrNotConnected。
func (c *Controller) ReadCounter(ctx context.Context) (CounterValue, error) {
	conn, ok := c.connected()
	if !ok {
		observe("read", errno.ErrNotConnected)
		return c.Counter(), errno.ErrNotConnected
	}

	value, err := c.chain.NewReader().GetCounter(ctx)
	if err != nil {
		logger.Error("读取计数器失败", zap.Error(err))
		observe("read", errno.ErrReadFailed)
		return c.Counter(), fmt.Errorf("%w: %w", errno.ErrReadFailed, err)
	}

	counter := fetchedValue(value)
	c.mu.Lock()
	c.counter = counter
	c.mu.Unlock()

	monitor.Session.CounterValue.Set(float64(value))
	observe("read", nil)
	logger.Info("计数器已读取", zap.String("counter", counter.String()))
	c.notify(ctx, notify.KindInfo, "Counter: "+counter.String(), conn.Address)
	return counter, nil
}

// IncreaseCounter 通过签名句柄发送 increaseCounter() 交易，等待最终确认后刷新计数器。
// 刷新读取严格发生在观察到回执之后；确认失败时不刷新。
func (c *Controller) IncreaseCounter(ctx context.Context) (common.Hash, error) {
	conn, ok := c.connected()
	if !ok {
		observe("increase", errno.ErrNotConnected)
		return common.Hash{}, errno.ErrNotConnected
	}

	if !c.inFlight.CompareAndSwap(false, true) {
		logger.Warn("已有计数器交易在途，忽略本次请求", zap.String("address", conn.Address))
		observe("increase", errno.ErrTxInFlight)
		return common.Hash{}, errno.ErrTxInFlight
	}
	defer c.inFlight.Store(false)

	hash, err := conn.handle.IncreaseCounter(ctx)
	if err != nil {
		logger.Error("发送交易失败", zap.Error(err))
		observe("increase", errno.ErrTxSubmitFailed)
		return common.Hash{}, fmt.Errorf("%w: %w", errno.ErrTxSubmitFailed, err)
	}
	logger.Info("交易已提交", zap.String("tx", hash.Hex()), zap.String("from", conn.Address))

	start := time.Now()
	if err := c.chain.WaitFinality(ctx, hash); err != nil {
		logger.Error("等待交易确认失败", zap.String("tx", hash.Hex()), zap.Error(err))
		observe("increase", errno.ErrTxConfirmationFailed)
		return hash, fmt.Errorf("%w: %w", errno.ErrTxConfirmationFailed, err)
	}
	monitor.Session.FinalityWaitDuration.Observe(time.Since(start).Seconds())
	observe("increase", nil)

	if _, err := c.ReadCounter(ctx); err != nil {
		return hash, err
	}
	return hash, nil
}

func (c *Controller) connected() (Connected, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	conn, ok := c.state.(Connected)
	return conn, ok
}

func (c *Controller) notify(ctx context.Context, kind notify.Kind, msg, account string) {
	c.notifier.Notify(ctx, notify.Notification{
		Kind:    kind,
		Message: msg,
		Account: account,
		Time:    time.Now(),
	})
}

func observe(operation string, err error) {
	result := "ok"
	if err != nil {
		code, _ := errno.Decode(err)
		result = fmt.Sprintf("%d", code)
	}
	monitor.Session.OperationsTotal.WithLabelValues(operation, result).Inc()
}
