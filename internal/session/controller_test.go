package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"counter-dapp/internal/notify"
	"counter-dapp/internal/wallet"
	"counter-dapp/pkg/errno"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddress = "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"

var testTx = common.HexToHash("0x1234")

// ---------------------------------------------------------------------
// fakes
// ---------------------------------------------------------------------

type fakeProvider struct {
	account *wallet.Account
	err     error
	calls   int
}

func (p *fakeProvider) Enable(ctx context.Context) (*wallet.Account, error) {
	p.calls++
	return p.account, p.err
}

func newFakeProvider() *fakeProvider {
	addr := common.HexToAddress(testAddress)
	return &fakeProvider{account: &wallet.Account{Address: addr, Signer: &bind.TransactOpts{From: addr}}}
}

// fakeChain 记录所有链上交互的顺序
type fakeChain struct {
	mu     sync.Mutex
	events []string

	value      uint32
	readErr    error
	submitErr  error
	finalErr   error
	finalGate  chan struct{} // 非 nil 时 WaitFinality 阻塞直到关闭
	readerMade int
}

func (c *fakeChain) record(event string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func (c *fakeChain) Events() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.events...)
}

func (c *fakeChain) count(event string) int {
	n := 0
	for _, e := range c.Events() {
		if e == event {
			n++
		}
	}
	return n
}

func (c *fakeChain) NewReader() CounterReader {
	c.mu.Lock()
	c.readerMade++
	c.mu.Unlock()
	return fakeReader{chain: c}
}

func (c *fakeChain) BindSigner(account *wallet.Account) CounterTransactor {
	c.record("bind")
	return fakeTransactor{chain: c}
}

func (c *fakeChain) WaitFinality(ctx context.Context, hash common.Hash) error {
	if c.finalGate != nil {
		<-c.finalGate
	}
	c.record("final")
	return c.finalErr
}

type fakeReader struct{ chain *fakeChain }

func (r fakeReader) GetCounter(ctx context.Context) (uint32, error) {
	r.chain.record("read")
	return r.chain.value, r.chain.readErr
}

type fakeTransactor struct{ chain *fakeChain }

func (t fakeTransactor) IncreaseCounter(ctx context.Context) (common.Hash, error) {
	t.chain.record("submit")
	if t.chain.submitErr != nil {
		return common.Hash{}, t.chain.submitErr
	}
	return testTx, nil
}

type recorder struct {
	mu  sync.Mutex
	got []notify.Notification
}

func (r *recorder) Notify(ctx context.Context, n notify.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, n)
}

func (r *recorder) All() []notify.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notify.Notification(nil), r.got...)
}

func connectedController(t *testing.T, chain *fakeChain, rec *recorder) *Controller {
	t.Helper()
	c := NewController(newFakeProvider(), chain, rec)
	_, err := c.Connect(context.Background())
	require.NoError(t, err)
	return c
}

// ---------------------------------------------------------------------
// connect
// ---------------------------------------------------------------------

func TestConnect_NoProvider(t *testing.T) {
	chain := &fakeChain{}
	rec := &recorder{}
	c := NewController(nil, chain, rec)

	_, err := c.Connect(context.Background())
	assert.ErrorIs(t, err, errno.ErrWalletUnavailable)

	assert.IsType(t, Disconnected{}, c.State())
	assert.False(t, c.Counter().Fetched())
	assert.Empty(t, chain.Events())

	notes := rec.All()
	require.Len(t, notes, 1)
	assert.Equal(t, notify.KindAlert, notes[0].Kind)
}

func TestConnect_Success(t *testing.T) {
	chain := &fakeChain{}
	rec := &recorder{}
	c := NewController(newFakeProvider(), chain, rec)

	addr, err := c.Connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testAddress, addr)

	conn, ok := c.State().(Connected)
	require.True(t, ok)
	assert.Equal(t, testAddress, conn.Address)
	assert.NotNil(t, conn.handle, "签名句柄随连接一起绑定")

	view := c.Snapshot()
	assert.True(t, view.Connected)
	assert.Equal(t, "0x9858...da94", view.DisplayAddress)
	assert.Equal(t, NotFetchedText, view.Counter)

	assert.Equal(t, []string{"bind"}, chain.Events())
	assert.Empty(t, rec.All(), "连接成功只记日志，不弹通知")
}

func TestConnect_Rejected(t *testing.T) {
	provider := &fakeProvider{err: errors.New("user rejected")}
	chain := &fakeChain{}
	rec := &recorder{}
	c := NewController(provider, chain, rec)

	_, err := c.Connect(context.Background())
	assert.ErrorIs(t, err, errno.ErrConnectionFailed)
	assert.Contains(t, err.Error(), "user rejected")

	assert.IsType(t, Disconnected{}, c.State())
	assert.Empty(t, chain.Events(), "失败时不应绑定句柄")
	assert.Empty(t, rec.All())
}

func TestConnect_ReconnectReplacesHandle(t *testing.T) {
	chain := &fakeChain{}
	provider := newFakeProvider()
	c := NewController(provider, chain, nil)

	_, err := c.Connect(context.Background())
	require.NoError(t, err)
	_, err = c.Connect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, provider.calls)
	assert.Equal(t, 2, chain.count("bind"))
}

// ---------------------------------------------------------------------
// read
// ---------------------------------------------------------------------

func TestReadCounter_Disconnected(t *testing.T) {
	chain := &fakeChain{value: 42}
	rec := &recorder{}
	c := NewController(newFakeProvider(), chain, rec)

	value, err := c.ReadCounter(context.Background())
	assert.ErrorIs(t, err, errno.ErrNotConnected)
	assert.False(t, value.Fetched())

	assert.Zero(t, chain.readerMade, "未连接时不应创建只读句柄")
	assert.Empty(t, chain.Events())
	assert.Empty(t, rec.All())
}

func TestReadCounter_Success(t *testing.T) {
	chain := &fakeChain{value: 42}
	rec := &recorder{}
	c := connectedController(t, chain, rec)

	value, err := c.ReadCounter(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "42", value.String())
	assert.Equal(t, "42", c.Snapshot().Counter)

	notes := rec.All()
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0].Message, "42")
	assert.Equal(t, testAddress, notes[0].Account)
}

func TestReadCounter_FreshReaderEachTime(t *testing.T) {
	chain := &fakeChain{value: 5}
	c := connectedController(t, chain, &recorder{})

	first, err := c.ReadCounter(context.Background())
	require.NoError(t, err)
	second, err := c.ReadCounter(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "5", c.Counter().String())
	assert.Equal(t, 2, chain.readerMade)
}

func TestReadCounter_FailureKeepsStaleValue(t *testing.T) {
	chain := &fakeChain{value: 9}
	rec := &recorder{}
	c := connectedController(t, chain, rec)

	_, err := c.ReadCounter(context.Background())
	require.NoError(t, err)

	chain.readErr = errors.New("rpc timeout")
	value, err := c.ReadCounter(context.Background())
	assert.ErrorIs(t, err, errno.ErrReadFailed)
	assert.Equal(t, "9", value.String())
	assert.Equal(t, "9", c.Counter().String())
	assert.Len(t, rec.All(), 1, "失败只记日志")
}

// ---------------------------------------------------------------------
// increase
// ---------------------------------------------------------------------

func TestIncreaseCounter_Disconnected(t *testing.T) {
	chain := &fakeChain{}
	c := NewController(newFakeProvider(), chain, nil)

	_, err := c.IncreaseCounter(context.Background())
	assert.ErrorIs(t, err, errno.ErrNotConnected)
	assert.Empty(t, chain.Events())
}

func TestIncreaseCounter_ReadsAfterFinality(t *testing.T) {
	chain := &fakeChain{value: 43}
	rec := &recorder{}
	c := connectedController(t, chain, rec)

	hash, err := c.IncreaseCounter(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testTx, hash)

	assert.Equal(t, []string{"bind", "submit", "final", "read"}, chain.Events())
	assert.Equal(t, "43", c.Counter().String())
	require.Len(t, rec.All(), 1)
}

func TestIncreaseCounter_SubmitFailure(t *testing.T) {
	chain := &fakeChain{submitErr: errors.New("insufficient funds")}
	c := connectedController(t, chain, &recorder{})

	_, err := c.IncreaseCounter(context.Background())
	assert.ErrorIs(t, err, errno.ErrTxSubmitFailed)
	assert.Equal(t, []string{"bind", "submit"}, chain.Events())
	assert.False(t, c.Snapshot().Pending)
}

func TestIncreaseCounter_FinalityFailure(t *testing.T) {
	chain := &fakeChain{value: 1, finalErr: errors.New("timed out")}
	rec := &recorder{}
	c := connectedController(t, chain, rec)

	hash, err := c.IncreaseCounter(context.Background())
	assert.ErrorIs(t, err, errno.ErrTxConfirmationFailed)
	assert.Equal(t, testTx, hash, "交易已提交，哈希仍然返回")

	assert.Zero(t, chain.count("read"))
	assert.False(t, c.Counter().Fetched())
	assert.Empty(t, rec.All())
}

func TestIncreaseCounter_RefreshReadFailure(t *testing.T) {
	chain := &fakeChain{readErr: errors.New("rpc down")}
	c := connectedController(t, chain, &recorder{})

	hash, err := c.IncreaseCounter(context.Background())
	assert.ErrorIs(t, err, errno.ErrReadFailed)
	assert.Equal(t, testTx, hash)
	assert.Equal(t, []string{"bind", "submit", "final", "read"}, chain.Events())
}

func TestIncreaseCounter_InFlightGuard(t *testing.T) {
	gate := make(chan struct{})
	chain := &fakeChain{value: 2, finalGate: gate}
	c := connectedController(t, chain, &recorder{})

	done := make(chan error, 1)
	go func() {
		_, err := c.IncreaseCounter(context.Background())
		done <- err
	}()

	require.Eventually(t, func() bool { return c.Snapshot().Pending }, time.Second, time.Millisecond)

	_, err := c.IncreaseCounter(context.Background())
	assert.ErrorIs(t, err, errno.ErrTxInFlight)

	close(gate)
	require.NoError(t, <-done)

	assert.Equal(t, 1, chain.count("submit"))
	assert.Equal(t, 1, chain.count("read"))
	assert.False(t, c.Snapshot().Pending)

	// 第一笔完成后可以再次发送
	chain.finalGate = nil
	_, err = c.IncreaseCounter(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, chain.count("submit"))
}

func TestOperationsNeverPanic(t *testing.T) {
	chain := &fakeChain{readErr: errors.New("x"), submitErr: errors.New("y")}
	c := NewController(&fakeProvider{err: errors.New("z")}, chain, nil)

	assert.NotPanics(t, func() {
		_, _ = c.Connect(context.Background())
		_, _ = c.ReadCounter(context.Background())
		_, _ = c.IncreaseCounter(context.Background())
	})
}

func TestWalletUnavailableMessageMentionsInit(t *testing.T) {
	assert.True(t, strings.Contains(WalletUnavailableMessage, "counter-cli init"))
}
