package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// 指向一个不存在的目录，确保只用默认值
	testChdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, int64(11155111), cfg.Chain.ChainID)
	assert.Equal(t, 3*time.Second, cfg.Chain.PollInterval)
	assert.Equal(t, 5*time.Minute, cfg.Chain.FinalityTimeout)
	assert.Equal(t, "m/44'/60'/0'/0/0", cfg.Wallet.DerivationPath)
	assert.Equal(t, "none", cfg.Notify.MQType)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "counter.yaml")
	content := `
app:
  env: production
chain:
  rpc_url: http://127.0.0.1:8545
  poll_interval: 500ms
notify:
  mq_type: redis
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0600))
	t.Setenv("WALLET_PASSWORD", "from-env")

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "http://127.0.0.1:8545", cfg.Chain.RpcUrl)
	assert.Equal(t, 500*time.Millisecond, cfg.Chain.PollInterval)
	assert.Equal(t, "redis", cfg.Notify.MQType)
	assert.Equal(t, "from-env", cfg.Wallet.Password)
}

func TestLoadBrokenFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(file, []byte("app: [unclosed"), 0600))

	_, err := Load(file)
	assert.Error(t, err)
}

// testChdir 切换工作目录并在测试结束时恢复（等价于 Go 1.24 的 t.Chdir）。
func testChdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
