package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"counter-dapp/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubcommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"init", "get", "increase", "address"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}

	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("rpc"))
}

func TestInit_RefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)

	path := filepath.Join(dir, "wallet.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"init", "--output", path})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "已存在")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data), "已有文件不能被覆盖")
}

func TestRPCFlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)

	path := filepath.Join(dir, "wallet.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0600))

	rootCmd.SetArgs([]string{"init", "--rpc", "http://127.0.0.1:8545", "--output", path})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rpcURL = ""
	})

	_ = rootCmd.ExecuteContext(context.Background())
	assert.Equal(t, "http://127.0.0.1:8545", config.Global.Chain.RpcUrl)
}

// testChdir 切换工作目录并在测试结束时恢复（等价于 Go 1.24 的 t.Chdir）。
func testChdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
