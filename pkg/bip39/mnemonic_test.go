package bip39

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMnemonic(t *testing.T) {
	service := NewMnemonicService()

	for _, bits := range []int{128, 256} {
		mnemonic, err := service.GenerateMnemonic(bits)
		require.NoError(t, err)
		assert.True(t, service.ValidateMnemonic(mnemonic), "生成的助记词无效: %s", mnemonic)
	}

	_, err := service.GenerateMnemonic(100)
	assert.Error(t, err)
}

func TestSeedFromMnemonic(t *testing.T) {
	service := NewMnemonicService()

	// BIP-39 测试向量
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	expectedSeedHex := "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4"

	seed, err := service.SeedFromMnemonic(mnemonic, "")
	require.NoError(t, err)
	assert.Equal(t, expectedSeedHex, hex.EncodeToString(seed))

	// 多余空白不影响结果
	seed2, err := service.SeedFromMnemonic("  abandon abandon abandon abandon abandon abandon\nabandon abandon abandon abandon abandon  about ", "")
	require.NoError(t, err)
	assert.Equal(t, seed, seed2)
}

func TestSeedFromMnemonic_Invalid(t *testing.T) {
	service := NewMnemonicService()

	_, err := service.SeedFromMnemonic("hello world invalid mnemonic phrase designed to fail validation check", "")
	assert.ErrorIs(t, err, ErrInvalidMnemonic)
}
