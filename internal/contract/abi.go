package contract

import (
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const (
	MethodGetCounter      = "getCounter"
	MethodIncreaseCounter = "increaseCounter"
)

// CounterABI 计数器合约接口: 一个 view 方法、一个写方法、构造函数 (前端不会调用)，没有事件
const CounterABI = `[
	{
		"type": "constructor",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "x", "type": "uint32"},
			{"name": "owner", "type": "address"}
		]
	},
	{
		"type": "function",
		"name": "getCounter",
		"stateMutability": "view",
		"inputs": [],
		"outputs": [{"name": "", "type": "uint32"}]
	},
	{
		"type": "function",
		"name": "increaseCounter",
		"stateMutability": "nonpayable",
		"inputs": [],
		"outputs": []
	}
]`

var (
	parsedOnce sync.Once
	parsedABI  abi.ABI
	parseErr   error
)

// ParseABI 解析内置 ABI，只解析一次
func ParseABI() (abi.ABI, error) {
	parsedOnce.Do(func() {
		parsedABI, parseErr = abi.JSON(strings.NewReader(CounterABI))
	})
	return parsedABI, parseErr
}
