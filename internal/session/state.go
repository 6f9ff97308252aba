package session

import "strconv"

// State 会话状态，只有 Disconnected 和 Connected 两种
type State interface {
	isState()
}

// Disconnected 尚未连接钱包
type Disconnected struct{}

// Connected 钱包已授权，持有绑定签名者的合约句柄
type Connected struct {
	Address string
	handle  CounterTransactor
}

func (Disconnected) isState() {}
func (Connected) isState()    {}

// NotFetchedText 计数器从未成功读取时的展示文本
const NotFetchedText = "Not fetched"

// CounterValue 最近一次成功读取的计数器值，只是缓存，不保证与链上一致
type CounterValue struct {
	value   uint32
	fetched bool
}

func fetchedValue(v uint32) CounterValue {
	return CounterValue{value: v, fetched: true}
}

func (v CounterValue) Fetched() bool { return v.fetched }
func (v CounterValue) Value() uint32 { return v.value }

// String 十进制字符串，未读取时返回 NotFetchedText
func (v CounterValue) String() string {
	if !v.fetched {
		return NotFetchedText
	}
	return strconv.FormatUint(uint64(v.value), 10)
}

// View 渲染页面/接口所需的只读快照
type View struct {
	Connected      bool   `json:"connected"`
	Address        string `json:"address"`
	DisplayAddress string `json:"display_address"`
	Counter        string `json:"counter"`
	CounterFetched bool   `json:"counter_fetched"`
	Pending        bool   `json:"pending"`
}

// ShortAddress 截断地址用于展示: 前 6 位 + "..." + 后 4 位
func ShortAddress(addr string) string {
	if addr == "" {
		return ""
	}
	if len(addr) < 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}
