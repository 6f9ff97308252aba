package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

// Kind 通知类别
type Kind string

const (
	// KindAlert 阻塞式提醒 (例如未检测到钱包)
	KindAlert Kind = "alert"
	// KindInfo 普通结果提示 (例如计数器读取结果)
	KindInfo Kind = "info"
)

// Notification 面向用户的一条通知
type Notification struct {
	Kind    Kind      `json:"kind"`
	Message string    `json:"message"`
	Account string    `json:"account,omitempty"`
	Time    time.Time `json:"time"`
}

// Notifier 向用户展示通知
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Console 直接写到终端 (CLI 使用)
type Console struct {
	mu  sync.Mutex
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Notify(ctx context.Context, n Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n.Kind == KindAlert {
		fmt.Fprintf(c.out, "⚠️  %s\n", n.Message)
		return
	}
	fmt.Fprintln(c.out, n.Message)
}

// Flash 保存待展示的通知，页面渲染时取出一次
type Flash struct {
	mu      sync.Mutex
	pending []Notification
}

func NewFlash() *Flash {
	return &Flash{}
}

func (f *Flash) Notify(ctx context.Context, n Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = append(f.pending, n)
}

// Pop 取出并清空所有待展示通知
func (f *Flash) Pop() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.pending
	f.pending = nil
	return out
}

// Multi 把通知分发给多个 Notifier，nil 元素会被跳过
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n Notification) {
	for _, notifier := range m {
		if notifier != nil {
			notifier.Notify(ctx, n)
		}
	}
}
