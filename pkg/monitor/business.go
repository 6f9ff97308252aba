package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
)

// SessionMetrics 会话与合约调用相关的业务指标
type SessionMetrics struct {
	// OperationsTotal 按操作与结果统计 (operation: connect/read/increase, result: ok 或 errno 错误码)
	OperationsTotal *prometheus.CounterVec
	// FinalityWaitDuration 从提交交易到观察到回执的耗时
	FinalityWaitDuration prometheus.Histogram
	// CounterValue 最近一次成功读取的计数器值
	CounterValue prometheus.Gauge
	// Connected 1 表示钱包已连接
	Connected prometheus.Gauge
}

// Session 指标在包初始化时创建，未 Init 注册前也可以安全写入
var Session = &SessionMetrics{
	OperationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "counter_session_operations_total",
		Help: "Session operations by outcome",
	}, []string{"operation", "result"}),
	FinalityWaitDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "counter_finality_wait_seconds",
		Help:    "Time spent waiting for transaction finality",
		Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
	}),
	CounterValue: prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "counter_last_value",
		Help: "Last counter value read from the contract",
	}),
	Connected: prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "counter_wallet_connected",
		Help: "Whether a wallet session is connected",
	}),
}

func (m *SessionMetrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.OperationsTotal, m.FinalityWaitDuration, m.CounterValue, m.Connected}
}
