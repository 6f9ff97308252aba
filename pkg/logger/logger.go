package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log 全局 Logger。Init 之前是 Nop，测试和库代码可以直接调用。
var Log = zap.NewNop()

// New 按运行环境构造 Logger:
// production 输出 JSON (ISO8601 时间)，其他环境输出彩色控制台格式并打开 Debug。
func New(env string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	// 跳过本包的包装函数，caller 指向真实调用位置
	return cfg.Build(zap.AddCallerSkip(1))
}

// Init 初始化全局 Logger，失败直接 panic (进程启动阶段调用)
func Init(env string) {
	l, err := New(env)
	if err != nil {
		panic(err)
	}
	Set(l)
}

// Set 替换全局 Logger，同时替换 zap.L()
func Set(l *zap.Logger) {
	Log = l
	zap.ReplaceGlobals(l)
}

// Sync 退出前刷新缓冲
func Sync() {
	_ = Log.Sync()
}

func Debug(msg string, fields ...zap.Field) { Log.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { Log.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { Log.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { Log.Error(msg, fields...) }
func Fatal(msg string, fields ...zap.Field) { Log.Fatal(msg, fields...) }
