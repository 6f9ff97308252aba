package wallet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrNoPassword 没有可用的密码来源 (用户取消或请求里没带密码)
var ErrNoPassword = errors.New("no wallet password supplied")

// PasswordPrompt 向用户索取 keystore 密码
type PasswordPrompt func(ctx context.Context) (string, error)

// StaticPassword 配置或环境变量里给定的密码
func StaticPassword(password string) PasswordPrompt {
	return func(ctx context.Context) (string, error) {
		return password, nil
	}
}

// TerminalPrompt 在终端上无回显读取密码
func TerminalPrompt(out io.Writer) PasswordPrompt {
	return func(ctx context.Context) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			return "", fmt.Errorf("%w: stdin is not a terminal", ErrNoPassword)
		}

		fmt.Fprint(out, "请输入 Keystore 密码以连接钱包: ")
		bytePassword, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("读取密码失败: %w", err)
		}
		return string(bytePassword), nil
	}
}

type passwordKey struct{}

// WithPassword 把请求携带的密码放进 context (Web 表单连接钱包时使用)
func WithPassword(ctx context.Context, password string) context.Context {
	return context.WithValue(ctx, passwordKey{}, password)
}

// ContextPassword 从 context 读取 WithPassword 放入的密码
func ContextPassword(ctx context.Context) (string, error) {
	password, ok := ctx.Value(passwordKey{}).(string)
	if !ok || password == "" {
		return "", ErrNoPassword
	}
	return password, nil
}
