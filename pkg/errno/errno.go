package errno

import "errors"

// Errno defines the error code logic
type Errno struct {
	Code    int
	Message string
}

func (e Errno) Error() string {
	return e.Message
}

// WithMessage 返回同一错误码、替换了提示信息的副本
func (e Errno) WithMessage(msg string) Errno {
	return Errno{Code: e.Code, Message: msg}
}

// Decode tries to convert an error to Errno.
// 被 %w 包装过的错误会沿着链查找最近的 Errno，提示信息保留完整的错误描述。
func Decode(err error) (int, string) {
	if err == nil {
		return OK.Code, OK.Message
	}

	switch typed := err.(type) {
	case *Errno:
		return typed.Code, typed.Message
	case Errno:
		return typed.Code, typed.Message
	}

	var e Errno
	if errors.As(err, &e) {
		return e.Code, err.Error()
	}
	return InternalServerError.Code, err.Error()
}

// Common Errors
var (
	OK                  = Errno{Code: 0, Message: "Success"}
	InternalServerError = Errno{Code: 10001, Message: "Internal server error"}
	ErrBind             = Errno{Code: 10002, Message: "Error occurred while binding the request body to the struct"}
)

// Session Errors (30000+)
var (
	ErrWalletUnavailable    = Errno{Code: 30001, Message: "Wallet unavailable"}
	ErrConnectionFailed     = Errno{Code: 30002, Message: "Wallet connection failed"}
	ErrReadFailed           = Errno{Code: 30003, Message: "Failed to read counter"}
	ErrTxSubmitFailed       = Errno{Code: 30004, Message: "Transaction submission failed"}
	ErrTxConfirmationFailed = Errno{Code: 30005, Message: "Transaction confirmation failed"}
	ErrTxInFlight           = Errno{Code: 30006, Message: "A counter transaction is already pending"}
	ErrNotConnected         = Errno{Code: 30007, Message: "Wallet not connected"}
)
