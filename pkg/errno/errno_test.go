package errno

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"nil", nil, OK.Code, OK.Message},
		{"value", ErrReadFailed, ErrReadFailed.Code, ErrReadFailed.Message},
		{"pointer", &ErrBind, ErrBind.Code, ErrBind.Message},
		{"wrapped", fmt.Errorf("%w: rpc timeout", ErrReadFailed), ErrReadFailed.Code, "Failed to read counter: rpc timeout"},
		{"plain", errors.New("boom"), InternalServerError.Code, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := Decode(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestWrappedErrnoMatchesWithErrorsIs(t *testing.T) {
	err := fmt.Errorf("%w: user rejected", ErrConnectionFailed)
	assert.True(t, errors.Is(err, ErrConnectionFailed))
	assert.False(t, errors.Is(err, ErrWalletUnavailable))
}

func TestWithMessage(t *testing.T) {
	e := ErrBind.WithMessage("Password 不能为空")
	assert.Equal(t, ErrBind.Code, e.Code)
	assert.Equal(t, "Password 不能为空", e.Error())
}
