package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type connectForm struct {
	Password string `validate:"required"`
	Label    string `validate:"max=4"`
}

func TestGetErrorMsg(t *testing.T) {
	v := validator.New()

	err := v.Struct(connectForm{Label: "too-long"})
	assert.Equal(t, "Password 不能为空; Label 长度不能超过 4", GetErrorMsg(err))

	assert.Equal(t, "请求参数错误", GetErrorMsg(errors.New("EOF")))
}
