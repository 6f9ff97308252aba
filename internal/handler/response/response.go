package response

import (
	"net/http"

	"counter-dapp/pkg/errno"

	"github.com/gin-gonic/gin"
)

// Response 统一的 JSON 返回结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"msg"`
	Data    interface{} `json:"data"`
}

// Success 返回成功响应
func Success(c *gin.Context, data interface{}) {
	if data == nil {
		data = gin.H{} // 返回空对象而不是 null
	}
	c.JSON(http.StatusOK, Response{
		Code:    errno.OK.Code,
		Message: errno.OK.Message,
		Data:    data,
	})
}

// Error 返回错误响应，业务错误码放在 code 字段里，HTTP 状态码仍为 200
func Error(c *gin.Context, err error) {
	ErrorWithData(c, err, gin.H{})
}

// ErrorWithData 出错时仍需要带回部分数据 (例如已提交交易的哈希)
func ErrorWithData(c *gin.Context, err error, data interface{}) {
	code, msg := errno.Decode(err)
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: msg,
		Data:    data,
	})
}
