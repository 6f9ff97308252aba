package handler

import (
	"errors"
	"io"
	"net/http"

	"counter-dapp/internal/handler/request"
	"counter-dapp/internal/handler/response"
	"counter-dapp/internal/notify"
	"counter-dapp/internal/session"
	"counter-dapp/internal/wallet"
	"counter-dapp/pkg/errno"
	"counter-dapp/pkg/logger"
	"counter-dapp/pkg/validator"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CounterHandler 计数器页面和 JSON 接口。
// 页面上的按钮是普通表单提交，执行完操作后重定向回首页重新渲染。
type CounterHandler struct {
	session *session.Controller
	flash   *notify.Flash
}

// NewCounterHandler flash 为 nil 时页面不展示通知
func NewCounterHandler(ctrl *session.Controller, flash *notify.Flash) *CounterHandler {
	return &CounterHandler{session: ctrl, flash: flash}
}

// pageData 首页模板数据
type pageData struct {
	session.View
	Notices []notify.Notification
}

// SessionData 会话接口返回值
type SessionData = session.View

// CounterData 计数器接口返回值
type CounterData struct {
	Counter string `json:"counter"`
	Fetched bool   `json:"fetched"`
}

// IncreaseData 发送交易接口返回值
type IncreaseData struct {
	TxHash  string `json:"tx_hash"`
	Counter string `json:"counter"`
}

// ---------------------------------------------------------------------
// 页面
// ---------------------------------------------------------------------

// Index 渲染首页
func (h *CounterHandler) Index(c *gin.Context) {
	data := pageData{View: h.session.Snapshot()}
	if h.flash != nil {
		data.Notices = h.flash.Pop()
	}
	c.HTML(http.StatusOK, IndexTemplate, data)
}

// ConnectForm "Connect Wallet" 按钮
func (h *CounterHandler) ConnectForm(c *gin.Context) {
	var req request.ConnectRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Warn("连接钱包参数错误", zap.String("reason", validator.GetErrorMsg(err)))
		h.backToIndex(c)
		return
	}
	// 失败已经在 session 中记录日志，页面只重新渲染
	_, _ = h.session.Connect(wallet.WithPassword(c.Request.Context(), req.Password))
	h.backToIndex(c)
}

// GetCounterForm "Get Counter" 按钮
func (h *CounterHandler) GetCounterForm(c *gin.Context) {
	_, _ = h.session.ReadCounter(c.Request.Context())
	h.backToIndex(c)
}

// IncreaseCounterForm "Increase Counter" 按钮，阻塞直到交易确认并刷新计数器
func (h *CounterHandler) IncreaseCounterForm(c *gin.Context) {
	_, _ = h.session.IncreaseCounter(c.Request.Context())
	h.backToIndex(c)
}

func (h *CounterHandler) backToIndex(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

// ---------------------------------------------------------------------
// JSON API
// ---------------------------------------------------------------------

// GetSession 查询会话状态
// @Summary 查询会话状态
// @Description 返回连接状态、截断后的地址和缓存的计数器值
// @Tags Session
// @Produce json
// @Success 200 {object} response.Response{data=SessionData}
// @Router /session [get]
func (h *CounterHandler) GetSession(c *gin.Context) {
	response.Success(c, h.session.Snapshot())
}

// Connect 连接钱包
// @Summary 连接钱包
// @Description 解锁本地钱包并绑定签名句柄；Keystore 钱包需要密码
// @Tags Session
// @Accept json
// @Produce json
// @Param request body request.ConnectRequest false "Connect Request"
// @Success 200 {object} response.Response{data=SessionData}
// @Router /session/connect [post]
func (h *CounterHandler) Connect(c *gin.Context) {
	var req request.ConnectRequest
	// 允许空 body (助记词钱包或服务端已配置密码)
	if err := c.ShouldBind(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, errno.ErrBind.WithMessage(validator.GetErrorMsg(err)))
		return
	}

	if _, err := h.session.Connect(wallet.WithPassword(c.Request.Context(), req.Password)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, h.session.Snapshot())
}

// GetCounter 读取计数器
// @Summary 读取计数器
// @Description 通过只读 RPC 调用 getCounter()，需要先连接钱包
// @Tags Counter
// @Produce json
// @Success 200 {object} response.Response{data=CounterData}
// @Router /counter [get]
func (h *CounterHandler) GetCounter(c *gin.Context) {
	value, err := h.session.ReadCounter(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, CounterData{Counter: value.String(), Fetched: value.Fetched()})
}

// IncreaseCounter 计数器加一
// @Summary 计数器加一
// @Description 发送 increaseCounter() 交易，等待最终确认后返回刷新后的计数器
// @Tags Counter
// @Produce json
// @Success 200 {object} response.Response{data=IncreaseData}
// @Router /counter/increase [post]
func (h *CounterHandler) IncreaseCounter(c *gin.Context) {
	hash, err := h.session.IncreaseCounter(c.Request.Context())
	data := IncreaseData{Counter: h.session.Counter().String()}
	if hash != (common.Hash{}) {
		data.TxHash = hash.Hex()
	}
	if err != nil {
		response.ErrorWithData(c, err, data)
		return
	}
	response.Success(c, data)
}
