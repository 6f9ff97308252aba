package request

// ConnectRequest 连接钱包请求参数
// Keystore 钱包需要密码解密；服务端已配置密码或使用助记词钱包时可以留空
type ConnectRequest struct {
	Password string `json:"password" form:"password" binding:"omitempty,max=128"`
}
