package handler

import (
	"embed"
	"html/template"

	"counter-dapp/internal/notify"
)

// IndexTemplate 首页模板名
const IndexTemplate = "index.html"

//go:embed templates/*.html
var templateFS embed.FS

// Templates 解析内嵌的页面模板，交给 gin.Engine.SetHTMLTemplate 使用
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"isAlert": func(n notify.Notification) bool { return n.Kind == notify.KindAlert },
	}).ParseFS(templateFS, "templates/*.html"))
}
