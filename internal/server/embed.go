package server

import (
	"embed"
	"html/template"
	"log"
)

//go:embed templates/*.tmpl api/openapi.yaml
var embedFS embed.FS

// indexTemplateName はページテンプレートの名前
const indexTemplateName = "index.html.tmpl"

// parseTemplates は埋め込みテンプレートを解析する
func parseTemplates() *template.Template {
	tmpl, err := template.ParseFS(embedFS, "templates/*.tmpl")
	if err != nil {
		log.Fatalf("埋め込みテンプレートの解析に失敗: %v", err)
	}
	return tmpl
}

// getOpenAPISpec は埋め込みOpenAPI定義を返す
func getOpenAPISpec() []byte {
	data, err := embedFS.ReadFile("api/openapi.yaml")
	if err != nil {
		log.Fatalf("埋め込みOpenAPI定義の読み込みに失敗: %v", err)
	}
	return data
}
