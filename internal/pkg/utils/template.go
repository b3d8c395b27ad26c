package utils

import (
	"bytes"
	"text/template"
)

// RenderMessage fills a message template with patient/installment context.
// Placeholders use Go template syntax: {{.Name}}, {{.Amount}}, {{.DueDate}}.
func RenderMessage(content string, ctx map[string]string) (string, error) {
	tmpl, err := template.New("message").Option("missingkey=zero").Parse(content)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return "", err
	}
	return buf.String(), nil
}
