package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

var welcomeTpl = template.Must(template.New(TemplateWelcome).Parse(`
<html>
  <body style="font-family: sans-serif; color: #222;">
    <h2>Welcome to MockMate{{if .Name}}, {{.Name}}{{end}}!</h2>
    <p>Your account is ready. Create an interview-prep session, pick a role
    and the topics you want to focus on, and we will generate practice
    questions with detailed answers for you.</p>
    <p>Good luck with your preparation.</p>
  </body>
</html>
`))

// RenderWelcome renders the welcome email and returns subject, text and html bodies.
func RenderWelcome(data map[string]any) (subject, text, html string, err error) {
	var buf bytes.Buffer
	if err = welcomeTpl.Execute(&buf, data); err != nil {
		return "", "", "", err
	}
	name, _ := data["Name"].(string)
	text = fmt.Sprintf("Welcome to MockMate, %s! Your account is ready.", name)
	return "Welcome to MockMate", text, buf.String(), nil
}
