package core

import (
	"bytes"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// ExecuteTemplate renders the given content with the provided data, which is
// usually a *SystemContext. Sprig's function map is available, so config
// strings can use helpers like default and lower.
func ExecuteTemplate(content string, data interface{}) (string, error) {
	// missingkey=zero allows optional variables (returning nil/zero), which
	// works with Sprig's 'default'. Use Sprig's 'required' for mandatory ones.
	tmpl, err := template.New("hearth").Funcs(sprig.TxtFuncMap()).Option("missingkey=zero").Parse(content)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
