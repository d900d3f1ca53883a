package booksite

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"github.com/pkg/errors"
)

const XMLDeclaration = `<?xml version="1.0" encoding="UTF-8"?>`

//go:embed templates/*
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("index.gohtml").
		Funcs(template.FuncMap{"rowClass": rowClass}).
		ParseFS(templateFS, "templates/index.gohtml"),
)

type pageData struct {
	Host Host
	Page *Content
}

func rowClass(i int) string {
	if i%2 == 0 {
		return "rowA"
	}

	return "rowB"
}

// Render writes the XML declaration followed by the page document. The host
// is handed to the template but the page does not print any of it.
func Render(w io.Writer, config *Config, host Host) error {
	if _, err := io.WriteString(w, XMLDeclaration+"\n"); err != nil {
		return err
	}

	if err := pageTemplate.Execute(w, pageData{Host: host, Page: &config.Page}); err != nil {
		return errors.Wrap(err, "failed to render index.gohtml")
	}

	return nil
}

func RenderBytes(config *Config, host Host) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, config, host); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
