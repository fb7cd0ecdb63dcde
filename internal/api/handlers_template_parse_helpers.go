package api

import (
	"fmt"
	"html/template"
	"io/fs"
)

func parsePageTemplates(files fs.FS, funcMap template.FuncMap, pages []string) (map[string]*template.Template, error) {
	parsed := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		patterns := append(append([]string{}, sharedTemplateFiles...), page+".html")
		tmpl, err := template.New("base").Funcs(funcMap).ParseFS(files, patterns...)
		if err != nil {
			return nil, fmt.Errorf("parse page template %s: %w", page, err)
		}
		parsed[page] = tmpl
	}
	return parsed, nil
}
