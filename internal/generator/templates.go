package generator

import (
	"embed"
	"fmt"
	"strings"
	"sync"
	"text/template"
)

const (
	tmplFile     = "file"
	tmplRecord   = "record"
	tmplMarkers  = "markers"
	tmplSetter   = "setter"
	tmplFinalize = "finalize"
)

const templatePattern = "templates/*.gtpl"

//go:embed templates/*.gtpl
var templatesFS embed.FS

var (
	fileTmpl     *template.Template
	tmplInitOnce sync.Once
	tmplInitErr  error
)

var templateFuncs = template.FuncMap{
	"typeArgs":   typeArgs,
	"typeParams": typeParams,
	"join":       strings.Join,
}

// typeArgs renders an instantiation suffix such as "[A, B]"; a builder of a
// struct without fields is not generic and gets no suffix.
func typeArgs(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return "[" + strings.Join(args, ", ") + "]"
}

// typeParams renders the builder's type parameter list such as "[A, B any]".
func typeParams(fields []fieldModel, constraint string) string {
	if len(fields) == 0 {
		return ""
	}
	slots := make([]string, len(fields))
	for i, f := range fields {
		slots[i] = f.Slot
	}
	return "[" + strings.Join(slots, ", ") + " " + constraint + "]"
}

// validateTemplates ensures all required templates are defined
func validateTemplates() error {
	requiredTemplates := []string{
		tmplFile,
		tmplRecord,
		tmplMarkers,
		tmplSetter,
		tmplFinalize,
	}
	for _, name := range requiredTemplates {
		if fileTmpl.Lookup(name) == nil {
			return fmt.Errorf("required template %q not found", name)
		}
	}
	return nil
}

// ensureTemplates parses and validates templates exactly once.
func ensureTemplates() error {
	tmplInitOnce.Do(func() {
		var t *template.Template
		t, tmplInitErr = template.New(tmplFile).Funcs(templateFuncs).ParseFS(templatesFS, templatePattern)
		if tmplInitErr != nil {
			return
		}
		fileTmpl = t
		tmplInitErr = validateTemplates()
	})
	return tmplInitErr
}
