package render

import "html/template"

var funcs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}
