package handlers

import (
	"html/template"
	"io/fs"
	"log"
	"net/http"
)

var templates map[string]*template.Template

var pages = []string{
	"index.html",
	"cafe.html",
	"add_cafe.html",
	"login.html",
	"create_count.html",
}

// InitTemplates parses every page against the shared layout. Called once
// from main before the server starts.
func InitTemplates(templateFS fs.FS) {
	templates = make(map[string]*template.Template)
	for _, page := range pages {
		templates[page] = template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/"+page))
	}
}

func renderTemplate(w http.ResponseWriter, page string, data map[string]interface{}) {
	tmpl, ok := templates[page]
	if !ok {
		log.Println("Unknown template: ", page)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	err := tmpl.ExecuteTemplate(w, "layout.html", data)
	if err != nil {
		log.Println("Error rendering template: ", err)
	}
}
