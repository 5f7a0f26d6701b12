package api

import (
	"encoding/json"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/gorm"
)

var pageTemplates = []string{
	"login",
	"signup",
	"onboarding",
	"dashboard",
	"transactions",
	"wallet",
	"goals",
	"earning",
	"subscription",
	"news",
	"settings",
	"not_found",
}

func NewHandler(database *gorm.DB, secret string, templateDir string, location *time.Location, cookieSecure bool) (*Handler, error) {
	if location == nil {
		location = time.Local
	}

	funcMap := template.FuncMap{
		"formatDate": func(value time.Time, layout string) string {
			if value.IsZero() {
				return ""
			}
			return value.Format(layout)
		},
		"isActiveRoute": func(currentPath string, route string) bool {
			if route == "/" {
				return currentPath == "/"
			}
			return currentPath == route
		},
		"hasSelection": func(joined string, value string) bool {
			for _, part := range strings.Split(joined, ",") {
				if strings.TrimSpace(part) == value {
					return true
				}
			}
			return false
		},
		"toJSON": func(value any) template.JS {
			serialized, _ := json.Marshal(value)
			return template.JS(serialized)
		},
	}

	templates := make(map[string]*template.Template, len(pageTemplates))
	for _, page := range pageTemplates {
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			filepath.Join(templateDir, page+".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = parsed
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		templates:    templates,
		loginLimiter: newLoginThrottle(loginAttemptsLimit, loginAttemptsWindow),
	}
	return handler.withDependencies(database), nil
}
