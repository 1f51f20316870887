package server

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed web/*
var pagesFS embed.FS

// RegisterPageRoutes serves the embedded static pages. These paths bypass
// identity resolution entirely.
func RegisterPageRoutes(r *gin.Engine) {
	serve := func(name string) gin.HandlerFunc {
		return func(c *gin.Context) {
			data, err := fs.ReadFile(pagesFS, "web/"+name)
			if err != nil {
				c.String(http.StatusNotFound, "%s not found", name)
				return
			}
			c.Data(http.StatusOK, "text/html; charset=utf-8", data)
		}
	}
	r.GET("/", serve("index.html"))
	r.GET("/index.html", serve("index.html"))
	r.GET("/login", serve("login.html"))
	r.GET("/register", serve("register.html"))

	assets, err := fs.Sub(pagesFS, "web/assets")
	if err == nil {
		r.StaticFS("/assets", http.FS(assets))
	}
}
