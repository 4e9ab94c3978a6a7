package server

import (
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"blog/internal/auth"
	"blog/internal/middleware"
	"blog/internal/posts"
	"blog/internal/session"
)

type Server struct {
	auth     *auth.Service
	posts    *posts.Service
	sessions session.Store

	tmpl   map[string]*template.Template
	engine *gin.Engine
}

func New(authSvc *auth.Service, postSvc *posts.Service, sessions session.Store, templateDir string) (*Server, error) {
	templates := map[string]*template.Template{}
	layout := filepath.Join(templateDir, "layout.html")
	pages, err := filepath.Glob(filepath.Join(templateDir, "*.html"))
	if err != nil {
		return nil, err
	}
	for _, page := range pages {
		if filepath.Base(page) == "layout.html" {
			continue
		}
		t, err := template.ParseFiles(layout, page)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(page), ".html")
		templates[name] = t
	}

	s := &Server{
		auth:     authSvc,
		posts:    postSvc,
		sessions: sessions,
		tmpl:     templates,
	}
	s.engine = s.routes()
	return s, nil
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	guard := middleware.NewAuth(s.sessions)

	r.GET("/", s.handleHome)
	r.GET("/register", s.handleRegisterForm)
	r.POST("/register", s.handleRegister)
	r.GET("/login", s.handleLoginForm)
	r.POST("/login", s.handleLogin)
	r.GET("/logout", s.handleLogout)
	r.POST("/contact", s.handleContact)
	r.GET("/posts/:id", s.handlePost)

	r.GET("/admin/register", s.handleAdminRegisterForm)
	r.POST("/admin/register", s.handleAdminRegister)
	r.GET("/admin/dashboard", guard.RequireAuth(), middleware.RequireAdmin(), s.handleAdminDashboard)

	r.GET("/dashboard", guard.RequireAuth(), s.handleDashboard)
	r.GET("/compose", guard.RequireAuth(), s.handleComposeForm)
	r.POST("/compose", guard.RequireAuth(), s.handleCompose)
	r.GET("/edit/:postId", guard.RequireAuth(), s.handleEditForm)
	r.POST("/edit/:postId", guard.RequireAuth(), s.handleEdit)
	r.POST("/delete/:postId", guard.RequireAuth(), s.handleDelete)

	return r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

func (s *Server) render(c *gin.Context, code int, name string, data gin.H) {
	t, ok := s.tmpl[name]
	if !ok {
		c.String(http.StatusInternalServerError, "template not found")
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(code)
	if err := t.ExecuteTemplate(c.Writer, "layout", data); err != nil {
		slog.Error("render failed", "template", name, "error", err)
	}
}

// serverError logs the underlying cause and answers with a generic 500.
func (s *Server) serverError(c *gin.Context, msg string, err error) {
	slog.Error(msg, "error", err)
	c.String(http.StatusInternalServerError, msg)
}

// currentUser reports whether the request carries a valid session. Public
// pages use it only to adjust navigation.
func (s *Server) currentUser(c *gin.Context) bool {
	cookie, err := c.Cookie(session.CookieName)
	if err != nil || cookie == "" {
		return false
	}
	ident, err := s.sessions.Get(c.Request.Context(), cookie)
	return err == nil && ident != nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
