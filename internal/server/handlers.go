package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog/internal/auth"
	"blog/internal/middleware"
	"blog/internal/models"
	"blog/internal/session"
)

type registerForm struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type loginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type adminRegisterForm struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type postForm struct {
	Subject string `form:"postSubject" binding:"required"`
	Title   string `form:"postTitle" binding:"required"`
	Body    string `form:"postBody" binding:"required"`
}

type contactForm struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Inquiry string `form:"inquiry"`
	Message string `form:"message"`
}

func (s *Server) handleHome(c *gin.Context) {
	all, err := s.posts.ListAll(c.Request.Context())
	if err != nil {
		s.serverError(c, "Error fetching posts", err)
		return
	}
	s.render(c, http.StatusOK, "home", gin.H{
		"Posts":       all,
		"CurrentUser": s.currentUser(c),
	})
}

func (s *Server) handleRegisterForm(c *gin.Context) {
	s.render(c, http.StatusOK, "register", gin.H{"CurrentUser": s.currentUser(c)})
}

func (s *Server) handleRegister(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "All fields are required")
		return
	}
	_, err := s.auth.Register(c.Request.Context(), form.Username, form.Email, form.Password)
	if errors.Is(err, models.ErrDuplicateEmail) {
		c.String(http.StatusBadRequest, "Email already registered")
		return
	}
	if err != nil {
		s.serverError(c, "Error registering user", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

func (s *Server) handleLoginForm(c *gin.Context) {
	s.render(c, http.StatusOK, "login", gin.H{"CurrentUser": s.currentUser(c)})
}

func (s *Server) handleLogin(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Email and password are required")
		return
	}
	token, isAdmin, err := s.auth.Login(c.Request.Context(), form.Email, form.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		s.render(c, http.StatusOK, "login", gin.H{
			"Message":     "Email or password is incorrect",
			"CurrentUser": false,
		})
		return
	}
	if err != nil {
		s.serverError(c, "Error logging in", err)
		return
	}
	session.SetCookie(c.Writer, token, time.Now().Add(s.auth.SessionTTL()))
	if isAdmin {
		c.Redirect(http.StatusSeeOther, "/admin/dashboard")
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (s *Server) handleLogout(c *gin.Context) {
	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie != "" {
		if err := s.auth.Logout(c.Request.Context(), cookie); err != nil {
			s.serverError(c, "Error logging out", err)
			return
		}
		session.ClearCookie(c.Writer)
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

func (s *Server) handleDashboard(c *gin.Context) {
	ident, _ := middleware.Identity(c)
	owned, err := s.posts.ListForDashboard(c.Request.Context(), ident.UserID)
	if err != nil {
		s.serverError(c, "Error fetching user's posts", err)
		return
	}
	s.render(c, http.StatusOK, "dashboard", gin.H{
		"Posts":       owned,
		"CurrentUser": true,
	})
}

func (s *Server) handleAdminDashboard(c *gin.Context) {
	all, err := s.posts.ListForAdmin(c.Request.Context())
	if err != nil {
		s.serverError(c, "Error fetching posts", err)
		return
	}
	s.render(c, http.StatusOK, "admin_dashboard", gin.H{
		"Posts":       all,
		"CurrentUser": true,
	})
}

func (s *Server) handleAdminRegisterForm(c *gin.Context) {
	s.render(c, http.StatusOK, "admin_register", gin.H{"CurrentUser": s.currentUser(c)})
}

func (s *Server) handleAdminRegister(c *gin.Context) {
	var form adminRegisterForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "All fields are required")
		return
	}
	_, err := s.auth.RegisterAdmin(c.Request.Context(), form.Name, form.Email, form.Password)
	if errors.Is(err, auth.ErrAdminExists) {
		c.String(http.StatusBadRequest, "Admin already registered")
		return
	}
	if errors.Is(err, models.ErrDuplicateEmail) {
		c.String(http.StatusBadRequest, "Email already registered")
		return
	}
	if err != nil {
		s.serverError(c, "Error registering admin", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

func (s *Server) handleComposeForm(c *gin.Context) {
	s.render(c, http.StatusOK, "compose", gin.H{"CurrentUser": true})
}

func (s *Server) handleCompose(c *gin.Context) {
	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "All fields are required")
		return
	}
	ident, _ := middleware.Identity(c)
	if _, err := s.posts.Compose(c.Request.Context(), ident.UserID, form.Subject, form.Title, form.Body); err != nil {
		s.serverError(c, "Error composing post", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (s *Server) handlePost(c *gin.Context) {
	id := atoi(c.Param("id"))
	post, err := s.posts.GetPublic(c.Request.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		c.String(http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		s.serverError(c, "Error fetching post", err)
		return
	}
	s.render(c, http.StatusOK, "post", gin.H{
		"Post":        post,
		"CurrentUser": s.currentUser(c),
	})
}

func (s *Server) handleEditForm(c *gin.Context) {
	ident, _ := middleware.Identity(c)
	id := atoi(c.Param("postId"))
	post, err := s.posts.GetForOwner(c.Request.Context(), id, ident.UserID)
	if errors.Is(err, models.ErrNotFound) {
		c.String(http.StatusNotFound, "Post not found or you do not have permission to edit it.")
		return
	}
	if err != nil {
		s.serverError(c, "Error fetching post for edit", err)
		return
	}
	s.render(c, http.StatusOK, "edit", gin.H{
		"Post":        post,
		"CurrentUser": true,
	})
}

func (s *Server) handleEdit(c *gin.Context) {
	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "All fields are required")
		return
	}
	ident, _ := middleware.Identity(c)
	id := atoi(c.Param("postId"))
	err := s.posts.Edit(c.Request.Context(), id, ident.UserID, form.Subject, form.Title, form.Body)
	if errors.Is(err, models.ErrNotFound) {
		c.String(http.StatusNotFound, "Post not found or you do not have permission to edit it.")
		return
	}
	if err != nil {
		s.serverError(c, "Error updating post", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (s *Server) handleDelete(c *gin.Context) {
	ident, _ := middleware.Identity(c)
	id := atoi(c.Param("postId"))
	err := s.posts.Delete(c.Request.Context(), id, ident.UserID)
	if errors.Is(err, models.ErrNotFound) {
		c.String(http.StatusNotFound, "Post not found or you do not have permission to delete it.")
		return
	}
	if err != nil {
		s.serverError(c, "Error deleting post", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// handleContact accepts the inquiry and drops it; there is deliberately no
// outbound mail or persistence here.
func (s *Server) handleContact(c *gin.Context) {
	var form contactForm
	_ = c.ShouldBind(&form)
	slog.Info("contact inquiry received", "name", form.Name, "inquiry", form.Inquiry)
	c.Redirect(http.StatusSeeOther, "/")
}
