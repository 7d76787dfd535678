package handlers

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"finance-tracker/internal/session"
	"finance-tracker/internal/storage"
	"finance-tracker/web"

	"github.com/go-playground/validator/v10"
)

const (
	// SessionCookieName is the name of the session cookie.
	SessionCookieName = "session"
	// FlashCookieName is the name of the one-shot flash message cookie.
	FlashCookieName = "flash"
)

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	stores       *storage.Stores
	sessions     *session.Manager
	secureCookie bool
	validate     *validator.Validate
	logger       *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(stores *storage.Stores, sessions *session.Manager, secureCookie bool, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		stores:       stores,
		sessions:     sessions,
		secureCookie: secureCookie,
		validate:     validator.New(),
		logger:       logger,
	}
}

// Flash is a transient status message shown once on the next rendered page.
// Kind is "success" or "danger", mirroring the alert classes the templates
// use.
type Flash struct {
	Kind    string
	Message string
}

// BasePage carries the fields every view receives.
type BasePage struct {
	User  string
	Flash *Flash
}

func (h *Handlers) newBasePage(w http.ResponseWriter, r *http.Request) BasePage {
	return BasePage{
		User:  h.currentUser(r),
		Flash: h.popFlash(w, r),
	}
}

// currentUser returns the logged-in account email, or "" for anonymous.
func (h *Handlers) currentUser(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	email, ok := h.sessions.Get(cookie.Value)
	if !ok {
		return ""
	}
	return email
}

// RequireAuth gates a handler behind session presence, redirecting anonymous
// requests to the login page.
func (h *Handlers) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.currentUser(r) == "" {
			h.setFlash(w, "danger", "Please log in first.")
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handlers) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessions.TTL() / time.Second),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handlers) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// setFlash stores a one-shot message in a cookie consumed by the next render.
func (h *Handlers) setFlash(w http.ResponseWriter, kind, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    url.QueryEscape(kind + "|" + message),
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads and clears the flash cookie.
func (h *Handlers) popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(FlashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}
	kind, message, ok := strings.Cut(value, "|")
	if !ok {
		return &Flash{Kind: "success", Message: value}
	}
	return &Flash{Kind: kind, Message: message}
}

// redirectWithFlash is the standard outcome of every mutating route.
func (h *Handlers) redirectWithFlash(w http.ResponseWriter, r *http.Request, target, kind, message string) {
	h.setFlash(w, kind, message)
	http.Redirect(w, r, target, http.StatusFound)
}

// fail converts an error at the route boundary. Domain errors become a flash
// message and a redirect back to a safe page; anything else (disk full,
// permission denied, parse failure) is logged and surfaces as a 500 instead
// of crashing the request.
func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, err error, redirectTo string) {
	var message string
	switch {
	case errors.Is(err, storage.ErrNotFound):
		message = "Record not found."
	case errors.Is(err, storage.ErrDuplicateEmail):
		message = "That email is already registered. Try another."
	case errors.Is(err, storage.ErrInvalidCredentials):
		message = "Invalid email or password."
	default:
		h.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	h.redirectWithFlash(w, r, redirectTo, "danger", message)
}

func (h *Handlers) render(w http.ResponseWriter, viewName string, data any) {
	tmpl, err := template.ParseFS(web.TemplatesFS, "templates/base.html", "templates/"+viewName)
	if err != nil {
		h.logger.Error("template parse failed", "view", viewName, "error", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		h.logger.Error("template execution failed", "view", viewName, "error", err)
	}
}
