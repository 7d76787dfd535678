package handlers

import (
	"net/http"
	"strings"
)

// HomeViewModel holds data for the home page.
type HomeViewModel struct {
	BasePage
}

// Home renders the landing page, showing the logged-in identity if present.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index.html", HomeViewModel{BasePage: h.newBasePage(w, r)})
}

// RegisterForm renders the registration page.
func (h *Handlers) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "register.html", HomeViewModel{BasePage: h.newBasePage(w, r)})
}

// Register handles the registration form submission.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.redirectWithFlash(w, r, "/register", "danger", "Invalid form submission.")
		return
	}

	form := registerForm{
		Email:           strings.TrimSpace(r.FormValue("email")),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
	}
	if err := h.validateForm(form); err != nil {
		h.redirectWithFlash(w, r, "/register", "danger", err.Error())
		return
	}

	account, err := h.stores.Accounts.Register(form.Email, form.Password)
	if err != nil {
		h.fail(w, r, err, "/register")
		return
	}

	h.logger.Info("account registered", "email", account.Email, "id", account.ID)
	h.redirectWithFlash(w, r, "/login", "success", "Registration successful! You can log in now.")
}

// LoginForm renders the login page. Already-authenticated browsers are sent
// home instead.
func (h *Handlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	if h.currentUser(r) != "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	h.render(w, "login.html", HomeViewModel{BasePage: h.newBasePage(w, r)})
}

// Login handles the login form submission and establishes a session.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.redirectWithFlash(w, r, "/login", "danger", "Invalid form submission.")
		return
	}

	form := loginForm{
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
	}
	if err := h.validateForm(form); err != nil {
		h.redirectWithFlash(w, r, "/login", "danger", err.Error())
		return
	}

	account, err := h.stores.Accounts.Authenticate(form.Email, form.Password)
	if err != nil {
		h.fail(w, r, err, "/login")
		return
	}

	sess, err := h.sessions.Create(account.Email)
	if err != nil {
		h.fail(w, r, err, "/login")
		return
	}
	h.setSessionCookie(w, sess.Token)

	h.logger.Info("login", "email", account.Email)
	h.redirectWithFlash(w, r, "/", "success", "Logged in successfully!")
}

// Logout destroys the session and clears the cookie.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		h.sessions.Destroy(cookie.Value)
	}
	h.clearSessionCookie(w)
	h.redirectWithFlash(w, r, "/", "success", "You have been logged out.")
}
