package auth

import (
	_ "embed"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/raveberry/netinfo-agent/internal/constants"
)

//go:embed templates/login.html
var loginHTML string

var loginTemplate = template.Must(template.New("login").Parse(loginHTML))

type (
	IAuthService interface {
		Login(password string) (token string, err error)
	}
)

type Handler struct {
	authService IAuthService
}

func NewHandler(authService IAuthService) *Handler {
	return &Handler{
		authService: authService,
	}
}

// Login renders the login form and handles its submission.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.render(w, http.StatusOK, loginContext{})
	case http.MethodPost:
		token, err := h.authService.Login(r.PostFormValue("password"))
		if err != nil {
			log.Warn().Str("remote", r.RemoteAddr).Msg("Login: rejected")
			h.render(w, http.StatusUnauthorized, loginContext{Failed: true})
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     constants.SessionCookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, constants.RouteNetworkInfo, http.StatusSeeOther)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

type loginContext struct {
	Failed bool
}

func (h *Handler) render(w http.ResponseWriter, status int, ctx loginContext) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := loginTemplate.Execute(w, ctx); err != nil {
		log.Error().Err(err).Msg("render: login template")
	}
}
