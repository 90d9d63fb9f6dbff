package networkinfo

import (
	_ "embed"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/raveberry/netinfo-agent/internal/constants"
	"github.com/raveberry/netinfo-agent/internal/domains/netprobe"
	"github.com/raveberry/netinfo-agent/internal/domains/qrsvg"
)

//go:embed templates/network_info.html
var pageHTML string

var pageTemplate = template.Must(template.New("network_info").Parse(pageHTML))

type (
	IAuthService interface {
		IsAdmin(r *http.Request) bool
	}

	INetworkProbeService interface {
		DefaultDevice() (device string, err error)
		IPv4Of(device string) (ip string, err error)
		WifiStatus() (status netprobe.WifiStatus)
	}

	IQRService interface {
		Fragment(payload string) (fragment string, err error)
		Document(payload string) (document string, err error)
	}
)

type Handler struct {
	authService  IAuthService
	probeService INetworkProbeService
	qrService    IQRService
}

func NewHandler(authService IAuthService, probeService INetworkProbeService, qrService IQRService) *Handler {
	return &Handler{
		authService:  authService,
		probeService: probeService,
		qrService:    qrService,
	}
}

// Index renders the network info page. Only admins are allowed to see it;
// everyone else is sent to the login page before any probe runs.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	if !h.authService.IsAdmin(r) {
		http.Redirect(w, r, constants.RouteLogin, http.StatusSeeOther)
		return
	}

	ctx, err := h.buildPageContext()
	if err != nil {
		log.Error().Err(err).Msg("Index")
		http.Error(w, "network probe failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err = pageTemplate.Execute(w, ctx); err != nil {
		log.Error().Err(err).Msg("Index: template")
	}
}

func (h *Handler) buildPageContext() (ctx PageContext, err error) {
	device, err := h.probeService.DefaultDevice()
	if err != nil {
		return ctx, err
	}

	if ctx.IP, err = h.probeService.IPv4Of(device); err != nil {
		return ctx, err
	}

	wifi := h.probeService.WifiStatus()
	if wifi.Active {
		ctx.SSID = wifi.SSID
		ctx.Password = wifi.Password

		fragment, err := h.qrService.Fragment(qrsvg.WifiPayload(wifiCredentials(wifi)))
		if err != nil {
			return ctx, err
		}
		ctx.WifiQR = template.HTML(fragment) //nolint:gosec // fragment is locally rendered SVG, not user input
	}

	ctx.RaveberryURL = qrsvg.URLPayload(ctx.IP)
	fragment, err := h.qrService.Fragment(ctx.RaveberryURL)
	if err != nil {
		return ctx, err
	}
	ctx.RaveberryQR = template.HTML(fragment) //nolint:gosec // fragment is locally rendered SVG, not user input

	return ctx, nil
}

// URLQR serves the page URL QR code as a standalone SVG download.
func (h *Handler) URLQR(w http.ResponseWriter, r *http.Request) {
	if !h.authService.IsAdmin(r) {
		http.Redirect(w, r, constants.RouteLogin, http.StatusSeeOther)
		return
	}

	device, err := h.probeService.DefaultDevice()
	if err != nil {
		log.Error().Err(err).Msg("URLQR")
		http.Error(w, "network probe failed", http.StatusInternalServerError)
		return
	}

	ip, err := h.probeService.IPv4Of(device)
	if err != nil {
		log.Error().Err(err).Msg("URLQR")
		http.Error(w, "network probe failed", http.StatusInternalServerError)
		return
	}

	h.serveDocument(w, qrsvg.URLPayload(ip))
}

// WifiQR serves the wifi join QR code as a standalone SVG download. It
// answers 404 while no wireless interface is associated.
func (h *Handler) WifiQR(w http.ResponseWriter, r *http.Request) {
	if !h.authService.IsAdmin(r) {
		http.Redirect(w, r, constants.RouteLogin, http.StatusSeeOther)
		return
	}

	wifi := h.probeService.WifiStatus()
	if !wifi.Active {
		http.Error(w, "wifi not active", http.StatusNotFound)
		return
	}

	h.serveDocument(w, qrsvg.WifiPayload(wifiCredentials(wifi)))
}

func (h *Handler) serveDocument(w http.ResponseWriter, payload string) {
	document, err := h.qrService.Document(payload)
	if err != nil {
		log.Error().Err(err).Msg("serveDocument")
		http.Error(w, "qr encoding failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write([]byte(document))
}

func wifiCredentials(status netprobe.WifiStatus) qrsvg.WifiCredentials {
	return qrsvg.WifiCredentials{
		SSID:        status.SSID,
		Password:    status.Password,
		PasswordSet: status.PasswordSet,
	}
}
