package main

import (
	"net/http"

	"github.com/raveberry/netinfo-agent/infrastructure"
	"github.com/raveberry/netinfo-agent/internal/constants"
)

func getHTTPRoutes(injector infrastructure.IInjector) map[string]http.Handler {
	networkInfoHandler := injector.InjectNetworkInfoHandler()
	authHandler := injector.InjectAuthHandler()

	return map[string]http.Handler{
		constants.RouteNetworkInfo: http.HandlerFunc(networkInfoHandler.Index),
		constants.RouteWifiQR:      http.HandlerFunc(networkInfoHandler.WifiQR),
		constants.RouteURLQR:       http.HandlerFunc(networkInfoHandler.URLQR),
		constants.RouteLogin:       http.HandlerFunc(authHandler.Login),
	}
}
