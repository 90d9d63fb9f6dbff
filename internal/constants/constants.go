package constants

import "os"

const (
	LogFilePerm os.FileMode = 0644

	DefaultLogfilePath = "/var/log/raveberry/netinfo.log"
	DefaultListenAddr  = ":9870"

	// Networking CLI tools the probes shell out to.
	IPExecutable              = "ip"
	SudoExecutable            = "sudo"
	DefaultIwgetidExecutable  = "/sbin/iwgetid"
	DefaultPasswordHelperPath = "/usr/local/sbin/raveberry/password_for_ssid"

	SessionCookieName = "netinfo_session"
)

// HTTP routes.
const (
	RouteNetworkInfo = "/network_info"
	RouteWifiQR      = "/network_info/qr/wifi.svg"
	RouteURLQR       = "/network_info/qr/url.svg"
	RouteLogin       = "/login"
	RouteHealthz     = "/healthz"
)
