package networkinfo

import "html/template"

// PageContext is the template contract of the network info page. The wifi
// fields hold zero values while no wireless interface is associated.
type PageContext struct {
	SSID         string
	Password     string
	WifiQR       template.HTML
	RaveberryURL string
	RaveberryQR  template.HTML
	IP           string
}
