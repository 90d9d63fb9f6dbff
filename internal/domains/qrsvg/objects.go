package qrsvg

import (
	"fmt"
)

// PasswordPlaceholder is interpolated into the wifi payload when no stored
// passphrase was resolved. Deployed scanner apps already tolerate the
// literal, so it is kept verbatim.
const PasswordPlaceholder = "None"

// WifiPayload builds the join string scanned by phone cameras, for example
// "WIFI:S:MyNet;T:WPA;P:hunter2;;".
func WifiPayload(status WifiCredentials) string {
	password := status.Password
	if !status.PasswordSet {
		password = PasswordPlaceholder
	}

	return fmt.Sprintf("WIFI:S:%s;T:WPA;P:%s;;", status.SSID, password)
}

// URLPayload builds the page URL payload for the given host address.
func URLPayload(ip string) string {
	return fmt.Sprintf("http://%s/", ip)
}

type WifiCredentials struct {
	SSID        string
	Password    string
	PasswordSet bool
}
