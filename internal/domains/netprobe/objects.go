package netprobe

// NetworkFacts describes the host's current network identity. It is rebuilt
// on every request; network state can change between requests, so caching a
// facts value would serve stale data.
type NetworkFacts struct {
	DefaultDevice string
	IP            string
	Wifi          WifiStatus
}

// WifiStatus reports whether a wireless interface is associated. SSID and
// Password are only meaningful while Active is true; PasswordSet stays false
// when the stored passphrase could not be resolved.
type WifiStatus struct {
	Active      bool
	SSID        string
	Password    string
	PasswordSet bool
}
