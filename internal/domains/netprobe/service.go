package netprobe

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/raveberry/netinfo-agent/internal/constants"
	"github.com/raveberry/netinfo-agent/internal/errs"
)

const (
	devMarker  = "dev"
	inetPrefix = "inet"
)

type (
	IShellService interface {
		ExecOutput(name string, args ...string) (output []byte, err error)
	}
)

type Service struct {
	shellService       IShellService
	iwgetidExecutable  string
	passwordHelperPath string
}

func NewService(shellService IShellService, iwgetidExecutable, passwordHelperPath string) *Service {
	return &Service{
		shellService:       shellService,
		iwgetidExecutable:  iwgetidExecutable,
		passwordHelperPath: passwordHelperPath,
	}
}

// DefaultDevice returns the interface carrying the default route.
func (s *Service) DefaultDevice() (device string, err error) {
	output, err := s.shellService.ExecOutput(constants.IPExecutable, "route", "show", "default")
	if err != nil {
		return device, fmt.Errorf("DefaultDevice: %w", err)
	}

	// "dev <name>" may occur once per route; the last route listed wins.
	words := strings.Fields(string(output))
	for i := 0; i+1 < len(words); i++ {
		if words[i] == devMarker {
			device = words[i+1]
		}
	}

	if lo.IsEmpty(device) {
		return device, fmt.Errorf("DefaultDevice: %w", errs.ErrDeviceNotFound)
	}

	return device, nil
}

// IPv4Of returns the first IPv4 address assigned to the device, without the
// prefix length suffix.
func (s *Service) IPv4Of(device string) (ip string, err error) {
	output, err := s.shellService.ExecOutput(constants.IPExecutable, "-4", "a", "show", "dev", device)
	if err != nil {
		return ip, fmt.Errorf("IPv4Of: %w", err)
	}

	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, inetPrefix) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) > 1 {
			ip, _, _ = strings.Cut(fields[1], "/")
			break
		}
	}

	if lo.IsEmpty(ip) {
		return ip, fmt.Errorf("IPv4Of: %s: %w", device, errs.ErrAddressNotFound)
	}

	return ip, nil
}

// WifiStatus reports the current wireless association. A failing iwgetid
// means no association, and a failing password helper means the passphrase
// is simply not stored; neither is an error.
func (s *Service) WifiStatus() (status WifiStatus) {
	output, err := s.shellService.ExecOutput(s.iwgetidExecutable, "--raw")
	if err != nil {
		log.Debug().Err(err).Msg("WifiStatus: wifi considered inactive")
		return status
	}

	status.Active = true
	status.SSID = strings.TrimSuffix(string(output), "\n")

	// the helper needs root to read the stored network profiles
	output, err = s.shellService.ExecOutput(constants.SudoExecutable, s.passwordHelperPath, status.SSID)
	if err != nil {
		log.Debug().Err(err).Str("ssid", status.SSID).Msg("WifiStatus: no stored passphrase")
		return status
	}

	status.Password = strings.TrimSuffix(string(output), "\n")
	status.PasswordSet = true

	return status
}

// Probe collects the full facts value in one pass.
func (s *Service) Probe() (facts NetworkFacts, err error) {
	if facts.DefaultDevice, err = s.DefaultDevice(); err != nil {
		return facts, fmt.Errorf("Probe: %w", err)
	}

	if facts.IP, err = s.IPv4Of(facts.DefaultDevice); err != nil {
		return facts, fmt.Errorf("Probe: %w", err)
	}

	facts.Wifi = s.WifiStatus()

	return facts, nil
}
