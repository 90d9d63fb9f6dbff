package infrastructure

import (
	"sync"

	"github.com/raveberry/netinfo-agent/internal/domains/auth"
	"github.com/raveberry/netinfo-agent/internal/domains/netprobe"
	"github.com/raveberry/netinfo-agent/internal/domains/qrsvg"
	"github.com/raveberry/netinfo-agent/internal/domains/shell"
)

var (
	shellService     *shell.Service
	shellServiceOnce sync.Once
)

func (k *Kernel) InjectShellService() *shell.Service {
	shellServiceOnce.Do(func() {
		shellService = shell.NewService()
	})

	return shellService
}

var (
	netProbeService     *netprobe.Service
	netProbeServiceOnce sync.Once
)

func (k *Kernel) InjectNetProbeService() *netprobe.Service {
	netProbeServiceOnce.Do(func() {
		netProbeService = netprobe.NewService(
			k.InjectShellService(),
			k.env.IwgetidExecutable,
			k.env.PasswordHelperPath,
		)
	})

	return netProbeService
}

var (
	qrService     *qrsvg.Service
	qrServiceOnce sync.Once
)

func (k *Kernel) InjectQRService() *qrsvg.Service {
	qrServiceOnce.Do(func() {
		qrService = qrsvg.NewService()
	})

	return qrService
}

var (
	authService     *auth.Service
	authServiceOnce sync.Once
)

func (k *Kernel) InjectAuthService() *auth.Service {
	authServiceOnce.Do(func() {
		authService = auth.NewService(
			k.env.AdminPasswordHash,
			k.env.SessionSecret,
		)
	})

	return authService
}
