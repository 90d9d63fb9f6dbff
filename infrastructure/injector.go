package infrastructure

import (
	"github.com/raveberry/netinfo-agent/internal/domains/auth"
	"github.com/raveberry/netinfo-agent/internal/domains/networkinfo"
	"github.com/raveberry/netinfo-agent/internal/environment"
)

type IInjector interface {
	InjectNetworkInfoHandler() *networkinfo.Handler
	InjectAuthHandler() *auth.Handler
}

type Kernel struct {
	env environment.Environment
}

func Inject(env environment.Environment) *Kernel {
	return &Kernel{
		env: env,
	}
}

func (k *Kernel) InjectNetworkInfoHandler() *networkinfo.Handler {
	return networkinfo.NewHandler(
		k.InjectAuthService(),
		k.InjectNetProbeService(),
		k.InjectQRService(),
	)
}

func (k *Kernel) InjectAuthHandler() *auth.Handler {
	return auth.NewHandler(
		k.InjectAuthService(),
	)
}
