package environment

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/raveberry/netinfo-agent/internal/constants"
)

type Environment struct {
	Agent
}

type Agent struct {
	ListenAddr         string
	IwgetidExecutable  string
	PasswordHelperPath string
	AdminPasswordHash  string `validate:"required"`
	SessionSecret      string `validate:"required"`
	LogfilePath        string
	LogLevel           string
}

func New() (e Environment, err error) {
	v := viper.New()
	v.AutomaticEnv()

	// agent settings
	v.SetEnvPrefix("NETINFO")
	e.Agent.ListenAddr = v.GetString("LISTEN_ADDR")
	if lo.IsEmpty(e.Agent.ListenAddr) {
		e.Agent.ListenAddr = constants.DefaultListenAddr
	}
	e.Agent.IwgetidExecutable = v.GetString("IWGETID_PATH")
	if lo.IsEmpty(e.Agent.IwgetidExecutable) {
		e.Agent.IwgetidExecutable = constants.DefaultIwgetidExecutable
	}
	e.Agent.PasswordHelperPath = v.GetString("PASSWORD_HELPER")
	if lo.IsEmpty(e.Agent.PasswordHelperPath) {
		e.Agent.PasswordHelperPath = constants.DefaultPasswordHelperPath
	}
	e.Agent.AdminPasswordHash = v.GetString("ADMIN_PASSWORD_HASH")
	e.Agent.SessionSecret = v.GetString("SESSION_SECRET")
	e.Agent.LogfilePath = v.GetString("LOG_FILE")
	if lo.IsEmpty(e.Agent.LogfilePath) {
		e.Agent.LogfilePath = constants.DefaultLogfilePath
	}
	e.Agent.LogLevel = v.GetString("LOG_LEVEL")
	if lo.IsEmpty(e.Agent.LogLevel) {
		e.Agent.LogLevel = "info"
	}

	if err = validator.New().Struct(e.Agent); err != nil {
		return e, fmt.Errorf("New: %w", err)
	}

	return e, nil
}

func (e Agent) IsDebug() bool {
	return e.LogLevel == "debug"
}
