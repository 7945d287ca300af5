package capi

import (
	"sculink/internal/logging"
	"sculink/internal/retcode"
	"sculink/internal/types"

	log "github.com/sirupsen/logrus"
)

// SetConfigFile loads path, replacing every device and the general settings,
// then rebuilds the HTTP client and reapplies logging. The client is rebuilt
// even when the new logging settings are rejected.
func (a *Adapter) SetConfigFile(path string) retcode.Code {
	const op = "cfgSetConfigFile"
	log.WithField("path", path).Info(op)
	if !a.Store.Load(path) {
		return fail(op, "", types.Err(types.ErrConfigFileNotFound, nil, "%s", path), retcode.Unknown)
	}
	a.Clients.Rebuild()
	if err := logging.Configure(a.Store.GeneralSettings()); err != nil {
		return fail(op, "", err, retcode.Unknown)
	}
	return retcode.ExecutionOk
}

// setLogging applies fn and reconfigures logging. A rejected change is rolled
// back.
func (a *Adapter) setLogging(op string, fn func(g *types.GeneralConfig)) retcode.Code {
	log.Info(op)
	prev := a.Store.GeneralSettings()
	if err := logging.Configure(a.Store.UpdateGeneral(fn)); err != nil {
		a.Store.UpdateGeneral(func(g *types.GeneralConfig) { *g = prev })
		return fail(op, "", types.Err(types.ErrInvalidInput, err, "%s", op), retcode.Unknown)
	}
	return retcode.ExecutionOk
}

func (a *Adapter) SetLoggingEnabled(enabled bool) retcode.Code {
	return a.setLogging("cfgSetLoggingEnabled", func(g *types.GeneralConfig) { g.LoggingEnabled = enabled })
}

func (a *Adapter) SetLoggingStderr(enabled bool) retcode.Code {
	return a.setLogging("cfgSetLoggingStderr", func(g *types.GeneralConfig) { g.LoggingStderr = enabled })
}

func (a *Adapter) SetLoggingFile(enabled bool) retcode.Code {
	return a.setLogging("cfgSetLoggingFile", func(g *types.GeneralConfig) { g.LoggingFile = enabled })
}

func (a *Adapter) SetLogDir(dir string) retcode.Code {
	return a.setLogging("cfgSetLogDir", func(g *types.GeneralConfig) { g.LogDir = dir })
}

func (a *Adapter) SetLogLevel(level string) retcode.Code {
	return a.setLogging("cfgSetLogLevel", func(g *types.GeneralConfig) { g.LogLevel = level })
}

func (a *Adapter) SetLogAppend(enabled bool) retcode.Code {
	return a.setLogging("cfgSetLogAppend", func(g *types.GeneralConfig) { g.LogAppend = enabled })
}

func (a *Adapter) SetLogColors(enabled bool) retcode.Code {
	return a.setLogging("cfgSetLogColors", func(g *types.GeneralConfig) { g.LogColors = enabled })
}

func (a *Adapter) SetLogDetails(enabled bool) retcode.Code {
	return a.setLogging("cfgSetLogDetails", func(g *types.GeneralConfig) { g.LogDetails = enabled })
}

func (a *Adapter) SetLogStderrColors(enabled bool) retcode.Code {
	return a.setLogging("cfgSetLogStderrColors", func(g *types.GeneralConfig) { g.LogStderrColors = enabled })
}

// SetHTTPProxy sets the proxy without credentials and rebuilds the client. An
// empty url disables the proxy.
func (a *Adapter) SetHTTPProxy(url string) retcode.Code {
	return a.SetHTTPProxyWithCredentials(url, "", "")
}

func (a *Adapter) SetHTTPProxyWithCredentials(url, username, password string) retcode.Code {
	log.Info("cfgSetHttpProxy")
	a.Store.UpdateGeneral(func(g *types.GeneralConfig) {
		g.HTTPProxy = url
		g.HTTPProxyUsername = username
		g.HTTPProxyPassword = password
	})
	a.Clients.Rebuild()
	return retcode.ExecutionOk
}

func (a *Adapter) SetTimeout(timeout uint64) retcode.Code {
	log.WithField("timeout", timeout).Info("cfgSetTimeout")
	a.Store.UpdateGeneral(func(g *types.GeneralConfig) { g.Timeout = timeout })
	return retcode.ExecutionOk
}

func (a *Adapter) SetRetries(retries uint64) retcode.Code {
	log.WithField("retries", retries).Info("cfgSetRetries")
	a.Store.UpdateGeneral(func(g *types.GeneralConfig) { g.Retries = retries })
	return retcode.ExecutionOk
}

func (a *Adapter) SetUploadMessageInterval(interval uint32) retcode.Code {
	log.WithField("interval", interval).Info("cfgSetUploadMessageInterval")
	a.Store.UpdateGeneral(func(g *types.GeneralConfig) { g.MsgUploadInterval = interval })
	return retcode.ExecutionOk
}

func (a *Adapter) SetMaxAuditLogSize(maximum uint32) retcode.Code {
	log.WithField("maximum", maximum).Info("cfgSetMaxAuditLogSize")
	a.Store.UpdateGeneral(func(g *types.GeneralConfig) { g.MaxAuditLogSize = maximum })
	return retcode.ExecutionOk
}
