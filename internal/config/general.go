package config

import (
	"sculink/internal/types"
	"strconv"
	"strings"
)

// parseGeneral builds the general settings from a `config` section. Missing or
// unparsable values keep their defaults, except log_details which is off
// unless the section enables it.
func parseGeneral(values map[string]string) types.GeneralConfig {
	g := types.DefaultGeneralConfig()
	g.LogDetails = false

	g.HTTPProxy = values[types.KeyHTTPProxy]
	g.HTTPProxyUsername = values[types.KeyHTTPProxyUsername]
	g.HTTPProxyPassword = values[types.KeyHTTPProxyPassword]
	g.Timeout = parseUint(values, types.KeyTimeout, g.Timeout, 64)
	g.Retries = parseUint(values, types.KeyRetries, g.Retries, 64)
	g.LoggingEnabled = parseBool(values, types.KeyLoggingEnabled, g.LoggingEnabled)
	g.LoggingStderr = parseBool(values, types.KeyLoggingStderr, g.LoggingStderr)
	g.LoggingFile = parseBool(values, types.KeyLoggingFile, g.LoggingFile)
	if v := values[types.KeyLogDir]; v != "" {
		g.LogDir = v
	}
	if v := values[types.KeyLogLevel]; v != "" {
		g.LogLevel = strings.ToLower(v)
	}
	g.LogAppend = parseBool(values, types.KeyLogAppend, g.LogAppend)
	g.LogColors = parseBool(values, types.KeyLogColors, g.LogColors)
	g.LogDetails = parseBool(values, types.KeyLogDetails, g.LogDetails)
	g.LogStderrColors = parseBool(values, types.KeyLogStderrColors, g.LogStderrColors)
	g.MsgUploadInterval = uint32(parseUint(values, types.KeyMsgUploadInterval, uint64(g.MsgUploadInterval), 32))
	g.MaxAuditLogSize = uint32(parseUint(values, types.KeyMaxAuditLogSize, uint64(g.MaxAuditLogSize), 32))
	return g
}

func parseBool(values map[string]string, key string, def bool) bool {
	v, ok := values[key]
	if !ok {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func parseUint(values map[string]string, key string, def uint64, bits int) uint64 {
	v, ok := values[key]
	if !ok {
		return def
	}
	n, err := strconv.ParseUint(strings.TrimSpace(v), 10, bits)
	if err != nil {
		return def
	}
	return n
}
