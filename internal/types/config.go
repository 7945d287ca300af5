package types

import (
	"fmt"
	"strings"
)

// DeviceType is the device-type code declared by a device section (`tss_type`).
type DeviceType int

const (
	DeviceTypeAsignOnline  DeviceType = 1
	DeviceTypeCryptoVision DeviceType = 2
)

// ParseDeviceType accepts the numeric codes used in configuration files.
func ParseDeviceType(s string) (DeviceType, bool) {
	switch strings.TrimSpace(s) {
	case "1":
		return DeviceTypeAsignOnline, true
	case "2":
		return DeviceTypeCryptoVision, true
	}
	return 0, false
}

func (t DeviceType) String() string {
	switch t {
	case DeviceTypeAsignOnline:
		return "asign-online"
	case DeviceTypeCryptoVision:
		return "cryptovision"
	}
	return fmt.Sprintf("unknown(%d)", int(t))
}

const (
	DefaultDeviceName   = "default"
	GeneralSectionName  = "config"
	DefaultConfigFile   = "asigntseonline.conf"
	DefaultLogFileName  = "sculink.log"
	SCUAPIVersionPrefix = "v1"
)

// Keys of a device section.
const (
	KeyDeviceType   = "tss_type"
	KeySCUURL       = "scu_url"
	KeyName         = "name"
	KeyVTSSID       = "atrust_vtss_id"
	KeyAPIKey       = "atrust_api_key"
	KeyTimeAdminID  = "time_admin_id"
	KeyTimeAdminPwd = "time_admin_pwd"
)

// Keys of the general `config` section.
const (
	KeyHTTPProxy         = "http_proxy"
	KeyHTTPProxyUsername = "http_proxy_username"
	KeyHTTPProxyPassword = "http_proxy_password"
	KeyTimeout           = "timeout"
	KeyRetries           = "retries"
	KeyLoggingEnabled    = "logging_enabled"
	KeyLoggingStderr     = "logging_stderr"
	KeyLoggingFile       = "logging_file"
	KeyLogDir            = "log_dir"
	KeyLogLevel          = "log_level"
	KeyLogAppend         = "log_append"
	KeyLogColors         = "log_colors"
	KeyLogDetails        = "log_details"
	KeyLogStderrColors   = "log_stderr_colors"
	KeyMsgUploadInterval = "msg_upload_interval"
	KeyMaxAuditLogSize   = "max_audit_log_size"
)

// DeviceConfig identifies one logical signing device and the SCU serving it.
// Values are handed out by copy; callers own their snapshot.
type DeviceConfig struct {
	Name         string     `json:"name" yaml:"name"`
	Type         DeviceType `json:"tss_type" yaml:"tss_type"`
	SCUURL       string     `json:"scu_url" yaml:"scu_url"`
	VTSSID       string     `json:"atrust_vtss_id,omitempty" yaml:"atrust_vtss_id,omitempty"`
	APIKey       string     `json:"atrust_api_key,omitempty" yaml:"atrust_api_key,omitempty"`
	TimeAdminID  string     `json:"time_admin_id,omitempty" yaml:"time_admin_id,omitempty"`
	TimeAdminPwd string     `json:"time_admin_pwd,omitempty" yaml:"time_admin_pwd,omitempty"`
}

// GeneralConfig holds the process-wide settings of the `config` section.
// Timeout, Retries, MsgUploadInterval and MaxAuditLogSize are stored but not enforced.
type GeneralConfig struct {
	HTTPProxy         string
	HTTPProxyUsername string
	HTTPProxyPassword string
	Timeout           uint64
	Retries           uint64
	LoggingEnabled    bool
	LoggingStderr     bool
	LoggingFile       bool
	LogDir            string
	LogLevel          string
	LogAppend         bool
	LogColors         bool
	LogDetails        bool
	LogStderrColors   bool
	MsgUploadInterval uint32
	MaxAuditLogSize   uint32
}

func DefaultGeneralConfig() GeneralConfig {
	return GeneralConfig{
		Timeout:           1500,
		Retries:           1,
		LogDir:            ".",
		LogLevel:          "trace",
		LogAppend:         true,
		LogDetails:        true,
		MsgUploadInterval: 86400,
		MaxAuditLogSize:   128,
	}
}

// Section is one named block of key/value pairs, independent of the file syntax
// or backend it was read from.
type Section struct {
	Name   string            `json:"name" yaml:"name" dynamodbav:"name"`
	Values map[string]string `json:"values" yaml:"values" dynamodbav:"values"`
}

// Validate checks that a device section can be turned into a DeviceConfig.
func (s Section) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("section name is required")
	}
	if s.Name == GeneralSectionName {
		return nil
	}
	if _, ok := ParseDeviceType(s.Values[KeyDeviceType]); !ok {
		return fmt.Errorf("%s must be 1 or 2, got %q", KeyDeviceType, s.Values[KeyDeviceType])
	}
	if strings.TrimSpace(s.Values[KeySCUURL]) == "" {
		return fmt.Errorf("%s is required", KeySCUURL)
	}
	return nil
}
