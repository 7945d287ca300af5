// Package capi implements the exported device API on top of the configuration
// store and the SCU transport. Every method corresponds to one exported entry
// function: it resolves the device, performs the SCU round trips, writes the
// outputs and returns the numeric return code. Outputs are written only after
// the whole operation succeeded.
package capi

import (
	"context"
	"os"
	"sculink/internal/backends"
	"sculink/internal/config"
	"sculink/internal/ffi"
	"sculink/internal/httpclient"
	"sculink/internal/logging"
	"sculink/internal/ports"
	"sculink/internal/retcode"
	"sculink/internal/scu"
	"sculink/internal/types"
	"sync"
	"unsafe"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	// ConfigFileEnvKey names the configuration file loaded on first use.
	ConfigFileEnvKey = "SCULINK_CONFIG_FILE"

	// Version is reported by at_getVersion.
	Version = "sculink 1.0.0"
)

type Adapter struct {
	Store   *config.Store
	Clients *httpclient.Factory
	// Dial returns the SCU serving a resolved device.
	Dial func(types.DeviceConfig) ports.SCU
}

// Buffer is an output slot pair supplied by the caller.
type Buffer struct {
	Ptr *unsafe.Pointer
	Len *uint32
}

func (b Buffer) setBytes(data []byte)       { ffi.SetBytes(b.Ptr, b.Len, data) }
func (b Buffer) setString(s string)         { ffi.SetString(b.Ptr, b.Len, s) }
func (b Buffer) setStrings(values []string) { ffi.SetStrings(b.Ptr, b.Len, values) }

func New(store *config.Store, clients *httpclient.Factory) *Adapter {
	return &Adapter{
		Store:   store,
		Clients: clients,
		Dial: func(dc types.DeviceConfig) ports.SCU {
			return scu.NewClient(dc.SCUURL, clients)
		},
	}
}

var (
	defaultOnce    sync.Once
	defaultAdapter *Adapter
)

// Default returns the process-wide adapter used by the exported functions.
// It is built on first use from the environment and the configuration file.
func Default() *Adapter {
	defaultOnce.Do(func() {
		envFile := os.Getenv("ENV_FILE")
		if envFile == "" {
			envFile = ".env"
		}
		if err := godotenv.Load(envFile); err != nil {
			log.Debug("The .env file not found.")
		}

		source, err := backends.SourceFromEnv()
		if err != nil {
			log.WithError(err).Error("remote configuration backend disabled")
		}
		store := config.NewStore(source)

		path := os.Getenv(ConfigFileEnvKey)
		if path == "" {
			path = types.DefaultConfigFile
		}
		store.Load(path)
		if err := logging.Configure(store.GeneralSettings()); err != nil {
			log.WithError(err).Warn("logging settings rejected, keeping defaults")
		}
		defaultAdapter = New(store, httpclient.NewFactory(store))
	})
	return defaultAdapter
}

// resolve looks device up. An empty name selects the default device.
func (a *Adapter) resolve(device string) (types.DeviceConfig, error) {
	if device == "" {
		device = types.DefaultDeviceName
	}
	dc, ok := a.Store.Resolve(device)
	if !ok {
		return types.DeviceConfig{}, types.Err(types.ErrDeviceNotConfigured, nil, "device %q", device)
	}
	return dc, nil
}

// open resolves device and dials its SCU.
func (a *Adapter) open(device string) (ports.SCU, error) {
	dc, err := a.resolve(device)
	if err != nil {
		return nil, err
	}
	return a.Dial(dc), nil
}

func enter(op, device string) {
	log.WithField("device", device).Info(op)
}

// fail logs err with its context and converts it. unsuccessful is the code
// reported when the SCU answered with a non-2xx status.
func fail(op, device string, err error, unsuccessful retcode.Code) retcode.Code {
	code := retcode.FromErrorOr(err, unsuccessful)
	log.WithError(err).WithFields(log.Fields{
		"operation": op,
		"device":    device,
		"code":      code.String(),
	}).Error("operation failed")
	return code
}

// call runs fn against the SCU of device and converts the outcome.
func (a *Adapter) call(op, device string, unsuccessful retcode.Code, fn func(ports.SCU) error) retcode.Code {
	enter(op, device)
	s, err := a.open(device)
	if err == nil {
		err = fn(s)
	}
	if err != nil {
		return fail(op, device, err, unsuccessful)
	}
	return retcode.ExecutionOk
}

// withInfo fetches the device info and hands it to write. write must check
// everything it needs before touching any output.
func (a *Adapter) withInfo(ctx context.Context, op, device string, unsuccessful retcode.Code, write func(types.TseInfo) error) retcode.Code {
	return a.call(op, device, unsuccessful, func(s ports.SCU) error {
		info, err := s.TseInfo(ctx)
		if err != nil {
			return err
		}
		return write(info)
	})
}

// NotImplemented reports an operation this adapter does not offer.
func (a *Adapter) NotImplemented(op, device string) retcode.Code {
	enter(op, device)
	log.WithField("operation", op).Warn("operation not implemented")
	return retcode.NotImplemented
}

// Accept validates device and succeeds without contacting the SCU. It backs
// the operations that have no remote counterpart.
func (a *Adapter) Accept(op, device string) retcode.Code {
	enter(op, device)
	if _, err := a.resolve(device); err != nil {
		return fail(op, device, err, retcode.Unknown)
	}
	return retcode.ExecutionOk
}

// Noop logs op and succeeds.
func (a *Adapter) Noop(op string) retcode.Code {
	log.Info(op)
	return retcode.ExecutionOk
}

// Free releases a buffer returned by any operation.
func Free(ptr *unsafe.Pointer) {
	ffi.Free(ptr)
}
