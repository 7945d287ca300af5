package capi

import (
	"context"
	"math"
	"sculink/internal/ffi"
	"sculink/internal/flow"
	"sculink/internal/retcode"
	"sculink/internal/types"
	"unsafe"
)

// count narrows a device counter to the 32-bit outputs. Negative values mean
// unlimited and saturate like values that do not fit.
func count(v int64) uint32 {
	if v < 0 || v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}

func (a *Adapter) LifecycleState(ctx context.Context, device string, out *int32) retcode.Code {
	return a.withInfo(ctx, "at_getLifecycleState", device, retcode.GetLifecycleStateFailed, func(info types.TseInfo) error {
		ffi.Set(out, int32(info.CurrentState.Lifecycle()))
		return nil
	})
}

func (a *Adapter) certificates(ctx context.Context, op, device string, unsuccessful retcode.Code, out Buffer) retcode.Code {
	return a.withInfo(ctx, op, device, unsuccessful, func(info types.TseInfo) error {
		out.setStrings(info.CertificatesBase64)
		return nil
	})
}

// Certificate writes the certificate chain as comma-joined base64 values.
func (a *Adapter) Certificate(ctx context.Context, device string, out Buffer) retcode.Code {
	return a.certificates(ctx, "at_getCertificate", device, retcode.ExportCertificateFailed, out)
}

func (a *Adapter) ExportCertificates(ctx context.Context, device string, out Buffer) retcode.Code {
	return a.certificates(ctx, "exportCertificates", device, retcode.ExportCertFailed, out)
}

func (a *Adapter) PublicKey(ctx context.Context, device string, out Buffer) retcode.Code {
	return a.withInfo(ctx, "at_getPublicKey", device, retcode.ExportPublicKeyFailed, func(info types.TseInfo) error {
		key, err := flow.DecodeBase64(info.PublicKeyBase64, "PublicKeyBase64")
		if err != nil {
			return err
		}
		out.setBytes(key)
		return nil
	})
}

func (a *Adapter) serial(ctx context.Context, op, device string, out Buffer) retcode.Code {
	return a.withInfo(ctx, op, device, retcode.ExportSerialNumbersFailed, func(info types.TseInfo) error {
		out.setString(info.SerialNumberOctet)
		return nil
	})
}

func (a *Adapter) SerialNumber(ctx context.Context, device string, out Buffer) retcode.Code {
	return a.serial(ctx, "at_getSerialNumber", device, out)
}

func (a *Adapter) ExportSerialNumbers(ctx context.Context, device string, out Buffer) retcode.Code {
	return a.serial(ctx, "exportSerialNumbers", device, out)
}

// OpenTransactions writes the open transaction numbers as a packed uint32
// array; *n receives the element count.
func (a *Adapter) OpenTransactions(ctx context.Context, device string, out *unsafe.Pointer, n *uint32) retcode.Code {
	return a.withInfo(ctx, "at_getOpenTransactions", device, retcode.GetOpenTransactionsFailed, func(info types.TseInfo) error {
		numbers := make([]uint32, 0, len(info.CurrentStartedTransactionNumbers))
		for _, tx := range info.CurrentStartedTransactionNumbers {
			if tx > math.MaxUint32 {
				return types.Err(types.ErrMalformedResponse, nil, "transaction number %d exceeds 32 bits", tx)
			}
			numbers = append(numbers, uint32(tx))
		}
		ffi.SetUint32s(out, n, numbers)
		return nil
	})
}

func (a *Adapter) SignatureCounter(ctx context.Context, device string, out *uint32) retcode.Code {
	return a.withInfo(ctx, "at_getSignatureCounter", device, retcode.GetSignatureCounterFailed, func(info types.TseInfo) error {
		ffi.Set(out, count(info.CurrentNumberOfSignatures))
		return nil
	})
}

func (a *Adapter) SignatureAlgorithm(ctx context.Context, device string, out Buffer) retcode.Code {
	return a.withInfo(ctx, "at_getSignatureAlgorithm", device, retcode.GetSignatureAlgorithmFailed, func(info types.TseInfo) error {
		out.setString(info.SignatureAlgorithm)
		return nil
	})
}

func (a *Adapter) LogTimeFormat(ctx context.Context, device string, out Buffer) retcode.Code {
	return a.withInfo(ctx, "at_getLogTimeFormat", device, retcode.GetLogTimeFormat, func(info types.TseInfo) error {
		out.setString(info.LogTimeFormat)
		return nil
	})
}

func (a *Adapter) MaxNumberOfClients(ctx context.Context, device string, out *uint32) retcode.Code {
	return a.withInfo(ctx, "getMaxNumberOfClients", device, retcode.GetMaxNumberOfClientsFailed, func(info types.TseInfo) error {
		ffi.Set(out, count(info.MaxNumberOfClients))
		return nil
	})
}

// MaxLicensedClients reports the client capacity of the device; the SCU has
// no separate licence limit.
func (a *Adapter) MaxLicensedClients(ctx context.Context, device string, out *uint32) retcode.Code {
	return a.withInfo(ctx, "at_getMaxLicencedClients", device, retcode.GetMaxNumberOfClientsFailed, func(info types.TseInfo) error {
		ffi.Set(out, count(info.MaxNumberOfClients))
		return nil
	})
}

func (a *Adapter) CurrentNumberOfClients(ctx context.Context, device string, out *uint32) retcode.Code {
	return a.withInfo(ctx, "getCurrentNumberOfClients", device, retcode.GetCurrentNumberOfClientsFailed, func(info types.TseInfo) error {
		ffi.Set(out, count(info.CurrentNumberOfClients))
		return nil
	})
}

func (a *Adapter) MaxNumberOfTransactions(ctx context.Context, device string, out *uint32) retcode.Code {
	return a.withInfo(ctx, "getMaxNumberOfTransactions", device, retcode.GetMaxNumberTransactionsFailed, func(info types.TseInfo) error {
		ffi.Set(out, count(info.MaxNumberOfStartedTransactions))
		return nil
	})
}

func (a *Adapter) CurrentNumberOfTransactions(ctx context.Context, device string, out *uint32) retcode.Code {
	return a.withInfo(ctx, "getCurrentNumberOfTransactions", device, retcode.GetCurrentNumberOfTransactionsFailed, func(info types.TseInfo) error {
		ffi.Set(out, count(info.CurrentNumberOfStartedTransactions))
		return nil
	})
}

// RegisteredClients writes the registered client ids comma-joined.
func (a *Adapter) RegisteredClients(ctx context.Context, device string, out Buffer) retcode.Code {
	return a.withInfo(ctx, "at_getRegisteredClients", device, retcode.CannotRetrieveRegisteredClientIDs, func(info types.TseInfo) error {
		out.setStrings(info.CurrentClientIDs)
		return nil
	})
}

// SupportedUpdateVariants always reports signed and unsigned updates.
func (a *Adapter) SupportedUpdateVariants(device string, out *uint32) retcode.Code {
	code := a.Accept("getSupportedTransactionUpdateVariants", device)
	if code == retcode.ExecutionOk {
		ffi.Set(out, UpdateVariantsSignedAndUnsigned)
	}
	return code
}

// Version writes the library version string.
func (a *Adapter) Version(out Buffer) retcode.Code {
	a.Noop("at_getVersion")
	out.setString(Version)
	return retcode.ExecutionOk
}
