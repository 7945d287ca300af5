package capi

import (
	"context"
	"sculink/internal/ffi"
	"sculink/internal/ports"
	"sculink/internal/retcode"
	"sculink/internal/types"
	"strings"
)

// Values of the enumerations written through integer outputs.
const (
	UpdateVariantsSigned            uint32 = 0
	UpdateVariantsUnsigned          uint32 = 1
	UpdateVariantsSignedAndUnsigned uint32 = 2

	AuthenticationOk            int32 = 0
	AuthenticationFailedResult  int32 = 1
	AuthenticationPinIsBlocked  int32 = 2
	AuthenticationUnknownUserID int32 = 3

	UnblockOk            uint32 = 0
	UnblockFailedResult  uint32 = 1
	UnblockUnknownUserID uint32 = 2
	UnblockError         uint32 = 3
)

// verifyMessage is echoed by VerifyConfigEntry.
const verifyMessage = "sculink"

func (a *Adapter) setState(ctx context.Context, op, device string, state types.DeviceState, unsuccessful retcode.Code) retcode.Code {
	return a.call(op, device, unsuccessful, func(s ports.SCU) error {
		_, err := s.SetTseState(ctx, types.TseState{CurrentState: state})
		return err
	})
}

// InitializeDescriptionSet moves the device to Initialized.
func (a *Adapter) InitializeDescriptionSet(ctx context.Context, device string) retcode.Code {
	return a.setState(ctx, "initializeDescriptionSet", device, types.DeviceStateInitialized, retcode.StoringInitDataFailed)
}

// DisableSecureElement terminates the device. This cannot be undone.
func (a *Adapter) DisableSecureElement(ctx context.Context, device string) retcode.Code {
	return a.setState(ctx, "disableSecureElement", device, types.DeviceStateTerminated, retcode.DisableSecureElementFailed)
}

// UpdateTimeWithTimeSync asks the SCU to synchronise the device clock.
func (a *Adapter) UpdateTimeWithTimeSync(ctx context.Context, device string) retcode.Code {
	return a.call("updateTimeWithTimeSync", device, retcode.UpdateTimeFailed, func(s ports.SCU) error {
		return s.ExecuteSetTseTime(ctx)
	})
}

// UpdateTime accepts a caller supplied time. The SCU keeps its own clock, so
// only the device is checked.
func (a *Adapter) UpdateTime(device string, unixTime int64) retcode.Code {
	return a.Accept("updateTime", device)
}

func (a *Adapter) RunSelfTests(ctx context.Context, device string) retcode.Code {
	return a.call("at_runSelfTests", device, retcode.Unknown, func(s ports.SCU) error {
		return s.ExecuteSelfTest(ctx)
	})
}

func (a *Adapter) RegisterClientID(ctx context.Context, device, clientID string) retcode.Code {
	return a.call("at_registerClientId", device, retcode.ClientIDRegistrationFailed, func(s ports.SCU) error {
		if strings.TrimSpace(clientID) == "" {
			return types.Err(types.ErrMissingParameter, nil, "client id")
		}
		_, err := s.RegisterClientID(ctx, types.RegisterClientIDRequest{ClientID: clientID})
		return err
	})
}

// VerifyConfigEntry checks that device is configured and its SCU answers.
func (a *Adapter) VerifyConfigEntry(ctx context.Context, device string) retcode.Code {
	return a.call("at_verifyConfigEntry", device, retcode.Unknown, func(s ports.SCU) error {
		resp, err := s.Echo(ctx, types.EchoRequest{Message: verifyMessage})
		if err != nil {
			return err
		}
		if resp.Message != verifyMessage {
			return types.Err(types.ErrMalformedResponse, nil, "echo returned %q", resp.Message)
		}
		return nil
	})
}

// AuthenticateUser always succeeds; user management lives in the SCU.
func (a *Adapter) AuthenticateUser(device, userID string, result *int32, remainingRetries *int16) retcode.Code {
	code := a.Accept("authenticateUser", device)
	if code == retcode.ExecutionOk {
		ffi.Set(result, AuthenticationOk)
	}
	return code
}

func (a *Adapter) LogOut(device, userID string) retcode.Code {
	return a.Accept("logOut", device)
}

func (a *Adapter) UnblockUser(device, userID string, result *uint32) retcode.Code {
	code := a.Accept("unblockUser", device)
	if code == retcode.ExecutionOk {
		ffi.Set(result, UnblockOk)
	}
	return code
}
