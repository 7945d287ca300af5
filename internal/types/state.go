package types

import "fmt"

// DeviceState is the SCU-side state of a device, sent as an integer.
type DeviceState uint8

const (
	DeviceStateUninitialized DeviceState = 0
	DeviceStateInitialized   DeviceState = 1
	DeviceStateTerminated    DeviceState = 2
)

func (s DeviceState) String() string {
	switch s {
	case DeviceStateUninitialized:
		return "Uninitialized"
	case DeviceStateInitialized:
		return "Initialized"
	case DeviceStateTerminated:
		return "Terminated"
	}
	return fmt.Sprintf("DeviceState(%d)", uint8(s))
}

// LifecycleState is the caller-visible lifecycle value.
type LifecycleState int32

const (
	LifecycleUnknown        LifecycleState = 0
	LifecycleNotInitialized LifecycleState = 1
	LifecycleActive         LifecycleState = 2
	LifecycleSuspended      LifecycleState = 3
	LifecycleDisabled       LifecycleState = 4
)

// Lifecycle maps the SCU state onto the caller-visible lifecycle.
// Terminated is reported as Disabled.
func (s DeviceState) Lifecycle() LifecycleState {
	switch s {
	case DeviceStateUninitialized:
		return LifecycleNotInitialized
	case DeviceStateInitialized:
		return LifecycleActive
	case DeviceStateTerminated:
		return LifecycleDisabled
	}
	return LifecycleUnknown
}
