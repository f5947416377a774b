package biometric

import (
	"errors"
	"fmt"
)

const (
	ReasonUserCancel   = "user_cancel"
	ReasonUserFallback = "userfallback"
	ReasonUnavailable  = "unavailable"
)

var (
	ErrBiometricAuthFailed  = errors.New("biometric authentication failed")
	ErrBiometricUnavailable = errors.New("biometric sensor is not available on this device")
)

// AuthFailedError means the challenge did not pass and the call was not dispatched.
// Silent is set when the user cancelled, no notice was shown.
type AuthFailedError struct {
	Reason string
	Silent bool
	Err    error
}

func (e *AuthFailedError) Error() string {
	if e.Reason == "" {
		return ErrBiometricAuthFailed.Error()
	}
	return fmt.Sprintf("%s: %s", ErrBiometricAuthFailed.Error(), e.Reason)
}

func (e *AuthFailedError) Is(target error) bool {
	return target == ErrBiometricAuthFailed
}

func (e *AuthFailedError) Unwrap() error {
	return e.Err
}

func isSilentReason(reason string) bool {
	return reason == ReasonUserCancel || reason == ReasonUserFallback
}
