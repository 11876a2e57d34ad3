// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package actor identifies who is favoriting an ad.

An [Actor] is a closed tagged union: either an authenticated user or an
anonymous device. Exactly one variant is set. The zero value is "nobody" and is
rejected by every operation that needs an actor.

Consumers switch on [Actor.Kind] and handle both variants explicitly.
*/
package actor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/bazaar/internal/platform/apperr"
)

// MaxDeviceIDLength bounds anonymous device identifiers.
const MaxDeviceIDLength = 255

// FieldDeviceID is the request field reported when no actor can be resolved.
const FieldDeviceID = "device_id"

// Kind discriminates the [Actor] variants.
type Kind uint8

const (
	// KindNone is the zero value and never valid.
	KindNone Kind = iota
	// KindUser is an authenticated account.
	KindUser
	// KindDevice is an anonymous client identified by a device string.
	KindDevice
)

// String returns the metric/log label of the kind.
func (k Kind) String() string {
	switch k {
	case KindUser:
		return "user"
	case KindDevice:
		return "device"
	default:
		return "none"
	}
}

// Actor is either User(id) or Device(id).
type Actor struct {
	kind     Kind
	userID   int64
	deviceID string
}

// User builds the authenticated variant.
func User(id int64) Actor {
	return Actor{kind: KindUser, userID: id}
}

// Device builds the anonymous variant.
func Device(id string) Actor {
	return Actor{kind: KindDevice, deviceID: id}
}

// Kind reports which variant is set.
func (a Actor) Kind() Kind { return a.kind }

// IsZero reports whether no variant is set.
func (a Actor) IsZero() bool { return a.kind == KindNone }

// UserID returns the account id when a is a user.
func (a Actor) UserID() (int64, bool) {
	return a.userID, a.kind == KindUser
}

// DeviceID returns the device string when a is a device.
func (a Actor) DeviceID() (string, bool) {
	return a.deviceID, a.kind == KindDevice
}

// String renders the actor for logs ("user:7", "device:abc").
func (a Actor) String() string {
	switch a.kind {
	case KindUser:
		return fmt.Sprintf("user:%d", a.userID)
	case KindDevice:
		return "device:" + a.deviceID
	default:
		return "none"
	}
}

// Validate rejects the zero value and malformed variants.
func (a Actor) Validate() error {
	switch a.kind {
	case KindUser:
		if a.userID <= 0 {
			return apperr.ValidationError("Invalid user identity")
		}
		return nil
	case KindDevice:
		if strings.TrimSpace(a.deviceID) == "" {
			return ErrRequired()
		}
		if utf8.RuneCountInString(a.deviceID) > MaxDeviceIDLength {
			return apperr.ValidationError("Validation failed", apperr.FieldError{
				Field:   FieldDeviceID,
				Message: fmt.Sprintf("Maximum %d characters", MaxDeviceIDLength),
			})
		}
		return nil
	default:
		return ErrRequired()
	}
}

// Resolve picks the actor for a request.
//
// An authenticated user always wins; otherwise a non-blank device id is used.
// With neither, it returns the validation error from [ErrRequired]; a device
// id is never invented.
func Resolve(userID *int64, deviceID string) (Actor, error) {
	var resolved Actor

	switch {
	case userID != nil:
		resolved = User(*userID)
	case strings.TrimSpace(deviceID) != "":
		resolved = Device(strings.TrimSpace(deviceID))
	default:
		return Actor{}, ErrRequired()
	}

	if err := resolved.Validate(); err != nil {
		return Actor{}, err
	}
	return resolved, nil
}

// Optional is [Resolve] for read paths: an unresolvable request yields the
// zero Actor and no error.
func Optional(userID *int64, deviceID string) Actor {
	resolved, err := Resolve(userID, deviceID)
	if err != nil {
		return Actor{}
	}
	return resolved
}

// ErrRequired is the error returned when neither identity is available.
func ErrRequired() *apperr.AppError {
	return apperr.ValidationError("Either authentication or device_id is required", apperr.FieldError{
		Field:   FieldDeviceID,
		Message: "Required for anonymous requests",
	})
}
