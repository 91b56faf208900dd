package game

import (
	"errors"
	"fmt"
)

// Kind buckets every ledger failure. All kinds abort the whole operation;
// nothing is retried internally.
type Kind uint8

const (
	KindAuthorization Kind = iota + 1
	KindNotFound
	KindDuplicate
	KindValidation
	KindCooldown
	KindState
)

// Error is a ledger failure with a machine-readable dotted code.
type Error struct {
	Kind Kind
	Code string
}

func (e *Error) Error() string {
	return e.Code
}

func authorizationError(code string) error {
	return &Error{Kind: KindAuthorization, Code: code}
}

func notFoundError(code string) error {
	return &Error{Kind: KindNotFound, Code: code}
}

func duplicateError(code string) error {
	return &Error{Kind: KindDuplicate, Code: code}
}

func validationError(code string) error {
	return &Error{Kind: KindValidation, Code: code}
}

func stateError(code string) error {
	return &Error{Kind: KindState, Code: code}
}

// CooldownError reports an attack sent before the cooldown elapsed.
type CooldownError struct {
	RemainingSecs int64
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("error.attack.cooldown:%d", e.RemainingSecs)
}

// IsKind reports whether err is a ledger error of the given kind.
func IsKind(err error, kind Kind) bool {
	if kind == KindCooldown {
		var ce *CooldownError
		return errors.As(err, &ce)
	}
	var le *Error
	return errors.As(err, &le) && le.Kind == kind
}
