// Package common defines shared sentinel errors and small helpers used
// across the SkinAid layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Store-level errors.
	ErrorNotFound     = errors.New("not found")
	ErrorCorruptStore = errors.New("corrupt store")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorUserExists   = errors.New("user already exists")

	// Profile flow errors.
	ErrorNotOnboarded = errors.New("onboarding not completed")
	ErrorNoAnalysis   = errors.New("no analysis found")
	ErrorEmptyInput   = errors.New("empty input")
)
