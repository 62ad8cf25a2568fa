// Package threshold implements ports.ThresholdCrypto.
package threshold

import "errors"

var (
	ErrConditionNotSatisfied = errors.New("access condition not satisfied")
	ErrAuthRejected          = errors.New("condition context rejected")
	ErrDomainMismatch        = errors.New("message kit belongs to another domain or ritual")
)
