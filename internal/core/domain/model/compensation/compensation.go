// Package compensation records cross-store divergences that the account
// coordinator could not undo inline, so they can be reconciled later.
package compensation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/pkg/errs"
)

// MaxAttempts bounds how many times a pending compensation is retried before
// it is parked as Failed for manual follow-up.
const MaxAttempts = 5

// Kind names the action that brings the stores back in line.
type Kind string

const (
	// KindDeleteIdentityAccount removes an identity record that has no
	// matching owner in the domain store.
	KindDeleteIdentityAccount Kind = "delete_identity_account"
)

func (k Kind) Validate() error {
	if k != KindDeleteIdentityAccount {
		return errs.NewValueIsInvalidErrorWithCause("compensation kind", fmt.Errorf("%q is not supported", string(k)))
	}
	return nil
}

type Status string

const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
	StatusFailed  Status = "failed"
)

func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusDone, StatusFailed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("compensation status", fmt.Errorf("%q is not supported", string(s)))
	}
}

var ErrCompensationIsNotConstructed = errors.New("Compensation must be created via NewCompensation constructor")

// Compensation is one durable reconciliation action.
type Compensation struct {
	id        kernel.UUID
	kind      Kind
	subject   string
	payload   map[string]any
	status    Status
	attempts  int
	lastError string
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewCompensation creates a Pending action. subject is the e-mail that
// correlates the two stores.
func NewCompensation(id kernel.UUID, kind Kind, subject string, payload map[string]any, now time.Time) (*Compensation, error) {
	subject = strings.TrimSpace(subject)
	if err := errors.Join(id.Validate(), kind.Validate(), requireSubject(subject)); err != nil {
		return nil, err
	}
	if payload == nil {
		payload = map[string]any{}
	}

	return &Compensation{
		id:            id,
		kind:          kind,
		subject:       subject,
		payload:       payload,
		status:        StatusPending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreCompensation rebuilds an action from the log.
func RestoreCompensation(
	id kernel.UUID,
	kind Kind,
	subject string,
	payload map[string]any,
	status Status,
	attempts int,
	lastError string,
	createdAt, updatedAt time.Time,
) (*Compensation, error) {
	if err := errors.Join(id.Validate(), kind.Validate(), requireSubject(subject), status.Validate()); err != nil {
		return nil, err
	}
	if attempts < 0 {
		return nil, errs.NewValueIsOutOfRangeError("attempts", attempts, 0, MaxAttempts)
	}

	return &Compensation{
		id:            id,
		kind:          kind,
		subject:       subject,
		payload:       payload,
		status:        status,
		attempts:      attempts,
		lastError:     lastError,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

func (c *Compensation) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCompensationIsNotConstructed
	}
	return nil
}

func (c *Compensation) ID() kernel.UUID {
	return c.id
}

func (c *Compensation) Kind() Kind {
	return c.kind
}

func (c *Compensation) Subject() string {
	return c.subject
}

func (c *Compensation) Payload() map[string]any {
	return c.payload
}

func (c *Compensation) Status() Status {
	return c.status
}

func (c *Compensation) Attempts() int {
	return c.attempts
}

func (c *Compensation) LastError() string {
	return c.lastError
}

func (c *Compensation) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Compensation) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Compensation) IsPending() bool {
	return c.status == StatusPending
}

// MarkDone closes the action.
func (c *Compensation) MarkDone(now time.Time) {
	c.status = StatusDone
	c.attempts++
	c.lastError = ""
	c.updatedAt = now
}

// MarkAttemptFailed records a failed run. After MaxAttempts the action is
// parked as Failed.
func (c *Compensation) MarkAttemptFailed(cause error, now time.Time) {
	c.attempts++
	if cause != nil {
		c.lastError = cause.Error()
	}
	if c.attempts >= MaxAttempts {
		c.status = StatusFailed
	}
	c.updatedAt = now
}

func requireSubject(subject string) error {
	if strings.TrimSpace(subject) == "" {
		return errs.NewValueIsRequiredError("subject")
	}
	return nil
}
