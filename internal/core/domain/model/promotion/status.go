package promotion

import (
	"fmt"

	"gamestore/internal/pkg/errs"
)

// Status is the lifecycle state of a promotion.
//
//	Active ⇄ Inactive
//
// New promotions start Active. Removal deletes the promotion; there is no
// removed state.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Active
	Inactive
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Active:   "Active",
		Inactive: "Inactive",
	}
}

// Validate rejects Unknown and out-of-range values read from storage.
func (s Status) Validate() error {
	if s != Active && s != Inactive {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromActive maps the persisted active flag to a Status.
func StatusFromActive(active bool) Status {
	if active {
		return Active
	}
	return Inactive
}
