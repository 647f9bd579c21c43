package owner

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/pkg/errs"
)

const (
	NameMaxLength  = 256
	EmailMaxLength = 100
)

var (
	ErrOwnerIsNotConstructed = errors.New("Owner must be created via NewOwner constructor")

	// ErrAlreadyOwned is returned when the owner already has the game in the library.
	ErrAlreadyOwned = errors.New("game is already in the library")
)

// Owner is the user aggregate root of the domain store. It is correlated with
// the identity store by e-mail only.
//
// Owner follows these invariants:
//   - Name is required, at most NameMaxLength characters
//   - E-mail is required, lower-cased, at most EmailMaxLength characters
//   - The library holds at most one entry per game
type Owner struct {
	id         kernel.UUID
	name       string
	email      string
	createdAt  time.Time
	modifiedAt *time.Time
	library    []*LibraryEntry

	isConstructed bool
}

// NewOwner creates an owner with an empty library.
func NewOwner(id kernel.UUID, name, email string, now time.Time) (*Owner, error) {
	o := &Owner{
		createdAt:     now,
		library:       make([]*LibraryEntry, 0),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setName(name),
		o.setEmail(email),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOwner rebuilds an owner and its library from storage.
func RestoreOwner(
	id kernel.UUID,
	name, email string,
	createdAt time.Time,
	modifiedAt *time.Time,
	library []*LibraryEntry,
) (*Owner, error) {
	o := &Owner{
		createdAt:     createdAt,
		modifiedAt:    modifiedAt,
		library:       make([]*LibraryEntry, 0, len(library)),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setName(name),
		o.setEmail(email),
	); err != nil {
		return nil, err
	}

	for _, entry := range library {
		if err := entry.Validate(); err != nil {
			return nil, err
		}
		if !entry.OwnerID().IsEqual(o.id) {
			return nil, errs.NewValueIsInvalidError("library entry owner")
		}
		if o.Owns(entry.GameID()) {
			return nil, ErrAlreadyOwned
		}
		o.library = append(o.library, entry)
	}

	return o, nil
}

func (o *Owner) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOwnerIsNotConstructed
	}
	return nil
}

func (o *Owner) IsEqual(other *Owner) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Owner) ID() kernel.UUID {
	return o.id
}

func (o *Owner) Name() string {
	return o.name
}

func (o *Owner) Email() string {
	return o.email
}

func (o *Owner) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Owner) ModifiedAt() *time.Time {
	return o.modifiedAt
}

// Library returns a copy of the owner's entries.
func (o *Owner) Library() []*LibraryEntry {
	out := make([]*LibraryEntry, len(o.library))
	copy(out, o.library)
	return out
}

func (o *Owner) Rename(name string, now time.Time) error {
	if err := o.setName(name); err != nil {
		return err
	}
	o.modifiedAt = &now
	return nil
}

// Owns reports whether the library has an entry for gameID.
func (o *Owner) Owns(gameID kernel.UUID) bool {
	for _, entry := range o.library {
		if entry.GameID().IsEqual(gameID) {
			return true
		}
	}
	return false
}

// Acquire adds a library entry that captures the price paid and the
// promotion that produced it, if any. Fails with ErrAlreadyOwned when the
// game is already in the library.
//
// Example:
//
//	effective := pricing.Resolve(g.Price(), g.Promotions(), clock.Now())
//	entry, err := buyer.Acquire(kernel.NewUUID(), g.ID(), effective.Price, effective.PromotionID, clock.Now())
//	if errors.Is(err, owner.ErrAlreadyOwned) {
//	    // the game is already in the library
//	}
func (o *Owner) Acquire(
	entryID, gameID kernel.UUID,
	price kernel.Money,
	promotionID *kernel.UUID,
	now time.Time,
) (*LibraryEntry, error) {
	if o.Owns(gameID) {
		return nil, ErrAlreadyOwned
	}

	entry := &LibraryEntry{createdAt: now, isConstructed: true}
	if err := entry.set(entryID, o.id, gameID, price, promotionID); err != nil {
		return nil, err
	}

	o.library = append(o.library, entry)
	return entry, nil
}

// ForfeitGame drops the entry for a game that is being removed from the
// catalog. Reports whether an entry was dropped.
func (o *Owner) ForfeitGame(gameID kernel.UUID) bool {
	for i, entry := range o.library {
		if entry.GameID().IsEqual(gameID) {
			o.library = append(o.library[:i], o.library[i+1:]...)
			return true
		}
	}
	return false
}

// DetachPromotion clears the reference to a promotion that is being removed.
// Entries keep their purchase price. Returns the number of entries changed.
func (o *Owner) DetachPromotion(promotionID kernel.UUID) int {
	detached := 0
	for _, entry := range o.library {
		if pid := entry.PromotionID(); pid != nil && pid.IsEqual(promotionID) {
			entry.detachPromotion()
			detached++
		}
	}
	return detached
}

func (o *Owner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Owner) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > NameMaxLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, NameMaxLength)
	}
	o.name = name
	return nil
}

func (o *Owner) setEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if n := utf8.RuneCountInString(email); n > EmailMaxLength {
		return errs.NewValueIsOutOfRangeError("email length", n, 1, EmailMaxLength)
	}
	o.email = email
	return nil
}

// NormalizeEmail is the canonical form used for lookups in both stores.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
