package game

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/domain/model/promotion"
	"gamestore/internal/pkg/errs"
)

const (
	NameMaxLength        = 256
	DescriptionMaxLength = 512
	PublisherMaxLength   = 256
)

var (
	// ErrGameIsNotConstructed is returned when a Game was not created through
	// NewGame or RestoreGame.
	ErrGameIsNotConstructed = errors.New("Game must be created via NewGame constructor")
)

// Profile holds the optional descriptive attributes of a game.
type Profile struct {
	Description *string
	Publisher   *string
	ReleaseDate *time.Time
}

// Game is the catalog aggregate root: a purchasable item with a base price
// and the promotions defined for it.
//
// Game follows these invariants:
//   - Name is required and at most NameMaxLength characters
//   - Base price is a non-negative Money
//   - Every loaded promotion belongs to this game
//   - Mutations stamp the modification time
//
// Ownership edges live on the owner aggregate; see owner.LibraryEntry.
type Game struct {
	id         kernel.UUID
	name       string
	profile    Profile
	price      kernel.Money
	active     bool
	createdAt  time.Time
	modifiedAt *time.Time

	// promotions are loaded with the game so that pricing rules can be
	// evaluated without further I/O
	promotions []*promotion.Promotion

	isConstructed bool
}

// NewGame creates an active game with no promotions.
//
// Example:
//
//	g, err := game.NewGame(kernel.NewUUID(), "Hades", game.Profile{}, kernel.MustMoney("49.99"), clock.Now())
func NewGame(id kernel.UUID, name string, profile Profile, price kernel.Money, now time.Time) (*Game, error) {
	g := &Game{
		active:        true,
		createdAt:     now,
		promotions:    make([]*promotion.Promotion, 0),
		isConstructed: true,
	}

	if err := errors.Join(
		g.setID(id),
		g.setName(name),
		g.setProfile(profile),
		g.setPrice(price),
	); err != nil {
		return nil, err
	}

	return g, nil
}

// RestoreGame rebuilds a game and its promotions from storage.
func RestoreGame(
	id kernel.UUID,
	name string,
	profile Profile,
	price kernel.Money,
	active bool,
	createdAt time.Time,
	modifiedAt *time.Time,
	promotions []*promotion.Promotion,
) (*Game, error) {
	g := &Game{
		active:        active,
		createdAt:     createdAt,
		modifiedAt:    modifiedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		g.setID(id),
		g.setName(name),
		g.setProfile(profile),
		g.setPrice(price),
	); err != nil {
		return nil, err
	}

	g.promotions = make([]*promotion.Promotion, 0, len(promotions))
	for _, p := range promotions {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if !p.GameID().IsEqual(g.id) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"promotion",
				fmt.Errorf("promotion %s belongs to game %s", p.ID(), p.GameID()),
			)
		}
		g.promotions = append(g.promotions, p)
	}

	return g, nil
}

// Validate ensures the Game was built through a constructor.
func (g *Game) Validate() error {
	if g == nil || !g.isConstructed {
		return ErrGameIsNotConstructed
	}
	return nil
}

func (g *Game) IsEqual(other *Game) bool {
	return other != nil && g.id.IsEqual(other.id)
}

func (g *Game) ID() kernel.UUID {
	return g.id
}

func (g *Game) Name() string {
	return g.name
}

func (g *Game) Profile() Profile {
	return g.profile
}

// Price returns the base price, before any promotion.
func (g *Game) Price() kernel.Money {
	return g.price
}

func (g *Game) IsActive() bool {
	return g.active
}

func (g *Game) CreatedAt() time.Time {
	return g.createdAt
}

func (g *Game) ModifiedAt() *time.Time {
	return g.modifiedAt
}

// Promotions returns a copy of the loaded promotion list.
func (g *Game) Promotions() []*promotion.Promotion {
	out := make([]*promotion.Promotion, len(g.promotions))
	copy(out, g.promotions)
	return out
}

// Alter renames, re-describes and reprices the game. Existing promotions are
// not re-validated here; their next edit is checked against the new price.
func (g *Game) Alter(name string, profile Profile, price kernel.Money, now time.Time) error {
	draft := *g
	if err := errors.Join(
		draft.setName(name),
		draft.setProfile(profile),
		draft.setPrice(price),
	); err != nil {
		return err
	}

	*g = draft
	g.touch(now)
	return nil
}

func (g *Game) Activate(now time.Time) {
	g.active = true
	g.touch(now)
}

func (g *Game) Deactivate(now time.Time) {
	g.active = false
	g.touch(now)
}

func (g *Game) touch(now time.Time) {
	g.modifiedAt = &now
}

func (g *Game) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	g.id = id
	return nil
}

func (g *Game) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > NameMaxLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, NameMaxLength)
	}
	g.name = name
	return nil
}

func (g *Game) setProfile(profile Profile) error {
	profile.Description = trimOptional(profile.Description)
	profile.Publisher = trimOptional(profile.Publisher)

	var errList []error
	if profile.Description != nil {
		if n := utf8.RuneCountInString(*profile.Description); n > DescriptionMaxLength {
			errList = append(errList, errs.NewValueIsOutOfRangeError("description length", n, 0, DescriptionMaxLength))
		}
	}
	if profile.Publisher != nil {
		if n := utf8.RuneCountInString(*profile.Publisher); n > PublisherMaxLength {
			errList = append(errList, errs.NewValueIsOutOfRangeError("publisher length", n, 0, PublisherMaxLength))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	g.profile = profile
	return nil
}

func (g *Game) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	g.price = price
	return nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
