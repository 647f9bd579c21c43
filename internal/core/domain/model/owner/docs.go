// Package owner provides the user aggregate of the domain store and its
// library of acquired games.
//
// The library is the owning side of every ownership edge:
//   - Acquire adds an entry once per game (ErrAlreadyOwned otherwise)
//   - ForfeitGame removes the entry when the game leaves the catalog
//   - DetachPromotion keeps the entry and its price when a promotion is removed
package owner
