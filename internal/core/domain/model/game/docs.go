// Package game provides the catalog aggregate.
//
// A Game has a base price and carries the promotions defined for it, so that
// the effective price at any instant can be resolved from the aggregate alone.
// Games start active and may be deactivated and reactivated; removal is an
// explicit repository operation that also forfeits every library entry for
// the game.
package game
