// Package promotion models time-bounded promotional prices.
//
// A Promotion belongs to exactly one game, carries a price valid over the
// closed interval [StartsAt, EndsAt] and toggles between Active and Inactive.
// Whether the price is legal for its game is decided by the pricing engine in
// the services package, not here.
package promotion
