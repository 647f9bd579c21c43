// Package services holds domain rules that span more than one aggregate.
//
// The package includes:
//   - PromotionPricing: resolves the price that applies to a game at an
//     instant and decides whether a new or edited promotion is legal
//
// Services here are pure: they perform no I/O and take the current time as
// an argument.
package services
