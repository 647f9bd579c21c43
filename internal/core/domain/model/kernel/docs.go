// Package kernel holds the value objects shared by every aggregate of the
// game store: UUID identifiers, Money amounts and the Clock time source.
package kernel
