package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrNoPlan        = errors.New("no plan yet")
	ErrNoTotals      = errors.New("plan has no totals")
	ErrEmptyBasket   = errors.New("basket is empty")
	ErrInvalidChoice = errors.New("invalid choice")
)
