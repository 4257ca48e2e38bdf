package notify

import (
	"context"
	"time"
)

// StatusChanged is emitted after a loan's status was persisted with a new value.
type StatusChanged struct {
	LoanID        string    `json:"loanId"`
	ApplicationNo string    `json:"applicationNo"`
	UserID        string    `json:"userId"`
	Email         string    `json:"email,omitempty"`
	FullName      string    `json:"fullName,omitempty"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	At            time.Time `json:"at"`
}

type Notifier interface {
	StatusChanged(ctx context.Context, ev StatusChanged) error
}

// Nop drops every event.
type Nop struct{}

func (Nop) StatusChanged(context.Context, StatusChanged) error { return nil }
