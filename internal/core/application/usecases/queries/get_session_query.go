// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"pratofit/internal/core/domain/model/kernel"
	"pratofit/internal/pkg/guard"
)

var (
	ErrGetSessionQueryIsNotConstructed = errors.New(
		"GetSessionQuery must be created via NewGetSessionQuery constructor",
	)
)

// GetSessionQuery retrieves the full state of one ordering session: the
// chosen kit, the cart lines and the checkout progress.
type GetSessionQuery struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSessionQuery creates a query for one session's state.
func NewGetSessionQuery(sessionID kernel.UUID) (GetSessionQuery, error) {
	query := GetSessionQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setSessionID(sessionID); err != nil {
		return GetSessionQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetSessionQueryIsNotConstructed if validation fails.
func (q GetSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionQueryIsNotConstructed)
}

// SessionID returns the identifier of the session to read.
func (q GetSessionQuery) SessionID() kernel.UUID {
	return q.sessionID
}

func (q *GetSessionQuery) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	q.sessionID = sessionID
	return nil
}

// SessionKitView is the chosen kit in the session read model.
type SessionKitView struct {
	ID           string
	Name         string
	TotalMeals   int
	Price        kernel.Money
	PricePerMeal kernel.Money
}

// SessionLineView is one cart line in the session read model.
type SessionLineView struct {
	ItemID   string
	Title    string
	Quantity int
}

// GetSessionQueryResponse is the session read model: everything a client
// needs to render the cart and the checkout in one round trip.
type GetSessionQueryResponse struct {
	ID            kernel.UUID
	Kit           *SessionKitView
	Lines         []SessionLineView
	TotalSelected int
	Complete      bool
	Mode          string
	Resolution    string
	Neighborhood  string
	Fee           kernel.Money
	Total         kernel.Money
}
