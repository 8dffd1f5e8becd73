package queries

import (
	"context"

	"pratofit/internal/core/domain/model/kernel"
	"pratofit/internal/core/ports"
)

// GetSessionQueryHandler reads one session aggregate into its read model.
type GetSessionQueryHandler struct {
	sessionRepo ports.SessionRepository
}

// NewGetSessionQueryHandler creates a handler for session reads.
func NewGetSessionQueryHandler(sessionRepo ports.SessionRepository) GetSessionQueryHandler {
	return GetSessionQueryHandler{sessionRepo: sessionRepo}
}

// Handle reads the session and flattens cart and checkout into the
// response. Total is the kit price plus the current fee, zero while no kit
// is chosen.
func (h GetSessionQueryHandler) Handle(
	ctx context.Context,
	query GetSessionQuery,
) (GetSessionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSessionQueryResponse{}, err
	}

	aggregate, err := h.sessionRepo.Get(ctx, query.SessionID())
	if err != nil {
		return GetSessionQueryResponse{}, err
	}

	chk := aggregate.Checkout()
	response := GetSessionQueryResponse{
		ID:            aggregate.ID(),
		TotalSelected: aggregate.Cart().TotalSelected(),
		Complete:      aggregate.Cart().IsComplete(),
		Mode:          chk.Mode().String(),
		Resolution:    chk.Resolution().String(),
		Neighborhood:  chk.Neighborhood(),
		Fee:           chk.Fee(),
		Total:         kernel.ZeroMoney(),
	}

	if kit, ok := aggregate.Cart().Kit(); ok {
		response.Kit = &SessionKitView{
			ID:           kit.ID(),
			Name:         kit.Name(),
			TotalMeals:   kit.TotalMeals(),
			Price:        kit.Price(),
			PricePerMeal: kit.PricePerMeal(),
		}
		response.Total = chk.Total(kit.Price())
	}

	for _, line := range aggregate.Cart().Lines() {
		response.Lines = append(response.Lines, SessionLineView{
			ItemID:   line.Item().ID(),
			Title:    line.Item().Title(),
			Quantity: line.Quantity(),
		})
	}

	return response, nil
}
