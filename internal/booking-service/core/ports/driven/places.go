package driven

import (
	"context"

	"bookmycar/internal/booking-service/core/domain/model"
)

// IPlaceSearch resolves free text into ranked place candidates. Boundary
// collaborator only: an empty query yields no candidates.
type IPlaceSearch interface {
	Search(ctx context.Context, query string, limit int) ([]model.Location, error)
}
