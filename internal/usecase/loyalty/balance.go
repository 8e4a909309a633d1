package loyalty

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/cache"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/loyalty"
)

type GetBalance struct {
	repo   domain.Repository
	points *cache.PointsCache
	cost   int
}

func NewGetBalance(
	repo domain.Repository,
	points *cache.PointsCache,
	cost int,
) *GetBalance {
	return &GetBalance{
		repo:   repo,
		points: points,
		cost:   cost,
	}
}

// Execute returns the balance and how many free services it covers. Served
// read-through: cache hit first, database on a miss.
func (uc *GetBalance) Execute(
	ctx context.Context,
	userID uint,
) (points int, freeServices int, err error) {

	if uc.points != nil {
		if cached, ok := uc.points.Get(ctx, userID); ok {
			return cached, domain.FreeServicesAvailable(cached, uc.cost), nil
		}
	}

	points, err = uc.repo.Balance(ctx, userID)
	if err != nil {
		return 0, 0, err
	}

	if uc.points != nil {
		uc.points.Set(ctx, userID, points)
	}

	return points, domain.FreeServicesAvailable(points, uc.cost), nil
}
