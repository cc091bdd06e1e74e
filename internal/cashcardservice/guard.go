package cashcardservice

import (
	"context"
	"errors"

	"github.com/go-petr/cash-card/internal/domain"
)

// ownershipGuard is the only way the service reads a single cash card.
// A card owned by someone else and a missing card both resolve to not found.
type ownershipGuard struct {
	repo Repo
}

// resolve returns the card with the given id when it belongs to caller.
// found is false for missing and foreign cards alike; err is set only for infrastructure failures.
func (g ownershipGuard) resolve(ctx context.Context, caller string, id int64) (card domain.CashCard, found bool, err error) {
	if caller == "" {
		return domain.CashCard{}, false, domain.ErrUnauthenticated
	}

	card, err = g.repo.FindByIDAndOwner(ctx, id, caller)
	if err != nil {
		if errors.Is(err, domain.ErrCashCardNotFound) {
			return domain.CashCard{}, false, nil
		}

		return domain.CashCard{}, false, err
	}

	return card, true, nil
}
