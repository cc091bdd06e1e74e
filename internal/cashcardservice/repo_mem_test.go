package cashcardservice

import (
	"context"
	"sort"
	"sync"

	"github.com/go-petr/cash-card/internal/domain"
)

// memRepo is an in-memory Repo used to check service properties without a database.
type memRepo struct {
	mu     sync.RWMutex
	nextID int64
	cards  map[int64]domain.CashCard
}

func newMemRepo() *memRepo {
	return &memRepo{cards: make(map[int64]domain.CashCard)}
}

func (r *memRepo) FindByIDAndOwner(_ context.Context, id int64, owner string) (domain.CashCard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.cards[id]
	if !ok || c.Owner != owner {
		return domain.CashCard{}, domain.ErrCashCardNotFound
	}

	return c, nil
}

func (r *memRepo) ExistsByIDAndOwner(_ context.Context, id int64, owner string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.cards[id]

	return ok && c.Owner == owner, nil
}

func (r *memRepo) Save(_ context.Context, card domain.CashCard) (domain.CashCard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if card.ID == 0 {
		r.nextID++
		card.ID = r.nextID
	} else if _, ok := r.cards[card.ID]; !ok {
		return domain.CashCard{}, domain.ErrCashCardNotFound
	}

	r.cards[card.ID] = card

	return card, nil
}

func (r *memRepo) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.cards, id)

	return nil
}

func (r *memRepo) FindPageByOwner(_ context.Context, owner string, page domain.PageRequest) (domain.CashCardPage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var owned []domain.CashCard

	for _, c := range r.cards {
		if c.Owner == owner {
			owned = append(owned, c)
		}
	}

	sort.Slice(owned, func(i, j int) bool {
		a, b := owned[i], owned[j]

		var cmp int

		switch page.Sort.Field {
		case domain.SortFieldAmount:
			cmp = a.Amount.Cmp(b.Amount)
		case domain.SortFieldOwner:
			cmp = compareStrings(a.Owner, b.Owner)
		}

		if page.Sort.Direction == domain.SortDesc {
			cmp = -cmp
		}

		if cmp == 0 {
			if page.Sort.Field == domain.SortFieldID && page.Sort.Direction == domain.SortDesc {
				return a.ID > b.ID
			}

			return a.ID < b.ID
		}

		return cmp < 0
	})

	total := int64(len(owned))
	start := page.Offset()
	end := start + int64(page.Size)

	if start > total {
		start = total
	}

	if end > total {
		end = total
	}

	return domain.NewCashCardPage(owned[start:end], page, total), nil
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}
