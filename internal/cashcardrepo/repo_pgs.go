// Package cashcardrepo manages repository layer of cash cards.
package cashcardrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-petr/cash-card/internal/domain"
	"github.com/go-petr/cash-card/pkg/dbpkg"
	"github.com/go-petr/cash-card/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates cash card repository layer logic.
//
// It trusts the owner values it is given; scoping to the caller is the service's job.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns cash card RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// sortColumns whitelists ORDER BY columns; sort input is never interpolated as is.
var sortColumns = map[string]string{
	domain.SortFieldID:     "id",
	domain.SortFieldAmount: "amount",
	domain.SortFieldOwner:  "owner",
}

var sortDirections = map[string]string{
	domain.SortAsc:  "ASC",
	domain.SortDesc: "DESC",
}

const findByIDAndOwnerQuery = `
SELECT
	id, amount, owner
FROM cash_cards
WHERE id = $1 AND owner = $2
`

// FindByIDAndOwner returns the cash card with the given id if it belongs to owner.
func (r *RepoPGS) FindByIDAndOwner(ctx context.Context, id int64, owner string) (domain.CashCard, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, findByIDAndOwnerQuery, id, owner)

	var c domain.CashCard

	err := row.Scan(&c.ID, &c.Amount, &c.Owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CashCard{}, domain.ErrCashCardNotFound
		}

		l.Error().Err(err).Send()

		return domain.CashCard{}, errorspkg.ErrInternal
	}

	return c, nil
}

const existsByIDAndOwnerQuery = `
SELECT EXISTS (
	SELECT 1 FROM cash_cards WHERE id = $1 AND owner = $2
)
`

// ExistsByIDAndOwner reports whether the cash card with the given id belongs to owner.
func (r *RepoPGS) ExistsByIDAndOwner(ctx context.Context, id int64, owner string) (bool, error) {
	l := zerolog.Ctx(ctx)

	var exists bool

	err := r.db.QueryRowContext(ctx, existsByIDAndOwnerQuery, id, owner).Scan(&exists)
	if err != nil {
		l.Error().Err(err).Send()
		return false, errorspkg.ErrInternal
	}

	return exists, nil
}

const insertQuery = `
INSERT INTO
	cash_cards (amount, owner)
VALUES
	($1, $2)
RETURNING id, amount, owner
`

const replaceQuery = `
UPDATE cash_cards
SET amount = $2, owner = $3
WHERE id = $1
RETURNING id, amount, owner
`

// Save inserts the cash card when it has no id yet, otherwise it replaces the row with the same id.
// Replacing a row that does not exist returns domain.ErrCashCardNotFound.
func (r *RepoPGS) Save(ctx context.Context, card domain.CashCard) (domain.CashCard, error) {
	l := zerolog.Ctx(ctx)

	var row *sql.Row
	if card.ID == 0 {
		row = r.db.QueryRowContext(ctx, insertQuery, card.Amount, card.Owner)
	} else {
		row = r.db.QueryRowContext(ctx, replaceQuery, card.ID, card.Amount, card.Owner)
	}

	var c domain.CashCard

	err := row.Scan(&c.ID, &c.Amount, &c.Owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CashCard{}, domain.ErrCashCardNotFound
		}

		l.Error().Err(err).Send()

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Constraint == "cash_cards_owner_check" {
			return domain.CashCard{}, domain.ErrUnauthenticated
		}

		return domain.CashCard{}, errorspkg.ErrInternal
	}

	return c, nil
}

const deleteByIDQuery = `
DELETE FROM cash_cards
WHERE id = $1
`

// DeleteByID removes the cash card with the given id. Deleting a missing row is not an error.
func (r *RepoPGS) DeleteByID(ctx context.Context, id int64) error {
	l := zerolog.Ctx(ctx)

	_, err := r.db.ExecContext(ctx, deleteByIDQuery, id)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}

const findPageByOwnerQuery = `
SELECT
	id, amount, owner, COUNT(*) OVER () AS total
FROM cash_cards
WHERE owner = $1
ORDER BY %s
LIMIT $2 OFFSET $3
`

const countByOwnerQuery = `
SELECT COUNT(*) FROM cash_cards WHERE owner = $1
`

// FindPageByOwner returns the requested page of the owner's cash cards together with their total count.
func (r *RepoPGS) FindPageByOwner(ctx context.Context, owner string, page domain.PageRequest) (domain.CashCardPage, error) {
	l := zerolog.Ctx(ctx)

	orderBy, err := orderByClause(page.Sort)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.CashCardPage{}, err
	}

	query := fmt.Sprintf(findPageByOwnerQuery, orderBy)

	rows, err := r.db.QueryContext(ctx, query, owner, page.Size, page.Offset())
	if err != nil {
		l.Error().Err(err).Send()
		return domain.CashCardPage{}, errorspkg.ErrInternal
	}
	defer rows.Close()

	var (
		items = []domain.CashCard{}
		total int64
	)

	for rows.Next() {
		var c domain.CashCard
		if err := rows.Scan(&c.ID, &c.Amount, &c.Owner, &total); err != nil {
			l.Error().Err(err).Send()
			return domain.CashCardPage{}, errorspkg.ErrInternal
		}

		items = append(items, c)
	}

	if err := rows.Close(); err != nil {
		l.Error().Err(err).Send()
		return domain.CashCardPage{}, errorspkg.ErrInternal
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return domain.CashCardPage{}, errorspkg.ErrInternal
	}

	// The window count is only available when the page has rows.
	if len(items) == 0 && page.Index > 0 {
		if err := r.db.QueryRowContext(ctx, countByOwnerQuery, owner).Scan(&total); err != nil {
			l.Error().Err(err).Send()
			return domain.CashCardPage{}, errorspkg.ErrInternal
		}
	}

	return domain.NewCashCardPage(items, page, total), nil
}

func orderByClause(s domain.Sort) (string, error) {
	column, ok := sortColumns[s.Field]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidSortField, s.Field)
	}

	direction, ok := sortDirections[s.Direction]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidSortDirection, s.Direction)
	}

	if column == "id" {
		return "id " + direction, nil
	}

	return column + " " + direction + ", id ASC", nil
}
