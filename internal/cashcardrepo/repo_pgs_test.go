//go:build integration

package cashcardrepo_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/cash-card/internal/cashcardrepo"
	"github.com/go-petr/cash-card/internal/domain"
	"github.com/go-petr/cash-card/internal/integrationtest"
	"github.com/go-petr/cash-card/internal/test"
	"github.com/go-petr/cash-card/pkg/configpkg"

	_ "github.com/lib/pq"
)

func setupRepo(t *testing.T) (*cashcardrepo.RepoPGS, *sql.Tx) {
	t.Helper()

	config, err := configpkg.Load("../../configs")
	require.NoError(t, err)

	tx := integrationtest.SetupTX(t, config.DBDriver, config.DBSource)

	return cashcardrepo.NewRepoPGS(tx), tx
}

func TestSaveInsertsAndReplaces(t *testing.T) {
	repo, tx := setupRepo(t)
	ctx := context.Background()
	owner := test.SeedUser(t, tx).Username

	created, err := repo.Save(ctx, domain.CashCard{Amount: decimal.RequireFromString("123.45"), Owner: owner})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.True(t, created.Amount.Equal(decimal.RequireFromString("123.45")))
	require.Equal(t, owner, created.Owner)

	created.Amount = decimal.RequireFromString("-7.5")

	replaced, err := repo.Save(ctx, created)
	require.NoError(t, err)
	require.Equal(t, created.ID, replaced.ID)
	require.True(t, replaced.Amount.Equal(created.Amount))

	got, err := repo.FindByIDAndOwner(ctx, created.ID, owner)
	require.NoError(t, err)
	require.True(t, got.Amount.Equal(created.Amount))
}

func TestSaveMissingRowDoesNotUpsert(t *testing.T) {
	repo, tx := setupRepo(t)
	ctx := context.Background()
	card := test.SeedCashCard(t, tx, test.SeedUser(t, tx).Username, "1")

	require.NoError(t, repo.DeleteByID(ctx, card.ID))

	_, err := repo.Save(ctx, card)
	require.ErrorIs(t, err, domain.ErrCashCardNotFound)

	exists, err := repo.ExistsByIDAndOwner(ctx, card.ID, card.Owner)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestFindByIDAndOwner(t *testing.T) {
	repo, tx := setupRepo(t)
	ctx := context.Background()
	alice := test.SeedUser(t, tx).Username
	bob := test.SeedUser(t, tx).Username
	card := test.SeedCashCard(t, tx, alice, "99.99")

	got, err := repo.FindByIDAndOwner(ctx, card.ID, alice)
	require.NoError(t, err)
	require.Equal(t, card.ID, got.ID)
	require.Equal(t, alice, got.Owner)

	_, err = repo.FindByIDAndOwner(ctx, card.ID, bob)
	require.ErrorIs(t, err, domain.ErrCashCardNotFound)

	_, err = repo.FindByIDAndOwner(ctx, card.ID+1_000_000, alice)
	require.ErrorIs(t, err, domain.ErrCashCardNotFound)
}

func TestExistsByIDAndOwner(t *testing.T) {
	repo, tx := setupRepo(t)
	ctx := context.Background()
	alice := test.SeedUser(t, tx).Username
	card := test.SeedCashCard(t, tx, alice, "5")

	exists, err := repo.ExistsByIDAndOwner(ctx, card.ID, alice)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.ExistsByIDAndOwner(ctx, card.ID, "someone-else")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestDeleteByIDIsIdempotent(t *testing.T) {
	repo, tx := setupRepo(t)
	ctx := context.Background()
	card := test.SeedCashCard(t, tx, test.SeedUser(t, tx).Username, "5")

	require.NoError(t, repo.DeleteByID(ctx, card.ID))
	require.NoError(t, repo.DeleteByID(ctx, card.ID))

	_, err := repo.FindByIDAndOwner(ctx, card.ID, card.Owner)
	require.ErrorIs(t, err, domain.ErrCashCardNotFound)
}

func TestFindPageByOwner(t *testing.T) {
	repo, tx := setupRepo(t)
	ctx := context.Background()
	alice := test.SeedUser(t, tx).Username
	bob := test.SeedUser(t, tx).Username

	c10 := test.SeedCashCard(t, tx, alice, "10")
	c50 := test.SeedCashCard(t, tx, alice, "50")
	c30 := test.SeedCashCard(t, tx, alice, "30")
	test.SeedCashCards(t, tx, bob, 2)

	byAmount := domain.Sort{Field: domain.SortFieldAmount, Direction: domain.SortAsc}

	page, err := repo.FindPageByOwner(ctx, alice, domain.PageRequest{Index: 0, Size: 2, Sort: byAmount})
	require.NoError(t, err)
	require.Equal(t, int64(3), page.TotalElements)
	require.Equal(t, int64(2), page.TotalPages)
	require.Equal(t, []int64{c10.ID, c30.ID}, ids(page.CashCards))

	page, err = repo.FindPageByOwner(ctx, alice, domain.PageRequest{Index: 1, Size: 2, Sort: byAmount})
	require.NoError(t, err)
	require.Equal(t, []int64{c50.ID}, ids(page.CashCards))

	byAmountDesc := domain.Sort{Field: domain.SortFieldAmount, Direction: domain.SortDesc}

	page, err = repo.FindPageByOwner(ctx, alice, domain.PageRequest{Index: 0, Size: 10, Sort: byAmountDesc})
	require.NoError(t, err)
	require.Equal(t, []int64{c50.ID, c30.ID, c10.ID}, ids(page.CashCards))

	for _, c := range page.CashCards {
		require.Equal(t, alice, c.Owner)
	}

	// Past the last page the total still comes back.
	page, err = repo.FindPageByOwner(ctx, alice, domain.PageRequest{Index: 5, Size: 2, Sort: byAmount})
	require.NoError(t, err)
	require.Empty(t, page.CashCards)
	require.NotNil(t, page.CashCards)
	require.Equal(t, int64(3), page.TotalElements)

	page, err = repo.FindPageByOwner(ctx, "nobody", domain.PageRequest{Index: 0, Size: 2, Sort: byAmount})
	require.NoError(t, err)
	require.Empty(t, page.CashCards)
	require.Zero(t, page.TotalElements)
}

func TestFindPageByOwnerTieBreak(t *testing.T) {
	repo, tx := setupRepo(t)
	ctx := context.Background()
	alice := test.SeedUser(t, tx).Username

	first := test.SeedCashCard(t, tx, alice, "1")
	second := test.SeedCashCard(t, tx, alice, "1")
	third := test.SeedCashCard(t, tx, alice, "1")

	sort := domain.Sort{Field: domain.SortFieldAmount, Direction: domain.SortDesc}

	page, err := repo.FindPageByOwner(ctx, alice, domain.PageRequest{Size: 10, Sort: sort})
	require.NoError(t, err)
	require.Equal(t, []int64{first.ID, second.ID, third.ID}, ids(page.CashCards))
}

func ids(cards []domain.CashCard) []int64 {
	out := make([]int64, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}

	return out
}
