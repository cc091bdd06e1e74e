// Package test provides shared test helpers.
package test

import (
	"context"
	"testing"

	"github.com/go-petr/cash-card/internal/cashcardrepo"
	"github.com/go-petr/cash-card/internal/domain"
	"github.com/go-petr/cash-card/internal/userrepo"
	"github.com/go-petr/cash-card/pkg/dbpkg"
	"github.com/go-petr/cash-card/pkg/passpkg"
	"github.com/go-petr/cash-card/pkg/randompkg"
)

// SeedUser creates random User inside a test transaction.
func SeedUser(t *testing.T, tx dbpkg.SQLInterface) domain.User {
	t.Helper()

	user, _ := SeedUserWithPassword(t, tx)

	return user
}

// SeedUserWithPassword creates random User inside a test transaction and returns its plain password.
func SeedUserWithPassword(t *testing.T, tx dbpkg.SQLInterface) (domain.User, string) {
	t.Helper()

	password := randompkg.String(10)

	hashedPassword, err := passpkg.Hash(password)
	if err != nil {
		t.Fatalf("passpkg.Hash(%v) returned error: %v", password, err)
	}

	arg := domain.CreateUserParams{
		Username:       randompkg.Owner(),
		HashedPassword: hashedPassword,
		FullName:       randompkg.String(10),
		Email:          randompkg.Email(),
	}

	user, err := userrepo.NewRepoPGS(tx).Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("userRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return user, password
}

// SeedCashCard stores a cash card with the given amount for owner inside a test transaction.
func SeedCashCard(t *testing.T, tx dbpkg.SQLInterface, owner, amount string) domain.CashCard {
	t.Helper()

	card := domain.CashCard{
		Amount: MustDecimal(t, amount),
		Owner:  owner,
	}

	saved, err := cashcardrepo.NewRepoPGS(tx).Save(context.Background(), card)
	if err != nil {
		t.Fatalf("cashCardRepo.Save(context.Background(), %+v) returned error: %v", card, err)
	}

	return saved
}

// SeedCashCards stores count cash cards with random amounts for owner inside a test transaction.
func SeedCashCards(t *testing.T, tx dbpkg.SQLInterface, owner string, count int) []domain.CashCard {
	t.Helper()

	cards := make([]domain.CashCard, count)
	for i := range cards {
		cards[i] = SeedCashCard(t, tx, owner, randompkg.MoneyAmountBetween(0, 1000).String())
	}

	return cards
}
