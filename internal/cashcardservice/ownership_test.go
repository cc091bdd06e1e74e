package cashcardservice

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/go-petr/cash-card/internal/domain"
	"github.com/go-petr/cash-card/pkg/configpkg"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func amountPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func mustCreate(t *testing.T, s *Service, caller, amount string) domain.CashCard {
	t.Helper()

	card, _, err := s.Create(context.Background(), caller, domain.CashCardRequest{Amount: amountPtr(amount)})
	if err != nil {
		t.Fatalf("s.Create(ctx, %q, %s) returned error: %v", caller, amount, err)
	}

	return card
}

func TestCreateThenGetScenario(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New(newMemRepo(), configpkg.Config{})

	created, location, err := s.Create(ctx, "alice", domain.CashCardRequest{Amount: amountPtr("123.45")})
	if err != nil {
		t.Fatalf("s.Create() returned error: %v", err)
	}

	if want := fmt.Sprintf("/cashcards/%d", created.ID); location != want {
		t.Errorf("location = %q, want %q", location, want)
	}

	got, err := s.Get(ctx, "alice", created.ID)
	if err != nil {
		t.Fatalf("s.Get(ctx, alice, %d) returned error: %v", created.ID, err)
	}

	want := domain.CashCard{ID: created.ID, Amount: decimal.RequireFromString("123.45"), Owner: "alice"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("s.Get() returned unexpected diff (-want +got):\n%s", diff)
	}

	if _, err := s.Get(ctx, "bob", created.ID); !errors.Is(err, domain.ErrCashCardNotFound) {
		t.Errorf("s.Get(ctx, bob, %d) returned error %v, want %v", created.ID, err, domain.ErrCashCardNotFound)
	}
}

func TestForeignCardIsIndistinguishableFromMissing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New(newMemRepo(), configpkg.Config{})

	owned := mustCreate(t, s, "alice", "10")
	missingID := owned.ID + 1000

	for _, id := range []int64{owned.ID, missingID} {
		if _, err := s.Get(ctx, "bob", id); !errors.Is(err, domain.ErrCashCardNotFound) {
			t.Errorf("s.Get(ctx, bob, %d) returned error %v, want %v", id, err, domain.ErrCashCardNotFound)
		}

		err := s.Update(ctx, "bob", id, domain.CashCardRequest{Amount: amountPtr("1")})
		if !errors.Is(err, domain.ErrCashCardNotFound) {
			t.Errorf("s.Update(ctx, bob, %d) returned error %v, want %v", id, err, domain.ErrCashCardNotFound)
		}

		if err := s.Delete(ctx, "bob", id); !errors.Is(err, domain.ErrCashCardNotFound) {
			t.Errorf("s.Delete(ctx, bob, %d) returned error %v, want %v", id, err, domain.ErrCashCardNotFound)
		}
	}

	got, err := s.Get(ctx, "alice", owned.ID)
	if err != nil {
		t.Fatalf("s.Get(ctx, alice, %d) returned error: %v", owned.ID, err)
	}

	if diff := cmp.Diff(owned, got); diff != "" {
		t.Errorf("foreign calls changed the card (-want +got):\n%s", diff)
	}
}

func TestUpdateKeepsIDAndOwner(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New(newMemRepo(), configpkg.Config{})

	created := mustCreate(t, s, "alice", "10")

	if err := s.Update(ctx, "alice", created.ID, domain.CashCardRequest{Amount: amountPtr("-19.99")}); err != nil {
		t.Fatalf("s.Update() returned error: %v", err)
	}

	got, err := s.Get(ctx, "alice", created.ID)
	if err != nil {
		t.Fatalf("s.Get() returned error: %v", err)
	}

	want := domain.CashCard{ID: created.ID, Amount: decimal.RequireFromString("-19.99"), Owner: "alice"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("s.Get() after update returned unexpected diff (-want +got):\n%s", diff)
	}
}

func TestDeleteTwice(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New(newMemRepo(), configpkg.Config{})

	created := mustCreate(t, s, "alice", "10")

	if err := s.Delete(ctx, "alice", created.ID); err != nil {
		t.Fatalf("first s.Delete() returned error: %v", err)
	}

	if _, err := s.Get(ctx, "alice", created.ID); !errors.Is(err, domain.ErrCashCardNotFound) {
		t.Errorf("s.Get() after delete returned error %v, want %v", err, domain.ErrCashCardNotFound)
	}

	if err := s.Delete(ctx, "alice", created.ID); !errors.Is(err, domain.ErrCashCardNotFound) {
		t.Errorf("second s.Delete() returned error %v, want %v", err, domain.ErrCashCardNotFound)
	}
}

func TestListPagesByAmount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New(newMemRepo(), configpkg.Config{})

	for _, amount := range []string{"10", "50", "30"} {
		mustCreate(t, s, "alice", amount)
	}

	mustCreate(t, s, "bob", "20")

	for index, want := range []string{"10", "30", "50"} {
		params := domain.ListCashCardsParams{
			PageIndex:     int32Ptr(int32(index)),
			PageSize:      int32Ptr(1),
			SortField:     domain.SortFieldAmount,
			SortDirection: domain.SortAsc,
		}

		page, err := s.List(ctx, "alice", params)
		if err != nil {
			t.Fatalf("s.List(page=%d) returned error: %v", index, err)
		}

		if len(page.CashCards) != 1 {
			t.Fatalf("s.List(page=%d) returned %d cards, want 1", index, len(page.CashCards))
		}

		if got := page.CashCards[0].Amount; !got.Equal(decimal.RequireFromString(want)) {
			t.Errorf("s.List(page=%d) amount = %s, want %s", index, got, want)
		}

		if page.TotalElements != 3 || page.TotalPages != 3 {
			t.Errorf("s.List(page=%d) totals = (%d, %d), want (3, 3)", index, page.TotalElements, page.TotalPages)
		}
	}
}

func TestListDefaultsToAmountAscending(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New(newMemRepo(), configpkg.Config{})

	for _, amount := range []string{"5", "-1", "3"} {
		mustCreate(t, s, "alice", amount)
	}

	page, err := s.List(ctx, "alice", domain.ListCashCardsParams{})
	if err != nil {
		t.Fatalf("s.List() returned error: %v", err)
	}

	var got []string
	for _, c := range page.CashCards {
		got = append(got, c.Amount.String())
	}

	if diff := cmp.Diff([]string{"-1", "3", "5"}, got); diff != "" {
		t.Errorf("s.List() order mismatch (-want +got):\n%s", diff)
	}
}

func TestListNeverReturnsForeignCards(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New(newMemRepo(), configpkg.Config{})

	for i := 0; i < 7; i++ {
		mustCreate(t, s, "alice", fmt.Sprint(i))
		mustCreate(t, s, "bob", fmt.Sprint(i))
	}

	fields := []string{domain.SortFieldID, domain.SortFieldAmount, domain.SortFieldOwner}
	directions := []string{domain.SortAsc, domain.SortDesc}

	for _, field := range fields {
		for _, direction := range directions {
			for size := int32(1); size <= 8; size++ {
				for index := int32(0); index <= 8; index++ {
					params := domain.ListCashCardsParams{
						PageIndex:     int32Ptr(index),
						PageSize:      int32Ptr(size),
						SortField:     field,
						SortDirection: direction,
					}

					page, err := s.List(ctx, "bob", params)
					if err != nil {
						t.Fatalf("s.List(%+v) returned error: %v", params, err)
					}

					for _, c := range page.CashCards {
						if c.Owner != "bob" {
							t.Fatalf("s.List(%+v) returned card owned by %q", params, c.Owner)
						}
					}
				}
			}
		}
	}
}
