// Package domain provides definitions of all entities.
package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrCashCardNotFound indicates that the cash card does not exist or is owned by another caller.
	// Both cases are reported the same way.
	ErrCashCardNotFound = errors.New("cash card not found")
	// ErrUnauthenticated indicates a missing caller identity.
	ErrUnauthenticated = errors.New("caller identity is required")

	// ErrInvalidAmount indicates a missing or malformed amount.
	ErrInvalidAmount = errors.New("amount is required")
	// ErrInvalidPageIndex indicates a negative page index.
	ErrInvalidPageIndex = errors.New("page index must not be negative")
	// ErrInvalidPageSize indicates a page size out of the allowed range.
	ErrInvalidPageSize = errors.New("page size is out of range")
	// ErrInvalidSortField indicates a sort field that is not a cash card attribute.
	ErrInvalidSortField = errors.New("unsupported sort field")
	// ErrInvalidSortDirection indicates a sort direction other than asc or desc.
	ErrInvalidSortDirection = errors.New("unsupported sort direction")
	// ErrMultipleSorts indicates more than one sort parameter. Ordering by several keys is not supported.
	ErrMultipleSorts = errors.New("only one sort parameter is supported")
)

var validationErrors = []error{
	ErrInvalidAmount,
	ErrInvalidPageIndex,
	ErrInvalidPageSize,
	ErrInvalidSortField,
	ErrInvalidSortDirection,
	ErrMultipleSorts,
}

// IsValidationError reports whether err is caused by invalid caller input.
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

// CashCard holds a money amount owned by a single user.
type CashCard struct {
	ID     int64           `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Owner  string          `json:"owner"`
}

// CashCardRequest is the client supplied part of a cash card.
//
// Amount is a pointer so that a missing amount can be told apart from zero.
type CashCardRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}

// Sortable cash card fields.
const (
	SortFieldID     = "id"
	SortFieldAmount = "amount"
	SortFieldOwner  = "owner"
)

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Sort is a validated ordering of cash cards.
type Sort struct {
	Field     string
	Direction string
}

// PageRequest is a validated page of cash cards to fetch.
type PageRequest struct {
	Index int32
	Size  int32
	Sort  Sort
}

// Offset returns the number of rows preceding the page.
func (p PageRequest) Offset() int64 {
	return int64(p.Index) * int64(p.Size)
}

// ListCashCardsParams holds raw list parameters as received from the caller.
//
// Nil page values and empty sort values mean "use the default".
type ListCashCardsParams struct {
	PageIndex     *int32
	PageSize      *int32
	SortField     string
	SortDirection string
}

// CashCardPage is one page of the caller's cash cards.
type CashCardPage struct {
	CashCards     []CashCard `json:"cashcards"`
	PageIndex     int32      `json:"page"`
	PageSize      int32      `json:"size"`
	TotalElements int64      `json:"total_elements"`
	TotalPages    int64      `json:"total_pages"`
}

// NewCashCardPage builds a page and derives the number of pages from total.
func NewCashCardPage(cards []CashCard, page PageRequest, total int64) CashCardPage {
	var pages int64
	if page.Size > 0 {
		pages = (total + int64(page.Size) - 1) / int64(page.Size)
	}

	if cards == nil {
		cards = []CashCard{}
	}

	return CashCardPage{
		CashCards:     cards,
		PageIndex:     page.Index,
		PageSize:      page.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}
