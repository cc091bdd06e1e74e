// Package cashcardservice manages business logic layer of cash cards.
package cashcardservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-petr/cash-card/internal/domain"
	"github.com/go-petr/cash-card/pkg/configpkg"
	"github.com/rs/zerolog"
)

// ResourceRoot is the path prefix of cash card locations.
const ResourceRoot = "/cashcards"

// Page size limits used when the configuration does not set them.
const (
	DefaultPageSize int32 = 20
	MaxPageSize     int32 = 100
)

// Repo provides data access layer interface needed by cash card service layer.
//
// Every single-record lookup takes the owner explicitly; there is no lookup by id alone.
//
//go:generate mockgen -source service.go -destination service_mock.go -package cashcardservice
type Repo interface {
	FindByIDAndOwner(ctx context.Context, id int64, owner string) (domain.CashCard, error)
	ExistsByIDAndOwner(ctx context.Context, id int64, owner string) (bool, error)
	Save(ctx context.Context, card domain.CashCard) (domain.CashCard, error)
	DeleteByID(ctx context.Context, id int64) error
	FindPageByOwner(ctx context.Context, owner string, page domain.PageRequest) (domain.CashCardPage, error)
}

// Service facilitates cash card service layer logic.
type Service struct {
	repo            Repo
	guard           ownershipGuard
	defaultPageSize int32
	maxPageSize     int32
}

// New returns cash card service struct to manage cash card business logic.
func New(r Repo, config configpkg.Config) *Service {
	s := &Service{
		repo:            r,
		guard:           ownershipGuard{repo: r},
		defaultPageSize: DefaultPageSize,
		maxPageSize:     MaxPageSize,
	}

	if config.MaxPageSize > 0 {
		s.maxPageSize = config.MaxPageSize
	}

	if config.DefaultPageSize > 0 {
		s.defaultPageSize = config.DefaultPageSize
	}

	if s.defaultPageSize > s.maxPageSize {
		s.defaultPageSize = s.maxPageSize
	}

	return s
}

// Location returns the path under which the cash card with the given id is served.
func Location(id int64) string {
	return fmt.Sprintf("%s/%d", ResourceRoot, id)
}

// Create stores a new cash card owned by caller and returns it with its location.
func (s *Service) Create(ctx context.Context, caller string, req domain.CashCardRequest) (domain.CashCard, string, error) {
	l := zerolog.Ctx(ctx)

	if caller == "" {
		return domain.CashCard{}, "", domain.ErrUnauthenticated
	}

	if req.Amount == nil {
		l.Info().Err(domain.ErrInvalidAmount).Send()
		return domain.CashCard{}, "", domain.ErrInvalidAmount
	}

	card, err := s.repo.Save(ctx, domain.CashCard{
		Amount: *req.Amount,
		Owner:  caller,
	})
	if err != nil {
		return domain.CashCard{}, "", err
	}

	return card, Location(card.ID), nil
}

// Get returns the caller's cash card with the given id.
func (s *Service) Get(ctx context.Context, caller string, id int64) (domain.CashCard, error) {
	card, found, err := s.guard.resolve(ctx, caller, id)
	if err != nil {
		return domain.CashCard{}, err
	}

	if !found {
		return domain.CashCard{}, domain.ErrCashCardNotFound
	}

	return card, nil
}

// List returns a page of the caller's cash cards.
func (s *Service) List(ctx context.Context, caller string, params domain.ListCashCardsParams) (domain.CashCardPage, error) {
	l := zerolog.Ctx(ctx)

	if caller == "" {
		return domain.CashCardPage{}, domain.ErrUnauthenticated
	}

	page, err := s.pageRequest(params)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.CashCardPage{}, err
	}

	return s.repo.FindPageByOwner(ctx, caller, page)
}

// Update replaces the amount of the caller's cash card. The id and the owner are kept.
func (s *Service) Update(ctx context.Context, caller string, id int64, req domain.CashCardRequest) error {
	l := zerolog.Ctx(ctx)

	if caller == "" {
		return domain.ErrUnauthenticated
	}

	if req.Amount == nil {
		l.Info().Err(domain.ErrInvalidAmount).Send()
		return domain.ErrInvalidAmount
	}

	existing, found, err := s.guard.resolve(ctx, caller, id)
	if err != nil {
		return err
	}

	if !found {
		return domain.ErrCashCardNotFound
	}

	_, err = s.repo.Save(ctx, domain.CashCard{
		ID:     existing.ID,
		Amount: *req.Amount,
		Owner:  caller,
	})

	return err
}

// Delete removes the caller's cash card with the given id.
func (s *Service) Delete(ctx context.Context, caller string, id int64) error {
	if caller == "" {
		return domain.ErrUnauthenticated
	}

	exists, err := s.repo.ExistsByIDAndOwner(ctx, id, caller)
	if err != nil {
		return err
	}

	if !exists {
		return domain.ErrCashCardNotFound
	}

	return s.repo.DeleteByID(ctx, id)
}

func (s *Service) pageRequest(params domain.ListCashCardsParams) (domain.PageRequest, error) {
	page := domain.PageRequest{
		Size: s.defaultPageSize,
		Sort: domain.Sort{
			Field:     domain.SortFieldAmount,
			Direction: domain.SortAsc,
		},
	}

	if params.PageIndex != nil {
		if *params.PageIndex < 0 {
			return page, domain.ErrInvalidPageIndex
		}

		page.Index = *params.PageIndex
	}

	if params.PageSize != nil {
		if *params.PageSize < 1 || *params.PageSize > s.maxPageSize {
			return page, fmt.Errorf("%w: must be between 1 and %d", domain.ErrInvalidPageSize, s.maxPageSize)
		}

		page.Size = *params.PageSize
	}

	if params.SortField != "" {
		switch params.SortField {
		case domain.SortFieldID, domain.SortFieldAmount, domain.SortFieldOwner:
			page.Sort.Field = params.SortField
		default:
			return page, fmt.Errorf("%w: %q", domain.ErrInvalidSortField, params.SortField)
		}
	}

	if params.SortDirection != "" {
		switch dir := strings.ToLower(params.SortDirection); dir {
		case domain.SortAsc, domain.SortDesc:
			page.Sort.Direction = dir
		default:
			return page, fmt.Errorf("%w: %q", domain.ErrInvalidSortDirection, params.SortDirection)
		}
	}

	return page, nil
}
