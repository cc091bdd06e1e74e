// Package cashcarddelivery manages delivery layer of cash cards.
package cashcarddelivery

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/cash-card/internal/domain"
	"github.com/go-petr/cash-card/internal/middleware"
	"github.com/go-petr/cash-card/pkg/errorspkg"
	"github.com/go-petr/cash-card/pkg/web"
)

// ErrInvalidBody indicates a request body that is not valid JSON for the endpoint.
var ErrInvalidBody = errors.New("invalid request body")

// Service provides service layer interface needed by cash card delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package cashcarddelivery
type Service interface {
	Create(ctx context.Context, caller string, req domain.CashCardRequest) (domain.CashCard, string, error)
	Get(ctx context.Context, caller string, id int64) (domain.CashCard, error)
	List(ctx context.Context, caller string, params domain.ListCashCardsParams) (domain.CashCardPage, error)
	Update(ctx context.Context, caller string, id int64, req domain.CashCardRequest) error
	Delete(ctx context.Context, caller string, id int64) error
}

// Handler facilitates cash card delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns cash card handler.
func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

type data struct {
	CashCard domain.CashCard `json:"cashcard"`
}

// cashCardRequest ignores any id or owner sent by the client.
type cashCardRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

func (r cashCardRequest) toDomain() domain.CashCardRequest {
	return domain.CashCardRequest{Amount: r.Amount}
}

// idRequest only requires a well-formed integer. Ids that cannot exist resolve to not found.
type idRequest struct {
	ID int64 `uri:"id"`
}

type listRequest struct {
	Page *int32   `form:"page"`
	Size *int32   `form:"size"`
	Sort []string `form:"sort"`
}

// Create handles http request to create a cash card.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req cashCardRequest
	if !bindJSON(gctx, &req) {
		return
	}

	card, location, err := h.service.Create(ctx, middleware.Caller(gctx), req.toDomain())
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.Header("Location", location)
	gctx.JSON(http.StatusCreated, web.Response{Data: data{card}})
}

// Get handles http request to get a cash card.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri idRequest
	if !bindURI(gctx, &uri) {
		return
	}

	card, err := h.service.Get(ctx, middleware.Caller(gctx), uri.ID)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{card}})
}

// List handles http request to list the caller's cash cards.
//
// The sort parameter has the form "field" or "field,direction".
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrorMsg(err)})

		return
	}

	field, direction, err := parseSort(req.Sort)
	if err != nil {
		l.Info().Err(err).Send()
		respondError(gctx, err)

		return
	}

	params := domain.ListCashCardsParams{
		PageIndex:     req.Page,
		PageSize:      req.Size,
		SortField:     field,
		SortDirection: direction,
	}

	page, err := h.service.List(ctx, middleware.Caller(gctx), params)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: page})
}

// Update handles http request to replace the amount of a cash card.
func (h *Handler) Update(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri idRequest
	if !bindURI(gctx, &uri) {
		return
	}

	var req cashCardRequest
	if !bindJSON(gctx, &req) {
		return
	}

	err := h.service.Update(ctx, middleware.Caller(gctx), uri.ID, req.toDomain())
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.Status(http.StatusNoContent)
}

// Delete handles http request to delete a cash card.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri idRequest
	if !bindURI(gctx, &uri) {
		return
	}

	err := h.service.Delete(ctx, middleware.Caller(gctx), uri.ID)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.Status(http.StatusNoContent)
}

// parseSort splits a single "field" or "field,direction" value.
// A present sort must name a field, and a comma must be followed by a direction.
func parseSort(values []string) (field, direction string, err error) {
	switch len(values) {
	case 0:
		return "", "", nil
	case 1:
	default:
		return "", "", domain.ErrMultipleSorts
	}

	field, direction, hasDirection := strings.Cut(values[0], ",")
	field = strings.TrimSpace(field)
	direction = strings.TrimSpace(direction)

	if field == "" {
		return "", "", fmt.Errorf("%w: %q", domain.ErrInvalidSortField, values[0])
	}

	if hasDirection && direction == "" {
		return "", "", fmt.Errorf("%w: %q", domain.ErrInvalidSortDirection, values[0])
	}

	return field, direction, nil
}

func bindJSON(gctx *gin.Context, req any) bool {
	if err := gctx.ShouldBindJSON(req); err != nil {
		zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrorMsg(err)})

		return false
	}

	return true
}

func bindURI(gctx *gin.Context, req any) bool {
	if err := gctx.ShouldBindUri(req); err != nil {
		zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrorMsg(err)})

		return false
	}

	return true
}

func bindErrorMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return web.GetErrorMsg(ve)
	}

	return ErrInvalidBody.Error()
}

// respondError maps service errors to responses. Internal errors are never echoed.
func respondError(gctx *gin.Context, err error) {
	l := zerolog.Ctx(gctx.Request.Context())

	switch {
	case errors.Is(err, domain.ErrCashCardNotFound):
		gctx.JSON(http.StatusNotFound, web.Error(domain.ErrCashCardNotFound))
	case errors.Is(err, domain.ErrUnauthenticated):
		gctx.JSON(http.StatusUnauthorized, web.Error(domain.ErrUnauthenticated))
	case domain.IsValidationError(err):
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	default:
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}
