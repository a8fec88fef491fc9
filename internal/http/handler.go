// Package http provides the HTTP transport layer of the rate service:
// handlers, routing and response assembly.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spedire/rate-service/internal/domain/dto"
	"github.com/spedire/rate-service/internal/domain/model"
	"github.com/spedire/rate-service/internal/i18n"
	"github.com/spedire/rate-service/internal/metrics"
	"github.com/spedire/rate-service/internal/service"
)

// Handler provides the HTTP handler for rate quote requests.
type Handler struct {
	quoter             service.RateQuoter
	diagnosticsEnabled bool
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithDiagnostics enables the debug breakdown on quote responses when the
// caller asks for it with ?debug=1.
func WithDiagnostics(enabled bool) HandlerOption {
	return func(h *Handler) {
		h.diagnosticsEnabled = enabled
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(quoter service.RateQuoter, opts ...HandlerOption) *Handler {
	h := &Handler{quoter: quoter}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// QuoteRates handles POST /api/rates requests.
//
// @Summary      Quote shipping rates
// @Description  Computes the shipping rate for a shipment: the destination province is resolved to a tariff region, item weights are aggregated, the load is split into pallets priced against the region's weight brackets, and fuel surcharge plus VAT are applied. The response shape follows the carrier callback contract. Pass ?debug=1 to receive the full computation breakdown (when enabled server-side).
// @Tags         Rates
// @Accept       json
// @Produce      json
// @Param        debug query int false "Set to 1 to include the computation breakdown"
// @Param        request body dto.RateRequest true "Shipment destination and line items"
// @Success      200 {object} dto.RatesResponse "Quoted rate"
// @Failure      400 {object} dto.ErrorResponse "Invalid destination, weight, or unknown region"
// @Failure      429 {object} dto.ErrorResponse "Too many requests"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "No tariff table available"
// @Router       /api/rates [post]
func (h *Handler) QuoteRates(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.RecordQuote(0, "invalid_request")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	input := service.QuoteInput{
		RawRegion:   req.Region(),
		Items:       req.ModelItems(),
		Diagnostics: h.diagnosticsEnabled && c.Query("debug") == "1",
	}

	start := time.Now()
	result, err := h.quoter.Quote(input)
	duration := time.Since(start)

	if err != nil {
		h.respondQuoteError(builder, duration, err)
		return
	}

	metrics.RecordQuote(duration, "success")
	c.JSON(http.StatusOK, dto.NewRatesResponse(result.Quote, result.Breakdown))
}

// respondQuoteError maps quoting errors to HTTP responses. A destination the
// tariff table does not cover is a client error, same as a malformed one: the
// caller picked a province this carrier does not serve.
func (h *Handler) respondQuoteError(builder *ResponseBuilder, duration time.Duration, err error) {
	var notFound *service.RegionNotFoundError
	switch {
	case errors.Is(err, model.ErrInvalidDestination):
		metrics.RecordQuote(duration, "invalid_destination")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidDestination, err)
	case errors.Is(err, service.ErrInvalidWeight):
		metrics.RecordQuote(duration, "invalid_weight")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidWeight, err)
	case errors.As(err, &notFound):
		metrics.RecordQuote(duration, "region_not_found")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyRegionNotFound, err)
	case errors.Is(err, service.ErrTariffsUnavailable):
		metrics.RecordQuote(duration, "tariffs_unavailable")
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyTariffsUnavailable, err)
	default:
		metrics.RecordQuote(duration, "error")
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
