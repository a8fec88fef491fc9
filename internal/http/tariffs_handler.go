package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spedire/rate-service/internal/domain/dto"
	"github.com/spedire/rate-service/internal/domain/model"
	"github.com/spedire/rate-service/internal/i18n"
	"github.com/spedire/rate-service/internal/service"
)

// TariffManager defines the tariff table operations the HTTP layer needs.
type TariffManager interface {
	Active() (*model.TariffTable, error)
	Replace(ctx context.Context, records []model.TariffRecord, updatedBy string) (*model.TariffTable, error)
}

// TariffsHandler provides HTTP handlers for tariff table administration.
type TariffsHandler struct {
	tariffs TariffManager
}

// NewTariffsHandler creates a new TariffsHandler instance.
func NewTariffsHandler(tariffs TariffManager) *TariffsHandler {
	return &TariffsHandler{tariffs: tariffs}
}

// GetSummary handles GET /api/tariffs requests.
//
// @Summary      Active tariff table summary
// @Description  Returns the version, entry count and region list of the active tariff table snapshot.
// @Tags         Tariffs
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.TariffSummary} "Active snapshot summary"
// @Failure      503 {object} dto.ErrorResponse "No tariff table installed"
// @Router       /api/tariffs [get]
func (h *TariffsHandler) GetSummary(c *gin.Context) {
	builder := NewResponseBuilder(c)

	table, err := h.tariffs.Active()
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyTariffsUnavailable, err)
		return
	}

	builder.SuccessOK(dto.NewTariffSummary(table))
}

// GetRegion handles GET /api/tariffs/regions/:region requests.
//
// @Summary      Tariff brackets for one region
// @Description  Returns the weight brackets of one region in the active snapshot. The region parameter goes through the same province alias resolution as a quote destination, so "mi", "MI" and "Milano" all answer for MILANO.
// @Tags         Tariffs
// @Produce      json
// @Param        region path string true "Province code, alias or name"
// @Success      200 {object} dto.SuccessResponse{data=dto.RegionTariffs} "Region brackets"
// @Failure      400 {object} dto.ErrorResponse "Blank region"
// @Failure      404 {object} dto.ErrorResponse "Region not in the tariff table"
// @Failure      503 {object} dto.ErrorResponse "No tariff table installed"
// @Router       /api/tariffs/regions/{region} [get]
func (h *TariffsHandler) GetRegion(c *gin.Context) {
	builder := NewResponseBuilder(c)

	region, err := model.ResolveRegion(c.Param("region"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidDestination, err)
		return
	}

	table, err := h.tariffs.Active()
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyTariffsUnavailable, err)
		return
	}

	brackets, err := table.BracketsFor(region)
	if err != nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyRegionNotFound, err)
		return
	}

	builder.SuccessOK(dto.RegionTariffs{Region: string(region), Brackets: brackets})
}

// ReplaceTariffs handles PUT /api/tariffs requests.
//
// @Summary      Replace the tariff table
// @Description  Validates and installs a new tariff table, atomically replacing the active snapshot. Accepts either a bare JSON array of tariff records or an object with a "records" field. Legacy spreadsheet-export keys (Provincia, Peso, Prezzo) are accepted. In-flight quotes keep using the previous snapshot; the quote cache is invalidated on swap.
// @Tags         Tariffs
// @Accept       json
// @Produce      json
// @Param        request body dto.ReplaceTariffsRequest true "Replacement tariff records"
// @Success      200 {object} dto.SuccessResponse{data=dto.TariffSummary} "Installed snapshot summary"
// @Failure      400 {object} dto.ErrorResponse "Malformed or invariant-violating records"
// @Failure      500 {object} dto.ErrorResponse "Persistence failure"
// @Router       /api/tariffs [put]
func (h *TariffsHandler) ReplaceTariffs(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.ReplaceTariffsRequest](c)
	if err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	table, err := h.tariffs.Replace(c.Request.Context(), req.Records, req.CreatedBy)
	if err != nil {
		// Records are validated before anything is persisted, so a
		// persistence error is infrastructure and everything else is the
		// caller's data.
		var persistErr *service.TariffPersistError
		if errors.As(err, &persistErr) {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
			return
		}
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	builder.SuccessOK(dto.NewTariffSummary(table))
}
