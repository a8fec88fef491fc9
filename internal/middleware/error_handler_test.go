package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spedire/rate-service/internal/domain/dto"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("writes 500 when handler attaches error without responding", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID(), ErrorHandler())
		router.GET("/fail", func(c *gin.Context) {
			_ = c.Error(errors.New("tariff lookup exploded"))
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/fail", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeInternal, resp.Error)
		assert.NotEmpty(t, resp.RequestID)
	})

	t.Run("translates fallback message by Accept-Language", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID(), ErrorHandler())
		router.GET("/fail", func(c *gin.Context) {
			_ = c.Error(errors.New("boom"))
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/fail", nil)
		req.Header.Set("Accept-Language", "it-IT,it;q=0.9")
		router.ServeHTTP(w, req)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Si è verificato un errore imprevisto", resp.Message)
	})

	t.Run("does not override a response already written", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID(), ErrorHandler())
		router.GET("/written", func(c *gin.Context) {
			c.JSON(http.StatusBadRequest, dto.NewError(dto.ErrCodeInvalidRequest, "bad input"))
			_ = c.Error(errors.New("already handled"))
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/written", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("passes through when no errors", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID(), ErrorHandler())
		router.GET("/ok", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", w.Body.String())
	})
}
