package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"todo-api/internal/domain/entity"
)

func TestResolveCaller(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		status   int
		expected entity.Address
	}{
		{"Valid", "0x5B38Da6a701c568545dCfcB03FcB875f56beddC4", http.StatusOK, entity.MustParseAddress("0x5b38da6a701c568545dcfcb03fcb875f56beddc4")},
		{"Padded", "  0x5b38da6a701c568545dcfcb03fcb875f56beddc4 ", http.StatusOK, entity.MustParseAddress("0x5b38da6a701c568545dcfcb03fcb875f56beddc4")},
		{"Missing", "", http.StatusOK, entity.ZeroAddress},
		{"Malformed", "0xnothex", http.StatusBadRequest, entity.ZeroAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			var resolved entity.Address
			e.GET("/", func(c echo.Context) error {
				resolved = Caller(c)
				return c.NoContent(http.StatusOK)
			}, ResolveCaller())

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(CallerHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.expected, resolved)
			if tt.status == http.StatusBadRequest {
				assert.JSONEq(t, `{"error":"invalid address"}`, rec.Body.String())
			}
		})
	}
}
