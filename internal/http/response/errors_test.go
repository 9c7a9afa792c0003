package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/gigifypro-backend/internal/data/dberr"
	"github.com/yungbote/gigifypro-backend/internal/platform/apierr"
	"github.com/yungbote/gigifypro-backend/internal/platform/logger"
)

func TestRespondServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
		msg    string
	}{
		{"api error", apierr.NotFound("profile_not_found", errors.New("profile not found")), http.StatusNotFound, "profile_not_found", "profile not found"},
		{"conflict", dberr.Map("op", &pgconn.PgError{Code: "23505"}), http.StatusConflict, "conflict", ""},
		{"retryable", dberr.Map("op", &pgconn.PgError{Code: "40P01"}), http.StatusServiceUnavailable, "retryable", ""},
		{"unknown", errors.New("pq: relation does not exist"), http.StatusInternalServerError, "internal", "internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			RespondServiceError(c, logger.Nop(), tc.err)

			require.Equal(t, tc.status, rec.Code)
			var env ErrorEnvelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			assert.Equal(t, tc.code, env.Error.Code)
			if tc.msg != "" {
				assert.Equal(t, tc.msg, env.Error.Message)
			}
			assert.NotContains(t, env.Error.Message, "pq:")
		})
	}
}
