package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hablalab/academy-service/internal/observability"
	apperrors "github.com/hablalab/academy-service/pkg/util/errorutil"
)

func newMiddlewareApp(t *testing.T) (*fiber.App, *observability.Metrics) {
	t.Helper()
	app := fiber.New()
	metrics := observability.NewMetrics()
	RegisterMiddlewares(app, zap.NewNop(), metrics, time.Second)
	return app, metrics
}

func TestFailedRequestRecordsConvertedStatus(t *testing.T) {
	app, metrics := newMiddlewareApp(t)
	app.Get("/fail", func(c *fiber.Ctx) error {
		return apperrors.NewUnauthorized("sesión requerida")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	requests, errs := metrics.Snapshot()
	assert.Equal(t, int64(1), requests["/fail|GET|401"])
	assert.Equal(t, int64(1), errs["/fail|GET|UNAUTHORIZED"])
}

func TestPanicRecordsInternalErrorStatus(t *testing.T) {
	app, metrics := newMiddlewareApp(t)
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	requests, errs := metrics.Snapshot()
	assert.Equal(t, int64(1), requests["/boom|GET|500"])
	assert.Equal(t, int64(1), errs["/boom|GET|INTERNAL_ERROR"])
}
