package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/MealPlanner_Go/internal/domain"
)

func TestStorageStatus(t *testing.T) {
	assert.Equal(t, StatusOK, StorageStatus(nil))
	assert.Equal(t, StatusNotFound, StorageStatus(domain.NotFoundError(domain.ErrRecipeNotFound, "abc")))
	assert.Equal(t, StatusError, StorageStatus(errors.New("boom")))
}

func TestObserveStorage_CountsByStatus(t *testing.T) {
	okCounter := StorageOperationsTotal.WithLabelValues("test_entity", "find", StatusOK)
	errCounter := StorageOperationsTotal.WithLabelValues("test_entity", "find", StatusError)
	okBefore := testutil.ToFloat64(okCounter)
	errBefore := testutil.ToFloat64(errCounter)

	var err error
	ObserveStorage("test_entity", "find", time.Now(), &err)

	err = errors.New("boom")
	ObserveStorage("test_entity", "find", time.Now(), &err)

	ObserveStorage("test_entity", "find", time.Now(), nil)

	assert.Equal(t, okBefore+2, testutil.ToFloat64(okCounter))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(errCounter))
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/teapot/{id}", "418")
	before := testutil.ToFloat64(counter)

	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/teapot/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teapot/"+id, nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	}

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
	assert.Equal(t, float64(0), testutil.ToFloat64(HTTPRequestsInFlight))
}

func TestMiddleware_UnmatchedOutsideRouter(t *testing.T) {
	counter := HTTPRequestsTotal.WithLabelValues(http.MethodPost, UnmatchedRoute, "200")
	before := testutil.ToFloat64(counter)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/anything", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
