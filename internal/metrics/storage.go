package metrics

import (
	"errors"
	"time"

	"github.com/osse101/MealPlanner_Go/internal/domain"
)

// ObserveStorage records the outcome and latency of a repository call.
// Use it deferred with a pointer to the named error result:
//
//	defer metrics.ObserveStorage(domain.EntityRecipe, "create", time.Now(), &err)
func ObserveStorage(entity, operation string, start time.Time, errp *error) {
	var err error
	if errp != nil {
		err = *errp
	}

	StorageOperationsTotal.WithLabelValues(entity, operation, StorageStatus(err)).Inc()
	StorageOperationDuration.WithLabelValues(entity, operation).Observe(time.Since(start).Seconds())
}

// StorageStatus maps an error to the status label value
func StorageStatus(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, domain.ErrNotFound):
		return StatusNotFound
	default:
		return StatusError
	}
}
