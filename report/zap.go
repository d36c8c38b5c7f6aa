// Package report adapts the error callbacks of the collection caches to structured loggers.
package report

import (
	"errors"

	"go.uber.org/zap"

	collectioncache "github.com/karupanerura/collection-cache"
)

// Zap returns an error reporter that logs every failed load of collection at error level.
// Superseded loads are logged at debug level since they are not failures of the source.
func Zap(logger *zap.Logger, collection string) func(error) {
	logger = logger.With(zap.String("collection", collection))
	return func(err error) {
		if errors.Is(err, collectioncache.ErrSuperseded) {
			logger.Debug("collection load superseded", zap.Error(err))
			return
		}
		logger.Error("collection load failed", zap.Error(err))
	}
}

// Multi returns an error reporter that calls every non-nil reporter in order.
func Multi(reporters ...func(error)) func(error) {
	return func(err error) {
		for _, r := range reporters {
			if r != nil {
				r(err)
			}
		}
	}
}
