// Package catalog builds the price lookup used to value sales records.
package catalog

import (
	"go.uber.org/zap"

	"github.com/ginjaninja78/compute-sales/internal/types"
	"github.com/ginjaninja78/compute-sales/internal/validation"
)

// IndexStats counts how the catalog entries were handled.
type IndexStats struct {
	Indexed int
	Skipped int
}

// Indexer converts catalog entries into a PriceMap.
// Malformed entries are reported on the logger and never reach the map.
type Indexer struct {
	logger *zap.Logger
	stats  IndexStats
}

// NewIndexer returns an Indexer that reports skipped entries on logger.
// A nil logger discards diagnostics.
func NewIndexer(logger *zap.Logger) *Indexer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Indexer{logger: logger}
}

// Index builds the price map. Later duplicates of a title overwrite earlier ones.
// Negative prices are valid data and are kept.
func (ix *Indexer) Index(entries []types.Record) types.PriceMap {
	ix.stats = IndexStats{}
	prices := make(types.PriceMap, len(entries))

	for i, entry := range entries {
		row := i + 1

		title, verr := validation.RequireString(entry, types.FieldTitle, row)
		if verr != nil {
			ix.skip(verr)
			continue
		}

		price, verr := validation.RequireNumber(entry, types.FieldPrice, row)
		if verr != nil {
			ix.skip(verr)
			continue
		}

		if old, dup := prices[title]; dup {
			ix.logger.Debug("catalog title redefined",
				zap.String("title", title),
				zap.Float64("previous_price", old),
				zap.Float64("price", price),
				zap.Int("row", row),
			)
		}
		prices[title] = price
		ix.stats.Indexed++
	}

	ix.logger.Debug("catalog indexed",
		zap.Int("entries", len(entries)),
		zap.Int("titles", len(prices)),
		zap.Int("skipped", ix.stats.Skipped),
	)

	return prices
}

// Stats reports the counts from the most recent Index call.
func (ix *Indexer) Stats() IndexStats {
	return ix.stats
}

func (ix *Indexer) skip(verr *validation.ValidationError) {
	ix.stats.Skipped++
	ix.logger.Warn("invalid catalog entry skipped",
		zap.Int("row", verr.RowNumber),
		zap.String("field", verr.Field),
		zap.String("rule", verr.Rule),
		zap.String("reason", verr.Message),
	)
}

// Index is a convenience wrapper for callers that do not need diagnostics.
func Index(entries []types.Record) types.PriceMap {
	return NewIndexer(nil).Index(entries)
}
