package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rshade/datagrid/internal/dataset"
	"github.com/rshade/datagrid/internal/logging"
	"github.com/rshade/datagrid/internal/record"
)

type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidFilter is returned for a filter that is not "key=value".
const ErrInvalidFilter constError = "invalid filter"

// ValidateFilter checks that f has the form "key=value" with a non-empty key.
func ValidateFilter(f string) error {
	key, _, ok := strings.Cut(f, "=")
	if !ok {
		return fmt.Errorf("%w %q: expected key=value", ErrInvalidFilter, f)
	}
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w %q: empty key", ErrInvalidFilter, f)
	}
	return nil
}

// matchesFilter reports whether the rendered value of the filter's key
// contains the filter's value, ignoring case.
func matchesFilter(r record.Record, f string) bool {
	key, value, _ := strings.Cut(f, "=")
	cell := record.Render(r.Field(strings.TrimSpace(key)))
	return strings.Contains(strings.ToLower(cell), strings.ToLower(strings.TrimSpace(value)))
}

// ApplyFilters validates and applies a slice of filter strings to records.
//
// All filters are validated before any is applied. Empty filter strings are
// ignored and an empty slice returns records unchanged. A record is kept only
// when it matches every filter.
func ApplyFilters(ctx context.Context, records []record.Record, filters []string) ([]record.Record, error) {
	log := logging.FromContext(ctx)

	if len(filters) == 0 {
		return records, nil
	}

	for _, f := range filters {
		if f == "" {
			continue
		}
		if err := ValidateFilter(f); err != nil {
			log.Warn().
				Str("component", "cli").
				Str("operation", "apply_filters").
				Str("filter", f).
				Err(err).
				Msg("invalid filter expression")
			return nil, err
		}
	}

	result := records
	for _, f := range filters {
		if f == "" {
			continue
		}
		before := len(result)
		kept := make([]record.Record, 0, before)
		for _, r := range result {
			if matchesFilter(r, f) {
				kept = append(kept, r)
			}
		}
		result = kept
		log.Debug().
			Str("component", "cli").
			Str("operation", "apply_filters").
			Str("filter", f).
			Int("before", before).
			Int("after", len(result)).
			Msg("applied filter")
	}

	if len(result) == 0 && len(records) > 0 {
		log.Warn().
			Str("component", "cli").
			Str("operation", "apply_filters").
			Int("original_count", len(records)).
			Msg("no records match filter criteria")
	}

	return result, nil
}

// filteredProvider wraps p so the records it yields pass through filters.
func filteredProvider(p dataset.Provider, filters []string) dataset.Provider {
	if len(filters) == 0 {
		return p
	}
	return dataset.ProviderFunc(func(ctx context.Context) ([]record.Record, error) {
		records, err := p.Records(ctx)
		if err != nil {
			return nil, err
		}
		return ApplyFilters(ctx, records, filters)
	})
}
