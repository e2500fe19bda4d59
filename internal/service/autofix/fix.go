package autofix

import (
	"context"
	"fmt"
	"io"

	domain "github.com/oshokin/autofix-handedness/internal/domain/glove"
)

// GloveSource gives serialised access to the live glove collection.
type GloveSource interface {
	Mutate(ctx context.Context, fn func(gloves []*domain.Glove) bool) error
}

// FixedLine renders the report printed after a pass that fixed gloves.
func FixedLine(count int) string {
	return fmt.Sprintf("Fixed %d unhanded glove(s).", count)
}

// FixOnce runs one pass over the current collection and writes the report
// line to out when at least one glove was fixed. Nothing is written otherwise.
func FixOnce(ctx context.Context, gloves GloveSource, out io.Writer) (domain.FixResult, error) {
	var result domain.FixResult

	err := gloves.Mutate(ctx, func(collection []*domain.Glove) bool {
		result = domain.FixPass(collection)

		return result.FixedCount > 0
	})

	if result.FixedCount > 0 && out != nil {
		_, _ = fmt.Fprintln(out, FixedLine(result.FixedCount))
	}

	if err != nil {
		return result, fmt.Errorf("fix handedness: %w", err)
	}

	return result, nil
}
