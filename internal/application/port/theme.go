package port

import (
	"context"

	"github.com/bnema/tessera/internal/domain/entity"
)

// ThemeLoader reads a theme definition. Implementations reject themes
// that fail entity.Theme.Validate.
type ThemeLoader interface {
	Load(ctx context.Context, path string) (*entity.Theme, error)
}
