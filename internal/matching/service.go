// Package matching maps free-typed sale descriptions to catalog product names.
// Sales store a name snapshot rather than a product FK, so operators typing
// "frango caipira gde" and "Frango Caipira Grande" fragment the rankings; the
// suggestion table heals that at entry time.
package matching

import (
	"context"
)

type Repository interface {
	FindSuggestion(ctx context.Context, descricao string) (string, error)
	SaveSuggestion(ctx context.Context, descricao, produtoNome string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest returns the catalog product name recorded for a free-typed
// description, or empty string when nothing matches.
func (s *Service) Suggest(ctx context.Context, descricao string) (string, error) {
	if descricao == "" {
		return "", nil
	}

	return s.repo.FindSuggestion(ctx, descricao)
}

// Learn records that a free-typed description refers to a catalog product, so
// the next sale typed the same way snaps to the canonical name.
func (s *Service) Learn(ctx context.Context, descricao, produtoNome string) error {
	return s.repo.SaveSuggestion(ctx, descricao, produtoNome)
}
