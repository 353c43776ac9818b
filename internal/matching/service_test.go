package matching_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caipirao/caipirao/internal/matching"
)

type fakeRepo struct {
	suggestions map[string]string
	findCalls   int
}

func (f *fakeRepo) FindSuggestion(_ context.Context, descricao string) (string, error) {
	f.findCalls++
	return f.suggestions[descricao], nil
}

func (f *fakeRepo) SaveSuggestion(_ context.Context, descricao, produtoNome string) error {
	f.suggestions[descricao] = produtoNome
	return nil
}

func TestService_Suggest(t *testing.T) {
	repo := &fakeRepo{suggestions: map[string]string{"frango caipira gde": "Frango Caipira"}}
	svc := matching.NewService(repo)

	got, err := svc.Suggest(context.Background(), "frango caipira gde")
	require.NoError(t, err)
	assert.Equal(t, "Frango Caipira", got)

	got, err = svc.Suggest(context.Background(), "algo nunca visto")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestService_Suggest_EmptyInputSkipsLookup(t *testing.T) {
	repo := &fakeRepo{suggestions: map[string]string{}}
	svc := matching.NewService(repo)

	got, err := svc.Suggest(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, repo.findCalls)
}

func TestService_Learn(t *testing.T) {
	repo := &fakeRepo{suggestions: map[string]string{}}
	svc := matching.NewService(repo)

	require.NoError(t, svc.Learn(context.Background(), "linguica apimentada", "Linguiça"))

	got, err := svc.Suggest(context.Background(), "linguica apimentada")
	require.NoError(t, err)
	assert.Equal(t, "Linguiça", got)
}
