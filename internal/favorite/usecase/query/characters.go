package query

import (
	"context"

	"github.com/tair/holonet/internal/favorite/domain"
)

// ListCharactersQuery represents the query to list all characters
type ListCharactersQuery struct{}

// ListCharactersHandler handles list characters query
type ListCharactersHandler struct {
	repo domain.Repository
}

// NewListCharactersHandler creates a new list characters handler
func NewListCharactersHandler(repo domain.Repository) *ListCharactersHandler {
	return &ListCharactersHandler{repo: repo}
}

// Handle executes the list characters query
func (h *ListCharactersHandler) Handle(ctx context.Context, _ ListCharactersQuery) ([]domain.CharacterView, error) {
	characters, err := h.repo.ListCharacters(ctx)
	if err != nil {
		return nil, err
	}
	return domain.SerializeCharacters(characters), nil
}

// GetCharacterQuery represents the query to get a character by ID
type GetCharacterQuery struct {
	ID uint
}

// GetCharacterHandler handles get character query
type GetCharacterHandler struct {
	repo domain.Repository
}

// NewGetCharacterHandler creates a new get character handler
func NewGetCharacterHandler(repo domain.Repository) *GetCharacterHandler {
	return &GetCharacterHandler{repo: repo}
}

// Handle executes the get character query
func (h *GetCharacterHandler) Handle(ctx context.Context, query GetCharacterQuery) (*domain.CharacterView, error) {
	if query.ID == 0 {
		return nil, domain.ErrCharacterNotFound
	}

	character, err := h.repo.FindCharacterByID(ctx, query.ID)
	if err != nil {
		return nil, err
	}

	view := domain.SerializeCharacter(*character)
	return &view, nil
}
