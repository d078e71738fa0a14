package service

import (
	"context"

	"github.com/mwhite7112/woodpantry-recipefetch/internal/clients"
)

// RecipeFetcher retrieves the full recipe collection.
type RecipeFetcher interface {
	FetchRecipes(ctx context.Context) ([]clients.Recipe, error)
}

// Service fetches recipes through a NetworkClient. It holds no mutable state
// and is safe for concurrent use.
type Service struct {
	client   *clients.NetworkClient
	endpoint string
}

type Option func(*Service)

// WithEndpoint fetches from endpoint instead of clients.EndpointAllRecipes.
func WithEndpoint(endpoint string) Option {
	return func(s *Service) { s.endpoint = endpoint }
}

func New(client *clients.NetworkClient, opts ...Option) *Service {
	s := &Service{client: client, endpoint: clients.EndpointAllRecipes}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchRecipes returns the decoded collection. Client errors are returned unchanged.
func (s *Service) FetchRecipes(ctx context.Context) ([]clients.Recipe, error) {
	collection, err := clients.Request[clients.RecipeCollection](ctx, s.client, s.endpoint, clients.WithMethod(clients.MethodGet))
	if err != nil {
		return nil, err
	}
	return collection.Recipes, nil
}

var _ RecipeFetcher = (*Service)(nil)
