package client

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type Repository interface {
	CreateClient(ctx context.Context, c *Client) error
	GetClient(ctx context.Context, id uuid.UUID) (*Client, error)
	UpdateClient(ctx context.Context, c *Client) error
	DeleteClient(ctx context.Context, id uuid.UUID) error
	ListClients(ctx context.Context, filter ListFilter) ([]*Client, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	FirstName string
	LastName  string
	Phone     string
	TaxID     string
}

type ListFilter struct {
	Query  string
	Limit  int
	Offset int
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Client, error) {
	if params.FirstName == "" && params.LastName == "" {
		return nil, errors.New("client name is required")
	}

	if params.TaxID == "" {
		params.TaxID = DefaultTaxID
	}

	c := &Client{
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Phone:     params.Phone,
		TaxID:     params.TaxID,
	}
	if err := s.repo.CreateClient(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Client, error) {
	return s.repo.GetClient(ctx, id)
}

func (s *Service) Update(ctx context.Context, c *Client) error {
	if c.FirstName == "" && c.LastName == "" {
		return errors.New("client name is required")
	}

	if c.TaxID == "" {
		c.TaxID = DefaultTaxID
	}

	return s.repo.UpdateClient(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteClient(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Client, error) {
	return s.repo.ListClients(ctx, filter)
}
