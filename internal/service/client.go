package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"

	"github.com/softsales/api/internal/entity"
)

// CreateIndividualClient registers an individual client. New clients start as
// non-returning; the flag is flipped by back-office tooling, not this API.
func (s *Service) CreateIndividualClient(ctx context.Context, in entity.NewIndividual) (entity.Client, error) {
	now := s.now()

	c := entity.Client{
		ID:      uuid.Must(uuid.NewV4()),
		Kind:    entity.ClientKindIndividual,
		Email:   in.Email,
		Address: in.Address,
		Phone:   in.Phone,
		Individual: &entity.Individual{
			FirstName: in.FirstName,
			LastName:  in.LastName,
			PESEL:     in.PESEL,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	c, err := s.repo.CreateClient(ctx, c)
	if err != nil {
		return entity.Client{}, fmt.Errorf("create individual client: %w", err)
	}

	slog.InfoContext(ctx, "individual client created", "client_id", c.ID)

	return c, nil
}

func (s *Service) CreateBusinessClient(ctx context.Context, in entity.NewBusiness) (entity.Client, error) {
	now := s.now()

	c := entity.Client{
		ID:      uuid.Must(uuid.NewV4()),
		Kind:    entity.ClientKindBusiness,
		Email:   in.Email,
		Address: in.Address,
		Phone:   in.Phone,
		Business: &entity.Business{
			Name: in.Name,
			KRS:  in.KRS,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	c, err := s.repo.CreateClient(ctx, c)
	if err != nil {
		return entity.Client{}, fmt.Errorf("create business client: %w", err)
	}

	slog.InfoContext(ctx, "business client created", "client_id", c.ID)

	return c, nil
}

func (s *Service) UpdateIndividualClient(ctx context.Context, id uuid.UUID, upd entity.IndividualUpdate) error {
	err := s.repo.UpdateIndividualClient(ctx, id, upd, s.now())
	if err != nil {
		return fmt.Errorf("update individual client %s: %w", id, err)
	}

	return nil
}

func (s *Service) UpdateBusinessClient(ctx context.Context, id uuid.UUID, upd entity.BusinessUpdate) error {
	err := s.repo.UpdateBusinessClient(ctx, id, upd, s.now())
	if err != nil {
		return fmt.Errorf("update business client %s: %w", id, err)
	}

	return nil
}

// DeleteClient soft-deletes an individual client. Agreements and payments the
// client owns are kept.
func (s *Service) DeleteClient(ctx context.Context, id uuid.UUID) error {
	err := s.repo.SoftDeleteIndividualClient(ctx, id, s.now())
	if err != nil {
		return fmt.Errorf("delete client %s: %w", id, err)
	}

	slog.InfoContext(ctx, "client deleted", "client_id", id)

	return nil
}
