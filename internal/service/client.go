package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/clientnudge/invoicing/internal/entity"
)

type ClientParams struct {
	Name    string
	Email   string
	Phone   string
	Company string
}

func (s *Service) CreateClient(ctx context.Context, p ClientParams) (entity.Client, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Client{}, err
	}

	if p.Name == "" || p.Email == "" {
		return entity.Client{}, fmt.Errorf("%w: client name and email are required", entity.ErrInvalidArgument)
	}

	c := entity.Client{
		ID:           uuid.Must(uuid.NewV4()),
		UserID:       user.ID,
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		Company:      p.Company,
		PaymentScore: entity.PaymentScoreMedium,
		CreatedAt:    time.Now(),
	}

	err = s.repo.CreateClient(ctx, c)
	if err != nil {
		return entity.Client{}, fmt.Errorf("create client: %w", err)
	}

	return c, nil
}

func (s *Service) Clients(ctx context.Context) ([]entity.Client, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	clients, err := s.repo.Clients(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("get clients: %w", err)
	}

	return clients, nil
}

func (s *Service) Client(ctx context.Context, id uuid.UUID) (entity.Client, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Client{}, err
	}

	c, err := s.repo.Client(ctx, user.ID, id)
	if err != nil {
		return entity.Client{}, fmt.Errorf("get client %s: %w", id, err)
	}

	return c, nil
}

func (s *Service) UpdateClient(ctx context.Context, id uuid.UUID, p ClientParams) (entity.Client, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Client{}, err
	}

	c, err := s.repo.Client(ctx, user.ID, id)
	if err != nil {
		return entity.Client{}, fmt.Errorf("get client %s: %w", id, err)
	}

	if p.Name != "" {
		c.Name = p.Name
	}
	if p.Email != "" {
		c.Email = p.Email
	}
	c.Phone = p.Phone
	c.Company = p.Company

	err = s.repo.UpdateClient(ctx, c)
	if err != nil {
		return entity.Client{}, fmt.Errorf("update client %s: %w", id, err)
	}

	return c, nil
}

func (s *Service) DeleteClient(ctx context.Context, id uuid.UUID) error {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return err
	}

	err = s.repo.DeleteClient(ctx, user.ID, id)
	if err != nil {
		return fmt.Errorf("delete client %s: %w", id, err)
	}

	return nil
}

type ProjectParams struct {
	ClientID   uuid.UUID
	Name       string
	TotalValue decimal.Decimal
	Currency   string
	Deadline   *time.Time
}

func (s *Service) CreateProject(ctx context.Context, p ProjectParams) (entity.Project, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Project{}, err
	}

	_, err = s.repo.Client(ctx, user.ID, p.ClientID)
	if err != nil {
		return entity.Project{}, fmt.Errorf("get client %s: %w", p.ClientID, err)
	}

	proj := entity.Project{
		ID:               uuid.Must(uuid.NewV4()),
		UserID:           user.ID,
		ClientID:         p.ClientID,
		Name:             p.Name,
		TotalValue:       p.TotalValue,
		Currency:         p.Currency,
		RemainingBalance: p.TotalValue,
		Deadline:         p.Deadline,
		CreatedAt:        time.Now(),
	}

	err = s.repo.CreateProject(ctx, proj)
	if err != nil {
		return entity.Project{}, fmt.Errorf("create project: %w", err)
	}

	return proj, nil
}

func (s *Service) Projects(ctx context.Context) ([]entity.Project, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := s.repo.Projects(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("get projects: %w", err)
	}

	return projects, nil
}

// UpdateProjectCompletion moves the completion slider and recalculates earned
// and remaining amounts.
func (s *Service) UpdateProjectCompletion(ctx context.Context, id uuid.UUID, pct decimal.Decimal) (entity.Project, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Project{}, err
	}

	if pct.IsNegative() || pct.GreaterThan(decimal.New(100, 0)) {
		return entity.Project{}, fmt.Errorf("%w: completion percentage %s out of range", entity.ErrInvalidArgument, pct)
	}

	proj, err := s.repo.Project(ctx, user.ID, id)
	if err != nil {
		return entity.Project{}, fmt.Errorf("get project %s: %w", id, err)
	}

	proj.ApplyCompletion(pct)

	err = s.repo.UpdateProjectCompletion(ctx, proj)
	if err != nil {
		return entity.Project{}, fmt.Errorf("update project %s completion: %w", id, err)
	}

	return proj, nil
}
