package service

import (
	"context"
	"fmt"
	"strings"

	"lello/internal/model"
	"lello/internal/repository"

	"github.com/google/uuid"
)

// CreateTeam stores a team with actor as its first member and grants actor
// the right to add members.
func (s *Service) CreateTeam(ctx context.Context, actor uuid.UUID, name string) (*model.Team, error) {
	if strings.TrimSpace(name) == "" {
		return nil, required("name")
	}

	var team *model.Team
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		created := &model.Team{Name: name}
		if err := tx.Teams.Create(ctx, created); err != nil {
			return fmt.Errorf("create team: %w", err)
		}
		if err := tx.Teams.AddMember(ctx, created.ID, actor); err != nil {
			return fmt.Errorf("add member: %w", err)
		}
		if err := tx.Grants.Grant(ctx, model.CapabilityManageTeam, actor, created.ID); err != nil {
			return fmt.Errorf("grant %s: %w", model.CapabilityManageTeam, err)
		}
		var err error
		team, err = tx.Teams.GetByID(ctx, created.ID)
		return err
	})
	if err != nil {
		return nil, s.failed("create team", err)
	}
	return team, nil
}

// AddTeamMember puts an existing user on the team. Adding a member twice
// leaves the team unchanged.
func (s *Service) AddTeamMember(ctx context.Context, teamID, userID uuid.UUID) (*model.Team, error) {
	var team *model.Team
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Teams.GetByID(ctx, teamID); err != nil {
			return err
		}
		if _, err := tx.Users.GetByID(ctx, userID); err != nil {
			return err
		}
		if err := tx.Teams.AddMember(ctx, teamID, userID); err != nil {
			return fmt.Errorf("add member: %w", err)
		}
		var err error
		team, err = tx.Teams.GetByID(ctx, teamID)
		return err
	})
	if err != nil {
		return nil, s.failed("add team member", err)
	}
	return team, nil
}

func (s *Service) GetTeam(ctx context.Context, id uuid.UUID) (*model.Team, error) {
	return s.store.Teams.GetByID(ctx, id)
}
