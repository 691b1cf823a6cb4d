package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/zhakhand/sport-calendar-backend/internal/model"
	"github.com/zhakhand/sport-calendar-backend/internal/repository"
)

// TeamService 球队查询与直接创建的业务封装
type TeamService struct {
	teams  repository.TeamRepository
	logger *logrus.Logger
}

// NewTeamService 创建 TeamService
func NewTeamService(teams repository.TeamRepository, logger *logrus.Logger) *TeamService {
	return &TeamService{teams: teams, logger: logger}
}

func (s *TeamService) List(ctx context.Context) ([]model.Team, error) {
	return s.teams.List(ctx)
}

func (s *TeamService) GetByID(ctx context.Context, id uint64) (*model.Team, error) {
	return s.teams.GetByID(ctx, id)
}

func (s *TeamService) SearchByName(ctx context.Context, name string) ([]model.Team, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: team name is required", repository.ErrValidation)
	}
	return s.teams.SearchByName(ctx, name)
}

func (s *TeamService) SearchByCity(ctx context.Context, city string) ([]model.Team, error) {
	if city == "" {
		return nil, fmt.Errorf("%w: city name is required", repository.ErrValidation)
	}
	return s.teams.SearchByCity(ctx, city)
}

func (s *TeamService) Add(ctx context.Context, name, city string) (uint64, error) {
	if name == "" || city == "" {
		return 0, fmt.Errorf("%w: team name and city are required", repository.ErrValidation)
	}
	return s.teams.Add(ctx, name, city)
}
