package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/zhakhand/sport-calendar-backend/internal/model"
	"github.com/zhakhand/sport-calendar-backend/internal/repository"
)

// SportService 体育项目查询与直接创建的业务封装
type SportService struct {
	sports repository.SportRepository
	logger *logrus.Logger
}

// NewSportService 创建 SportService
func NewSportService(sports repository.SportRepository, logger *logrus.Logger) *SportService {
	return &SportService{sports: sports, logger: logger}
}

func (s *SportService) List(ctx context.Context) ([]model.Sport, error) {
	return s.sports.List(ctx)
}

func (s *SportService) Add(ctx context.Context, name string) (uint64, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: sport name is required", repository.ErrValidation)
	}
	return s.sports.Add(ctx, name)
}
