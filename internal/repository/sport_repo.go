package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/zhakhand/sport-calendar-backend/internal/model"
)

// SportRepository 体育项目查询与直接创建
type SportRepository interface {
	List(ctx context.Context) ([]model.Sport, error)
	Add(ctx context.Context, name string) (uint64, error)
}

type sportRepository struct {
	db *gorm.DB
}

// NewSportRepository 创建 SportRepository 实例
func NewSportRepository(db *gorm.DB) SportRepository {
	return &sportRepository{db: db}
}

func (r *sportRepository) List(ctx context.Context) ([]model.Sport, error) {
	var sports []model.Sport
	if err := r.db.WithContext(ctx).Order("sport_id ASC").Find(&sports).Error; err != nil {
		return nil, err
	}
	if len(sports) == 0 {
		return nil, ErrNotFound
	}
	return sports, nil
}

func (r *sportRepository) Add(ctx context.Context, name string) (uint64, error) {
	s := model.Sport{SportName: name}
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrConflict
		}
		return 0, err
	}
	return s.SportID, nil
}
