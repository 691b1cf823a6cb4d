package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/zhakhand/sport-calendar-backend/internal/model"
)

// TeamRepository 球队查询与直接创建。与解析器不同，直接创建撞唯一键
// 不吸收为已有ID，而是作为冲突上报。
type TeamRepository interface {
	List(ctx context.Context) ([]model.Team, error)
	GetByID(ctx context.Context, id uint64) (*model.Team, error)
	SearchByName(ctx context.Context, name string) ([]model.Team, error)
	SearchByCity(ctx context.Context, city string) ([]model.Team, error)
	Add(ctx context.Context, name, city string) (uint64, error)
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository 创建 TeamRepository 实例
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) List(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team
	if err := r.db.WithContext(ctx).Order("team_id ASC").Find(&teams).Error; err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return nil, ErrNotFound
	}
	return teams, nil
}

func (r *teamRepository) GetByID(ctx context.Context, id uint64) (*model.Team, error) {
	var t model.Team
	if err := r.db.WithContext(ctx).Where("team_id = ?", id).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *teamRepository) SearchByName(ctx context.Context, name string) ([]model.Team, error) {
	var teams []model.Team
	if err := r.db.WithContext(ctx).Where("instr(team_name, ?) > 0", name).Find(&teams).Error; err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return nil, ErrNotFound
	}
	return teams, nil
}

func (r *teamRepository) SearchByCity(ctx context.Context, city string) ([]model.Team, error) {
	var teams []model.Team
	if err := r.db.WithContext(ctx).Where("instr(team_city, ?) > 0", city).Find(&teams).Error; err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return nil, ErrNotFound
	}
	return teams, nil
}

func (r *teamRepository) Add(ctx context.Context, name, city string) (uint64, error) {
	t := model.Team{TeamName: name, TeamCity: city}
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrConflict
		}
		return 0, err
	}
	return t.TeamID, nil
}
