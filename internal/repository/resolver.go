package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/zhakhand/sport-calendar-backend/internal/model"
)

// EntityResolver 自然键到代理ID的统一解析：存在则返回现有ID，不存在则原子创建。
// 名称按字节精确匹配，不做 trim 和大小写归一（"NBA" 和 "nba" 是两个项目）。
type EntityResolver interface {
	ResolveOrCreateSport(ctx context.Context, name string) (uint64, error)
	ResolveOrCreateTeam(ctx context.Context, name, city string) (uint64, error)
}

type entityResolver struct {
	db *gorm.DB
}

// NewEntityResolver 创建 EntityResolver 实例
func NewEntityResolver(db *gorm.DB) EntityResolver {
	return &entityResolver{db: db}
}

// resolve 两个实现共用的算法骨架：先查后插，插入撞唯一键时回查一次。
// 回查仍未命中（并发方创建后又被删除）才返回 ErrConflict，调用方可重试。
func (r *entityResolver) resolve(
	find func(tx *gorm.DB) (uint64, error),
	create func(tx *gorm.DB) (uint64, error),
) (uint64, error) {
	id, err := find(r.db)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	id, err = create(r.db)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return 0, err
	}

	// 并发插入竞态：另一个请求先落库，回查拿现成的ID
	id, err = find(r.db)
	if err == nil {
		return id, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrConflict
	}
	return 0, err
}

func (r *entityResolver) ResolveOrCreateSport(ctx context.Context, name string) (uint64, error) {
	return r.resolve(
		func(tx *gorm.DB) (uint64, error) {
			var s model.Sport
			if err := tx.WithContext(ctx).Where("sport_name = ?", name).First(&s).Error; err != nil {
				return 0, err
			}
			return s.SportID, nil
		},
		func(tx *gorm.DB) (uint64, error) {
			s := model.Sport{SportName: name}
			if err := tx.WithContext(ctx).Create(&s).Error; err != nil {
				return 0, err
			}
			return s.SportID, nil
		},
	)
}

func (r *entityResolver) ResolveOrCreateTeam(ctx context.Context, name, city string) (uint64, error) {
	return r.resolve(
		func(tx *gorm.DB) (uint64, error) {
			var t model.Team
			if err := tx.WithContext(ctx).Where("team_name = ? AND team_city = ?", name, city).First(&t).Error; err != nil {
				return 0, err
			}
			return t.TeamID, nil
		},
		func(tx *gorm.DB) (uint64, error) {
			t := model.Team{TeamName: name, TeamCity: city}
			if err := tx.WithContext(ctx).Create(&t).Error; err != nil {
				return 0, err
			}
			return t.TeamID, nil
		},
	)
}
