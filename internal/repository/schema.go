package repository

import (
	"gorm.io/gorm"

	"github.com/zhakhand/sport-calendar-backend/internal/model"
)

// Migrate 按外键依赖顺序建表（不存在则创建，幂等）。
// 必须在任何其他组件使用前执行，失败视为致命错误。
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Sport{},
		&model.Team{},
		&model.Event{},
	)
}

// Seed 首次启动时填充演示数据；sports 表非空则跳过。
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Sport{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	sports := []model.Sport{
		{SportName: "Soccer"},
		{SportName: "Basketball"},
		{SportName: "Tennis"},
		{SportName: "Baseball"},
		{SportName: "Hockey"},
	}
	teams := []model.Team{
		{TeamName: "Lakers", TeamCity: "Los Angeles"},
		{TeamName: "Warriors", TeamCity: "San Francisco"},
		{TeamName: "Yankees", TeamCity: "New York"},
		{TeamName: "Red Sox", TeamCity: "Boston"},
		{TeamName: "Maple Leafs", TeamCity: "Toronto"},
		{TeamName: "Capitals", TeamCity: "Washington"},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sports).Error; err != nil {
			return err
		}
		if err := tx.Create(&teams).Error; err != nil {
			return err
		}
		events := []model.Event{
			{EventDate: "2025-10-01", EventTime: "19:00", HomeTeamID: teams[0].TeamID, AwayTeamID: teams[1].TeamID, SportID: sports[1].SportID},
			{EventDate: "2025-10-02", EventTime: "20:00", HomeTeamID: teams[2].TeamID, AwayTeamID: teams[3].TeamID, SportID: sports[3].SportID},
			{EventDate: "2025-10-03", EventTime: "18:30", HomeTeamID: teams[4].TeamID, AwayTeamID: teams[5].TeamID, SportID: sports[4].SportID},
		}
		return tx.Create(&events).Error
	})
}
