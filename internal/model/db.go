package model

// Sport 体育项目实体（sport_name 全表唯一，区分大小写）
type Sport struct {
	SportID   uint64 `gorm:"column:sport_id;primaryKey;autoIncrement;comment:自增主键ID" json:"sport_id"`
	SportName string `gorm:"column:sport_name;type:text;uniqueIndex;not null;comment:项目名称" json:"sport_name"`

	// 该项目下的全部赛事，外键约束建在 events.sport_id 上，删项目级联删赛事
	Events []Event `gorm:"foreignKey:SportID;references:SportID;constraint:OnDelete:CASCADE" json:"-"`
}

// Team 球队实体（team_name + team_city 联合唯一，同名不同城视为两支队）
type Team struct {
	TeamID   uint64 `gorm:"column:team_id;primaryKey;autoIncrement;comment:自增主键ID" json:"team_id"`
	TeamName string `gorm:"column:team_name;type:text;not null;uniqueIndex:uk_team_name_city,priority:1;comment:球队名称" json:"team_name"`
	TeamCity string `gorm:"column:team_city;type:text;not null;uniqueIndex:uk_team_name_city,priority:2;comment:球队所在城市" json:"team_city"`
}

// Event 赛事实体。同一主客队在同一日期时间只允许一场比赛；
// 删除被引用的球队或项目时级联删除赛事。
type Event struct {
	EventID    uint64 `gorm:"column:event_id;primaryKey;autoIncrement;comment:自增主键ID" json:"event_id"`
	EventDate  string `gorm:"column:event_date;type:text;not null;uniqueIndex:uk_fixture,priority:3;comment:比赛日期 YYYY-MM-DD" json:"event_date"`
	EventTime  string `gorm:"column:event_time;type:text;not null;uniqueIndex:uk_fixture,priority:4;comment:比赛时间 HH:MM" json:"event_time"`
	HomeTeamID uint64 `gorm:"column:home_team_id;not null;uniqueIndex:uk_fixture,priority:1;check:chk_not_self,home_team_id <> away_team_id;comment:主队ID" json:"home_team_id"`
	AwayTeamID uint64 `gorm:"column:away_team_id;not null;uniqueIndex:uk_fixture,priority:2;comment:客队ID" json:"away_team_id"`
	SportID    uint64 `gorm:"column:sport_id;not null;comment:项目ID" json:"sport_id"`

	HomeTeam Team `gorm:"foreignKey:HomeTeamID;references:TeamID;constraint:OnDelete:CASCADE" json:"-"`
	AwayTeam Team `gorm:"foreignKey:AwayTeamID;references:TeamID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Sport) TableName() string { return "sports" }
func (Team) TableName() string  { return "teams" }
func (Event) TableName() string { return "events" }
