package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/zhakhand/sport-calendar-backend/internal/model"
)

// EventView 联表读视图：球队/项目名已展开，venue 取主队城市，
// 星期字段读取时从 event_date 推导。
type EventView struct {
	EventID      uint64 `json:"event_id"`
	EventDate    string `json:"event_date"`
	EventTime    string `json:"event_time"`
	HomeTeamName string `json:"home_team_name"`
	AwayTeamName string `json:"away_team_name"`
	SportName    string `json:"sport_name"`
	Location     string `json:"location"`
	DayOfWeek    int    `json:"day_of_week"`
	WeekdayName  string `json:"weekday_name"`
}

// EventRepository 赛事存储操作（纯存储，不做业务校验）
type EventRepository interface {
	// Insert 插入赛事行；撞 uk_fixture 返回 ErrDuplicateFixture
	Insert(ctx context.Context, ev *model.Event) error
	// GetRecord 按ID取原始行（供局部更新做合并）
	GetRecord(ctx context.Context, id uint64) (*model.Event, error)
	// UpdateRecord 整行落库（合并后的完整记录，不做逐字段更新）
	UpdateRecord(ctx context.Context, ev *model.Event) error
	Delete(ctx context.Context, id uint64) error

	GetAll(ctx context.Context) ([]EventView, error)
	GetByID(ctx context.Context, id uint64) (*EventView, error)
	FindByDate(ctx context.Context, date string) ([]EventView, error)
	FindByLocation(ctx context.Context, city string) ([]EventView, error)
	FindByTeam(ctx context.Context, name string) ([]EventView, error)
	FindBySportName(ctx context.Context, name string) ([]EventView, error)
	FindBySportID(ctx context.Context, sportID uint64) ([]EventView, error)
	FindSpecific(ctx context.Context, date, homeName, awayName string) (*EventView, error)
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository 创建 EventRepository 实例
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Insert(ctx context.Context, ev *model.Event) error {
	if err := r.db.WithContext(ctx).Create(ev).Error; err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (r *eventRepository) GetRecord(ctx context.Context, id uint64) (*model.Event, error) {
	var ev model.Event
	if err := r.db.WithContext(ctx).Where("event_id = ?", id).First(&ev).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ev, nil
}

func (r *eventRepository) UpdateRecord(ctx context.Context, ev *model.Event) error {
	res := r.db.WithContext(ctx).Model(&model.Event{}).
		Where("event_id = ?", ev.EventID).
		Updates(map[string]interface{}{
			"event_date":   ev.EventDate,
			"event_time":   ev.EventTime,
			"home_team_id": ev.HomeTeamID,
			"away_team_id": ev.AwayTeamID,
			"sport_id":     ev.SportID,
		})
	if res.Error != nil {
		return translateWriteError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Where("event_id = ?", id).Delete(&model.Event{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// viewQuery 所有读视图共用的联表查询（teams 联两次：主队 ht、客队 at）
func (r *eventRepository) viewQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("events e").
		Select(`e.event_id, e.event_date, e.event_time,
			ht.team_name AS home_team_name,
			at.team_name AS away_team_name,
			s.sport_name,
			ht.team_city AS location`).
		Joins("JOIN teams ht ON e.home_team_id = ht.team_id").
		Joins("JOIN teams at ON e.away_team_id = at.team_id").
		Joins("JOIN sports s ON e.sport_id = s.sport_id").
		Order("e.event_date ASC, e.event_time ASC")
}

// collect 执行查询、要求至少一行、补齐派生星期字段
func collect(q *gorm.DB) ([]EventView, error) {
	var views []EventView
	if err := q.Scan(&views).Error; err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, ErrNotFound
	}
	for i := range views {
		idx, name, err := model.Weekday(views[i].EventDate)
		if err != nil {
			return nil, err
		}
		views[i].DayOfWeek = idx
		views[i].WeekdayName = name
	}
	return views, nil
}

func (r *eventRepository) GetAll(ctx context.Context) ([]EventView, error) {
	return collect(r.viewQuery(ctx))
}

func (r *eventRepository) GetByID(ctx context.Context, id uint64) (*EventView, error) {
	views, err := collect(r.viewQuery(ctx).Where("e.event_id = ?", id))
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (r *eventRepository) FindByDate(ctx context.Context, date string) ([]EventView, error) {
	return collect(r.viewQuery(ctx).Where("e.event_date = ?", date))
}

// FindByLocation 按主队城市子串过滤。sqlite 的 LIKE 对 ASCII 不区分大小写，
// 这里用 instr 保持字节级精确匹配。
func (r *eventRepository) FindByLocation(ctx context.Context, city string) ([]EventView, error) {
	return collect(r.viewQuery(ctx).Where("instr(ht.team_city, ?) > 0", city))
}

func (r *eventRepository) FindByTeam(ctx context.Context, name string) ([]EventView, error) {
	return collect(r.viewQuery(ctx).
		Where("instr(ht.team_name, ?) > 0 OR instr(at.team_name, ?) > 0", name, name))
}

func (r *eventRepository) FindBySportName(ctx context.Context, name string) ([]EventView, error) {
	return collect(r.viewQuery(ctx).Where("instr(s.sport_name, ?) > 0", name))
}

func (r *eventRepository) FindBySportID(ctx context.Context, sportID uint64) ([]EventView, error) {
	return collect(r.viewQuery(ctx).Where("e.sport_id = ?", sportID))
}

func (r *eventRepository) FindSpecific(ctx context.Context, date, homeName, awayName string) (*EventView, error) {
	views, err := collect(r.viewQuery(ctx).
		Where("e.event_date = ? AND ht.team_name = ? AND at.team_name = ?", date, homeName, awayName))
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// translateWriteError 把存储引擎的约束错误翻译成核心错误类型。
// events 表上唯一的联合索引就是 uk_fixture，撞唯一键即重复赛事；
// CHECK 约束（主队≠客队）引擎不经过 gorm 的错误翻译，按消息识别。
func translateWriteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateFixture
	}
	if strings.Contains(err.Error(), "CHECK constraint failed") {
		return ErrInvalidFixture
	}
	return err
}
