package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/zhakhand/sport-calendar-backend/internal/model"
	"github.com/zhakhand/sport-calendar-backend/internal/repository"
)

// EventService 赛事业务编排：入参校验（快速失败，不触库）、
// 自然键解析、局部更新的合并落库。
type EventService struct {
	events   repository.EventRepository
	teams    repository.TeamRepository
	resolver repository.EntityResolver
	logger   *logrus.Logger
}

// NewEventService 创建 EventService
func NewEventService(events repository.EventRepository, teams repository.TeamRepository, resolver repository.EntityResolver, logger *logrus.Logger) *EventService {
	return &EventService{
		events:   events,
		teams:    teams,
		resolver: resolver,
		logger:   logger,
	}
}

// CreateEventInput 创建赛事的全量入参（七个字段均必填）
type CreateEventInput struct {
	Date         string
	Time         string
	HomeTeamName string
	HomeTeamCity string
	AwayTeamName string
	AwayTeamCity string
	SportName    string
}

// UpdateEventInput 局部更新入参，nil 表示保留原值
type UpdateEventInput struct {
	Date         *string
	Time         *string
	HomeTeamName *string
	HomeTeamCity *string
	AwayTeamName *string
	AwayTeamCity *string
	SportName    *string
}

func validateDate(date string) error {
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", repository.ErrValidation)
	}
	return nil
}

func validateTime(t string) error {
	if _, err := time.Parse(model.TimeLayout, t); err != nil {
		return fmt.Errorf("%w: time must be HH:MM", repository.ErrValidation)
	}
	return nil
}

// Create 解析三个外键实体（不存在则创建）后插入赛事行。
// 注意：赛事插入撞唯一键时，解析阶段已创建的球队/项目不回滚，这是有意保留的行为。
func (s *EventService) Create(ctx context.Context, in CreateEventInput) (uint64, error) {
	required := []struct{ field, value string }{
		{"date", in.Date},
		{"time", in.Time},
		{"home_team_name", in.HomeTeamName},
		{"home_team_city", in.HomeTeamCity},
		{"away_team_name", in.AwayTeamName},
		{"away_team_city", in.AwayTeamCity},
		{"sport_name", in.SportName},
	}
	for _, r := range required {
		if r.value == "" {
			return 0, fmt.Errorf("%w: %s is required", repository.ErrValidation, r.field)
		}
	}
	if err := validateDate(in.Date); err != nil {
		return 0, err
	}
	if err := validateTime(in.Time); err != nil {
		return 0, err
	}
	// 主客队同名同城必然解析为同一支球队，提前拦截，避免白创建实体
	if in.HomeTeamName == in.AwayTeamName && in.HomeTeamCity == in.AwayTeamCity {
		return 0, repository.ErrInvalidFixture
	}

	homeID, err := s.resolver.ResolveOrCreateTeam(ctx, in.HomeTeamName, in.HomeTeamCity)
	if err != nil {
		return 0, err
	}
	awayID, err := s.resolver.ResolveOrCreateTeam(ctx, in.AwayTeamName, in.AwayTeamCity)
	if err != nil {
		return 0, err
	}
	sportID, err := s.resolver.ResolveOrCreateSport(ctx, in.SportName)
	if err != nil {
		return 0, err
	}
	if homeID == awayID {
		return 0, repository.ErrInvalidFixture
	}

	ev := model.Event{
		EventDate:  in.Date,
		EventTime:  in.Time,
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		SportID:    sportID,
	}
	if err := s.events.Insert(ctx, &ev); err != nil {
		return 0, err
	}
	return ev.EventID, nil
}

// Update 局部更新：读当前行 → 覆盖提供的字段 → 校验合并结果 → 整行落库。
// 提供了球队/项目字段时重新走解析器换算外键，可能指向（或新建）另一行，
// 原行即使因此失去引用也保留。
func (s *EventService) Update(ctx context.Context, id uint64, in UpdateEventInput) error {
	current, err := s.events.GetRecord(ctx, id)
	if err != nil {
		return err
	}

	if in.Date != nil {
		if err := validateDate(*in.Date); err != nil {
			return err
		}
		current.EventDate = *in.Date
	}
	if in.Time != nil {
		if err := validateTime(*in.Time); err != nil {
			return err
		}
		current.EventTime = *in.Time
	}

	if in.HomeTeamName != nil || in.HomeTeamCity != nil {
		id, err := s.reresolveTeam(ctx, current.HomeTeamID, in.HomeTeamName, in.HomeTeamCity)
		if err != nil {
			return err
		}
		current.HomeTeamID = id
	}
	if in.AwayTeamName != nil || in.AwayTeamCity != nil {
		id, err := s.reresolveTeam(ctx, current.AwayTeamID, in.AwayTeamName, in.AwayTeamCity)
		if err != nil {
			return err
		}
		current.AwayTeamID = id
	}
	if in.SportName != nil {
		if *in.SportName == "" {
			return fmt.Errorf("%w: sport_name must not be empty", repository.ErrValidation)
		}
		sportID, err := s.resolver.ResolveOrCreateSport(ctx, *in.SportName)
		if err != nil {
			return err
		}
		current.SportID = sportID
	}

	if current.HomeTeamID == current.AwayTeamID {
		return repository.ErrInvalidFixture
	}
	return s.events.UpdateRecord(ctx, current)
}

// reresolveTeam 球队字段只给了一半时，另一半沿用当前引用球队的值再解析
func (s *EventService) reresolveTeam(ctx context.Context, currentID uint64, name, city *string) (uint64, error) {
	var t model.Team
	newName, newCity := "", ""
	if name == nil || city == nil {
		// 当前赛事引用的球队一定存在（外键保证）
		cur, err := s.teams.GetByID(ctx, currentID)
		if err != nil {
			return 0, err
		}
		t = *cur
	}
	if name != nil {
		newName = *name
	} else {
		newName = t.TeamName
	}
	if city != nil {
		newCity = *city
	} else {
		newCity = t.TeamCity
	}
	if newName == "" || newCity == "" {
		return 0, fmt.Errorf("%w: team name and city must not be empty", repository.ErrValidation)
	}
	return s.resolver.ResolveOrCreateTeam(ctx, newName, newCity)
}

func (s *EventService) Delete(ctx context.Context, id uint64) error {
	return s.events.Delete(ctx, id)
}

func (s *EventService) GetAll(ctx context.Context) ([]repository.EventView, error) {
	return s.events.GetAll(ctx)
}

func (s *EventService) GetByID(ctx context.Context, id uint64) (*repository.EventView, error) {
	return s.events.GetByID(ctx, id)
}

func (s *EventService) FindByDate(ctx context.Context, date string) ([]repository.EventView, error) {
	if date == "" {
		return nil, fmt.Errorf("%w: date is required", repository.ErrValidation)
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}
	return s.events.FindByDate(ctx, date)
}

func (s *EventService) FindByLocation(ctx context.Context, city string) ([]repository.EventView, error) {
	if city == "" {
		return nil, fmt.Errorf("%w: location is required", repository.ErrValidation)
	}
	return s.events.FindByLocation(ctx, city)
}

func (s *EventService) FindByTeam(ctx context.Context, name string) ([]repository.EventView, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: team name is required", repository.ErrValidation)
	}
	return s.events.FindByTeam(ctx, name)
}

func (s *EventService) FindBySportName(ctx context.Context, name string) ([]repository.EventView, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: sport name is required", repository.ErrValidation)
	}
	return s.events.FindBySportName(ctx, name)
}

func (s *EventService) FindBySportID(ctx context.Context, sportID uint64) ([]repository.EventView, error) {
	return s.events.FindBySportID(ctx, sportID)
}

// FindSpecific 三个参数缺一不可
func (s *EventService) FindSpecific(ctx context.Context, date, homeName, awayName string) (*repository.EventView, error) {
	if date == "" || homeName == "" || awayName == "" {
		return nil, fmt.Errorf("%w: date, home_team_name and away_team_name are required", repository.ErrValidation)
	}
	return s.events.FindSpecific(ctx, date, homeName, awayName)
}
