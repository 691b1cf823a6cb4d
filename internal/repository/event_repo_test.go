package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/zhakhand/sport-calendar-backend/internal/model"
)

// mustEvent 直接经解析器+仓储落一场赛事，返回 event_id
func mustEvent(t *testing.T, db *gorm.DB, date, tm, home, homeCity, away, awayCity, sport string) uint64 {
	t.Helper()
	ctx := context.Background()
	r := NewEntityResolver(db)
	homeID, err := r.ResolveOrCreateTeam(ctx, home, homeCity)
	require.NoError(t, err)
	awayID, err := r.ResolveOrCreateTeam(ctx, away, awayCity)
	require.NoError(t, err)
	sportID, err := r.ResolveOrCreateSport(ctx, sport)
	require.NoError(t, err)
	ev := model.Event{EventDate: date, EventTime: tm, HomeTeamID: homeID, AwayTeamID: awayID, SportID: sportID}
	require.NoError(t, NewEventRepository(db).Insert(ctx, &ev))
	return ev.EventID
}

func TestGetByIDView(t *testing.T) {
	db := testDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	id := mustEvent(t, db, "2025-12-25", "19:30", "Lakers", "Los Angeles", "Warriors", "San Francisco", "Basketball")

	view, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, view.EventID)
	assert.Equal(t, "2025-12-25", view.EventDate)
	assert.Equal(t, "19:30", view.EventTime)
	assert.Equal(t, "Lakers", view.HomeTeamName)
	assert.Equal(t, "Warriors", view.AwayTeamName)
	assert.Equal(t, "Basketball", view.SportName)
	assert.Equal(t, "Los Angeles", view.Location)
	assert.Equal(t, 4, view.DayOfWeek)
	assert.Equal(t, "Thursday", view.WeekdayName)
}

func TestGetByIDNotFound(t *testing.T) {
	db := testDB(t)
	repo := NewEventRepository(db)

	_, err := repo.GetByID(context.Background(), 99999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInsertDuplicateFixture(t *testing.T) {
	db := testDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	id := mustEvent(t, db, "2025-11-12", "18:00", "TeamA", "CityA", "TeamB", "CityB", "Sport1")
	require.NotZero(t, id)

	ev, err := repo.GetRecord(ctx, id)
	require.NoError(t, err)
	dup := model.Event{
		EventDate:  ev.EventDate,
		EventTime:  ev.EventTime,
		HomeTeamID: ev.HomeTeamID,
		AwayTeamID: ev.AwayTeamID,
		SportID:    ev.SportID,
	}
	assert.ErrorIs(t, repo.Insert(ctx, &dup), ErrDuplicateFixture)
}

// CHECK 约束兜底：即使绕过业务校验直插同队对阵也会被引擎拦下
func TestInsertSelfFixtureRejectedByCheck(t *testing.T) {
	db := testDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	r := NewEntityResolver(db)
	teamID, err := r.ResolveOrCreateTeam(ctx, "Solo", "Nowhere")
	require.NoError(t, err)
	sportID, err := r.ResolveOrCreateSport(ctx, "Chess")
	require.NoError(t, err)

	ev := model.Event{EventDate: "2025-11-01", EventTime: "10:00", HomeTeamID: teamID, AwayTeamID: teamID, SportID: sportID}
	assert.ErrorIs(t, repo.Insert(ctx, &ev), ErrInvalidFixture)
}

func TestGetAllOrderedByDateTime(t *testing.T) {
	db := testDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	mustEvent(t, db, "2025-11-02", "20:00", "B1", "C1", "B2", "C2", "S")
	mustEvent(t, db, "2025-11-01", "19:00", "A1", "D1", "A2", "D2", "S")
	mustEvent(t, db, "2025-11-02", "09:00", "E1", "F1", "E2", "F2", "S")

	views, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "2025-11-01", views[0].EventDate)
	assert.Equal(t, "2025-11-02", views[1].EventDate)
	assert.Equal(t, "09:00", views[1].EventTime)
	assert.Equal(t, "20:00", views[2].EventTime)
}

func TestFindByDate(t *testing.T) {
	db := testDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	mustEvent(t, db, "2025-12-25", "12:00", "T1", "C1", "T2", "C2", "S1")
	mustEvent(t, db, "2025-12-25", "15:00", "T3", "C3", "T4", "C4", "S1")
	mustEvent(t, db, "2025-12-26", "12:00", "T5", "C5", "T6", "C6", "S1")

	views, err := repo.FindByDate(ctx, "2025-12-25")
	require.NoError(t, err)
	require.Len(t, views, 2)
	for _, v := range views {
		assert.Equal(t, "2025-12-25", v.EventDate)
	}

	_, err = repo.FindByDate(ctx, "2099-01-01")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindByLocationSubstringCaseSensitive(t *testing.T) {
	db := testDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	mustEvent(t, db, "2025-11-20", "19:00", "Lakers", "Los Angeles", "Clippers", "Los Angeles", "Basketball")

	views, err := repo.FindByLocation(ctx, "Los Ang")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Los Angeles", views[0].Location)

	// 大小写不匹配不算命中
	_, err = repo.FindByLocation(ctx, "los angeles")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindByTeamHomeOrAway(t *testing.T) {
	db := testDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	mustEvent(t, db, "2025-11-21", "19:00", "Patriots", "Boston", "Jets", "New York", "Football")
	mustEvent(t, db, "2025-11-22", "19:00", "Giants", "New York", "Patriots", "Boston", "Football")

	views, err := repo.FindByTeam(ctx, "Patriots")
	require.NoError(t, err)
	assert.Len(t, views, 2)

	_, err = repo.FindByTeam(ctx, "NonExistentTeam")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindBySportNameAndID(t *testing.T) {
	db := testDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	mustEvent(t, db, "2025-11-22", "20:00", "Bruins", "Boston", "Rangers", "New York", "Hockey")

	views, err := repo.FindBySportName(ctx, "Hock")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Hockey", views[0].SportName)

	var sport model.Sport
	require.NoError(t, db.Where("sport_name = ?", "Hockey").First(&sport).Error)
	views, err = repo.FindBySportID(ctx, sport.SportID)
	require.NoError(t, err)
	assert.Len(t, views, 1)

	_, err = repo.FindBySportID(ctx, 424242)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindSpecific(t *testing.T) {
	db := testDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	mustEvent(t, db, "2025-11-22", "20:00", "Bruins", "Boston", "Rangers", "New York", "Hockey")

	view, err := repo.FindSpecific(ctx, "2025-11-22", "Bruins", "Rangers")
	require.NoError(t, err)
	assert.Equal(t, "Bruins", view.HomeTeamName)
	assert.Equal(t, "Rangers", view.AwayTeamName)

	_, err = repo.FindSpecific(ctx, "2099-01-01", "TeamX", "TeamY")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteThenGone(t *testing.T) {
	db := testDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	id := mustEvent(t, db, "2025-11-26", "19:00", "DeleteTeam1", "City1", "DeleteTeam2", "City2", "DeleteSport")

	require.NoError(t, repo.Delete(ctx, id))
	_, err := repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	// 删除不存在的ID不是静默成功
	assert.ErrorIs(t, repo.Delete(ctx, id), ErrNotFound)
}

// 删除被引用球队时级联删除其赛事
func TestTeamDeleteCascadesToEvents(t *testing.T) {
	db := testDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	keep := mustEvent(t, db, "2025-11-27", "19:00", "Stays1", "CityS", "Stays2", "CityT", "SportS")
	gone := mustEvent(t, db, "2025-11-28", "19:00", "Doomed", "CityD", "Stays1", "CityS", "SportS")

	require.NoError(t, db.Where("team_name = ? AND team_city = ?", "Doomed", "CityD").Delete(&model.Team{}).Error)

	views, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, keep, views[0].EventID)

	_, err = repo.GetByID(ctx, gone)
	assert.ErrorIs(t, err, ErrNotFound)
}

// 删除被引用项目时级联删除其赛事
func TestSportDeleteCascadesToEvents(t *testing.T) {
	db := testDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	keep := mustEvent(t, db, "2025-11-29", "19:00", "K1", "CityK", "K2", "CityL", "KeptSport")
	gone := mustEvent(t, db, "2025-11-30", "19:00", "G1", "CityG", "G2", "CityH", "DoomedSport")

	require.NoError(t, db.Where("sport_name = ?", "DoomedSport").Delete(&model.Sport{}).Error)

	views, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, keep, views[0].EventID)

	_, err = repo.GetByID(ctx, gone)
	assert.ErrorIs(t, err, ErrNotFound)
}
