package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/zhakhand/sport-calendar-backend/internal/repository"
	"github.com/zhakhand/sport-calendar-backend/internal/service"
)

// EventHandler 赛事相关接口
type EventHandler struct {
	eventService *service.EventService
	logger       *logrus.Logger
}

// NewEventHandler 创建 EventHandler
func NewEventHandler(db *gorm.DB, logger *logrus.Logger) *EventHandler {
	events := repository.NewEventRepository(db)
	teams := repository.NewTeamRepository(db)
	resolver := repository.NewEntityResolver(db)
	svc := service.NewEventService(events, teams, resolver, logger)
	return &EventHandler{
		eventService: svc,
		logger:       logger,
	}
}

// createEventRequest POST /info/events 请求体
type createEventRequest struct {
	Date         string `json:"date"`
	Time         string `json:"time"`
	HomeTeamName string `json:"home_team_name"`
	HomeTeamCity string `json:"home_team_city"`
	AwayTeamName string `json:"away_team_name"`
	AwayTeamCity string `json:"away_team_city"`
	SportName    string `json:"sport_name"`
}

// updateEventRequest PUT /info/events/:id 请求体，缺省字段保留原值
type updateEventRequest struct {
	Date         *string `json:"date"`
	Time         *string `json:"time"`
	HomeTeamName *string `json:"home_team_name"`
	HomeTeamCity *string `json:"home_team_city"`
	AwayTeamName *string `json:"away_team_name"`
	AwayTeamCity *string `json:"away_team_city"`
	SportName    *string `json:"sport_name"`
}

func parseID(c *gin.Context, param string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: valid numeric id is required", repository.ErrValidation)
	}
	return id, nil
}

// ListEvents 全部赛事（按日期、时间升序）
// GET /info/events
func (h *EventHandler) ListEvents(c *gin.Context) {
	views, err := h.eventService.GetAll(c.Request.Context())
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetEventByID 按ID查赛事
// GET /info/events/:id
func (h *EventHandler) GetEventByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		replyError(c, err)
		return
	}
	view, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SearchByDate 按日期精确查
// GET /info/events/search/date/:date
func (h *EventHandler) SearchByDate(c *gin.Context) {
	views, err := h.eventService.FindByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// SearchByLocation 按主队城市子串查（venue 即主队城市）
// GET /info/events/search/location/:location
func (h *EventHandler) SearchByLocation(c *gin.Context) {
	views, err := h.eventService.FindByLocation(c.Request.Context(), c.Param("location"))
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// SearchByTeam 按球队名子串查（主队或客队命中均算）
// GET /info/events/search/team/:teamName
func (h *EventHandler) SearchByTeam(c *gin.Context) {
	views, err := h.eventService.FindByTeam(c.Request.Context(), c.Param("teamName"))
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// SearchBySportID 按项目ID查
// GET /info/events/search/sportId/:sportId
func (h *EventHandler) SearchBySportID(c *gin.Context) {
	id, err := parseID(c, "sportId")
	if err != nil {
		replyError(c, err)
		return
	}
	views, err := h.eventService.FindBySportID(c.Request.Context(), id)
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// SearchBySportName 按项目名子串查
// GET /info/events/search/sportName/:sportName
func (h *EventHandler) SearchBySportName(c *gin.Context) {
	views, err := h.eventService.FindBySportName(c.Request.Context(), c.Param("sportName"))
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// SearchSpecific 按日期+主队+客队查唯一一场
// GET /info/events/search/specific?date=&home_team_name=&away_team_name=
func (h *EventHandler) SearchSpecific(c *gin.Context) {
	view, err := h.eventService.FindSpecific(
		c.Request.Context(),
		c.Query("date"),
		c.Query("home_team_name"),
		c.Query("away_team_name"),
	)
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CreateEvent 创建赛事（球队/项目不存在则顺带创建）
// POST /info/events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	id, err := h.eventService.Create(c.Request.Context(), service.CreateEventInput{
		Date:         req.Date,
		Time:         req.Time,
		HomeTeamName: req.HomeTeamName,
		HomeTeamCity: req.HomeTeamCity,
		AwayTeamName: req.AwayTeamName,
		AwayTeamCity: req.AwayTeamCity,
		SportName:    req.SportName,
	})
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			h.logger.WithError(err).Error("CreateEvent failed")
		}
		replyError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"event_id": id})
}

// UpdateEvent 局部更新赛事
// PUT /info/events/:id
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		replyError(c, err)
		return
	}
	var req updateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.eventService.Update(c.Request.Context(), id, service.UpdateEventInput{
		Date:         req.Date,
		Time:         req.Time,
		HomeTeamName: req.HomeTeamName,
		HomeTeamCity: req.HomeTeamCity,
		AwayTeamName: req.AwayTeamName,
		AwayTeamCity: req.AwayTeamCity,
		SportName:    req.SportName,
	}); err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			h.logger.WithError(err).Error("UpdateEvent failed")
		}
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event updated successfully"})
}

// DeleteEvent 删除赛事（不存在返回404，不做静默成功）
// DELETE /info/events/:id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		replyError(c, err)
		return
	}
	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
