package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/zhakhand/sport-calendar-backend/internal/repository"
	"github.com/zhakhand/sport-calendar-backend/internal/service"
)

// TeamHandler 球队相关接口
type TeamHandler struct {
	teamService *service.TeamService
	logger      *logrus.Logger
}

// NewTeamHandler 创建 TeamHandler
func NewTeamHandler(db *gorm.DB, logger *logrus.Logger) *TeamHandler {
	repo := repository.NewTeamRepository(db)
	svc := service.NewTeamService(repo, logger)
	return &TeamHandler{teamService: svc, logger: logger}
}

// ListTeams 全部球队
// GET /info/teams
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.List(c.Request.Context())
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// GetTeamByID 按ID查球队
// GET /info/teams/:teamId
func (h *TeamHandler) GetTeamByID(c *gin.Context) {
	id, err := parseID(c, "teamId")
	if err != nil {
		replyError(c, err)
		return
	}
	team, err := h.teamService.GetByID(c.Request.Context(), id)
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// SearchTeamsByName 按名称子串查球队
// GET /info/teams/search/name/:teamName
func (h *TeamHandler) SearchTeamsByName(c *gin.Context) {
	teams, err := h.teamService.SearchByName(c.Request.Context(), c.Param("teamName"))
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// SearchTeamsByCity 按城市子串查球队
// GET /info/teams/search/city/:cityName
func (h *TeamHandler) SearchTeamsByCity(c *gin.Context) {
	teams, err := h.teamService.SearchByCity(c.Request.Context(), c.Param("cityName"))
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// AddTeam 直接创建球队；(name, city) 已存在返回409
// POST /info/teams
func (h *TeamHandler) AddTeam(c *gin.Context) {
	var req struct {
		TeamName string `json:"team_name"`
		TeamCity string `json:"team_city"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	id, err := h.teamService.Add(c.Request.Context(), req.TeamName, req.TeamCity)
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			h.logger.WithError(err).Error("AddTeam failed")
		}
		replyError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Team added successfully", "team_id": id})
}
