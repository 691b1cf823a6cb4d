package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/zhakhand/sport-calendar-backend/internal/repository"
	"github.com/zhakhand/sport-calendar-backend/internal/service"
)

// SportHandler 体育项目相关接口
type SportHandler struct {
	sportService *service.SportService
	logger       *logrus.Logger
}

// NewSportHandler 创建 SportHandler
func NewSportHandler(db *gorm.DB, logger *logrus.Logger) *SportHandler {
	repo := repository.NewSportRepository(db)
	svc := service.NewSportService(repo, logger)
	return &SportHandler{sportService: svc, logger: logger}
}

// ListSports 全部体育项目
// GET /info/sports
func (h *SportHandler) ListSports(c *gin.Context) {
	sports, err := h.sportService.List(c.Request.Context())
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, sports)
}

// AddSport 直接创建体育项目；重名返回409
// POST /info/sports
func (h *SportHandler) AddSport(c *gin.Context) {
	var req struct {
		SportName string `json:"sport_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	id, err := h.sportService.Add(c.Request.Context(), req.SportName)
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			h.logger.WithError(err).Error("AddSport failed")
		}
		replyError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Sport added successfully", "sport_id": id})
}
