package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CheckHandler 健康检查与就绪探针
type CheckHandler struct {
	db     *gorm.DB
	logger *logrus.Logger
}

// NewCheckHandler 创建 CheckHandler
func NewCheckHandler(db *gorm.DB, logger *logrus.Logger) *CheckHandler {
	return &CheckHandler{db: db, logger: logger}
}

// Health 进程存活
// GET /health
func (h *CheckHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready 存储可用性（SELECT 1 打通才算就绪）
// GET /ready
func (h *CheckHandler) Ready(c *gin.Context) {
	var one int
	if err := h.db.WithContext(c.Request.Context()).Raw("SELECT 1").Scan(&one).Error; err != nil {
		h.logger.WithError(err).Error("readiness probe failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database not reachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
