package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/zhakhand/sport-calendar-backend/internal/api"
	"github.com/zhakhand/sport-calendar-backend/internal/config"
	"github.com/zhakhand/sport-calendar-backend/internal/repository"
)

// ensureDataDir 数据库文件所在目录不存在时先创建（幂等）。
// dsn 形如 ./data/database.db?_foreign_keys=on
func ensureDataDir(dsn string) error {
	path := dsn
	if idx := strings.Index(path, "?"); idx >= 0 {
		path = path[:idx]
	}
	path = strings.TrimSpace(path)
	if path == "" || strings.HasPrefix(path, "file::memory:") || path == ":memory:" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func main() {
	// 1. 加载配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("加载配置文件失败: %v", err)
	}

	// 2. 初始化日志
	logrusLogger := logrus.New()
	logrusLogger.SetLevel(logrus.InfoLevel)
	logrusLogger.Info("配置文件加载成功")

	// 3. 初始化GORM日志器
	gormLogger := logger.Default.LogMode(logger.Info) // 显示SQL日志（Info级别）

	// 4. 初始化 SQLite 连接（目录不存在则先建目录再连）
	if err := ensureDataDir(cfg.SQLite.DSN); err != nil {
		logrusLogger.Fatalf("创建数据目录失败: %v", err)
	}
	// TranslateError: 唯一约束冲突统一转成 gorm.ErrDuplicatedKey
	db, err := gorm.Open(sqlite.Open(cfg.SQLite.DSN), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		logrusLogger.Fatalf("连接SQLite失败: %v", err)
	}
	logrusLogger.Infof("SQLite连接成功: %s", cfg.SQLite.DSN)

	// 5. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		logrusLogger.Fatalf("获取SQL DB失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(cfg.SQLite.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.SQLite.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.SQLite.ConnMaxLifetime)

	// 6. 库表不存在则自动创建（按外键依赖顺序迁移）；失败不允许继续对外服务
	if err := repository.Migrate(db); err != nil {
		logrusLogger.Fatalf("数据库表结构迁移失败: %v", err)
	}
	logrusLogger.Info("数据库表结构检查完成（不存在则已创建）")
	if cfg.Seed {
		if err := repository.Seed(db); err != nil {
			logrusLogger.Fatalf("填充初始数据失败: %v", err)
		}
	}

	// 7. 配置Gin运行模式（从配置读取：debug/release）
	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()
	r.Use(api.RequestID(logrusLogger))

	// 注册pprof 方便调试和监测性能问题
	pprof.Register(r)
	logrusLogger.Infof("Gin运行模式: %s", cfg.Server.Mode)

	// 8. 注册API路由
	checkHandler := api.NewCheckHandler(db, logrusLogger)
	r.GET("/health", checkHandler.Health)
	r.GET("/ready", checkHandler.Ready)

	eventHandler := api.NewEventHandler(db, logrusLogger)
	r.GET("/info/events", eventHandler.ListEvents)
	r.GET("/info/events/search/date/:date", eventHandler.SearchByDate)
	r.GET("/info/events/search/location/:location", eventHandler.SearchByLocation)
	r.GET("/info/events/search/team/:teamName", eventHandler.SearchByTeam)
	r.GET("/info/events/search/sportId/:sportId", eventHandler.SearchBySportID)
	r.GET("/info/events/search/sportName/:sportName", eventHandler.SearchBySportName)
	r.GET("/info/events/search/specific", eventHandler.SearchSpecific)
	r.GET("/info/events/:id", eventHandler.GetEventByID)
	r.POST("/info/events", eventHandler.CreateEvent)
	r.PUT("/info/events/:id", eventHandler.UpdateEvent)
	r.DELETE("/info/events/:id", eventHandler.DeleteEvent)

	teamHandler := api.NewTeamHandler(db, logrusLogger)
	r.GET("/info/teams", teamHandler.ListTeams)
	r.GET("/info/teams/search/name/:teamName", teamHandler.SearchTeamsByName)
	r.GET("/info/teams/search/city/:cityName", teamHandler.SearchTeamsByCity)
	r.GET("/info/teams/:teamId", teamHandler.GetTeamByID)
	r.POST("/info/teams", teamHandler.AddTeam)

	sportHandler := api.NewSportHandler(db, logrusLogger)
	r.GET("/info/sports", sportHandler.ListSports)
	r.POST("/info/sports", sportHandler.AddSport)

	// 9. 启动服务（带优雅退出：收到信号后先停HTTP再关库）
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}
	go func() {
		logrusLogger.Infof("服务启动成功，端口：%d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrusLogger.Fatalf("启动服务失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrusLogger.Info("收到退出信号，开始关闭…")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrusLogger.Errorf("HTTP关闭失败: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		logrusLogger.Errorf("关闭数据库失败: %v", err)
	}
	logrusLogger.Info("服务已退出")
}
