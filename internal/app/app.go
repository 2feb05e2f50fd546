// Package app 提供应用容器，封装配置和所有依赖
package app

import (
	"context"
	"fmt"

	"github.com/haierkeys/note-desk/internal/dao"
	"github.com/haierkeys/note-desk/internal/domain"
	"github.com/haierkeys/note-desk/internal/service"
	"github.com/haierkeys/note-desk/pkg/storage"

	"go.uber.org/zap"
)

// App 应用容器，封装所有依赖和服务
type App struct {
	// 基础设施（注入的依赖）
	config *AppConfig
	logger *zap.Logger

	// Repository 层
	NoteRepo domain.NoteRepository

	// Service 层
	NoteService service.NoteService
}

// NewApp 创建应用容器实例
// 初始化所有依赖并进行依赖注入，随后从持久化存储加载笔记集合
// cfg: 应用配置（必须）
// logger: zap 日志器（必须）
func NewApp(cfg *AppConfig, logger *zap.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	a := &App{
		config: cfg,
		logger: logger,
	}

	// 初始化存储客户端
	store, err := storage.NewClient(&cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	// 初始化 DAO 与 Repository 层
	d := dao.New(store, dao.WithLogger(logger))
	a.NoteRepo = dao.NewNoteRepository(d)

	// 初始化 Service 层
	svcConfig := &service.Config{
		TitleMaxLength:   cfg.Note.TitleMaxLength,
		ContentMaxLength: cfg.Note.ContentMaxLength,
		UntitledTitle:    cfg.Note.UntitledTitle,
	}
	a.NoteService = service.NewNoteService(a.NoteRepo, svcConfig, logger)

	// 启动时加载集合
	if err := a.NoteService.Load(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}

	return a, nil
}

// Config 返回应用配置
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger 返回日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}
