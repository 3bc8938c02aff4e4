/*
 * @Description: 应用装配与生命周期管理
 * @Author: 安知鱼
 * @Date: 2025-06-28 00:21:55
 * @LastEditTime: 2025-08-31 02:58:40
 * @LastEditors: 安知鱼
 */
// qingyu-admin/cmd/server/app.go
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/qingyu-admin/internal/app/bootstrap"
	"github.com/anzhiyu-c/qingyu-admin/internal/app/listener"
	"github.com/anzhiyu-c/qingyu-admin/internal/app/middleware"
	"github.com/anzhiyu-c/qingyu-admin/internal/app/task"
	"github.com/anzhiyu-c/qingyu-admin/internal/infra/persistence/database"
	ent_impl "github.com/anzhiyu-c/qingyu-admin/internal/infra/persistence/ent"
	"github.com/anzhiyu-c/qingyu-admin/internal/infra/router"
	"github.com/anzhiyu-c/qingyu-admin/internal/pkg/event"
	"github.com/anzhiyu-c/qingyu-admin/pkg/config"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/repository"
	account_handler "github.com/anzhiyu-c/qingyu-admin/pkg/handler/account"
	state_handler "github.com/anzhiyu-c/qingyu-admin/pkg/handler/state"
	users_handler "github.com/anzhiyu-c/qingyu-admin/pkg/handler/users"
	"github.com/anzhiyu-c/qingyu-admin/pkg/idgen"
	"github.com/anzhiyu-c/qingyu-admin/pkg/service/account"
	"github.com/anzhiyu-c/qingyu-admin/pkg/service/auth"
	"github.com/anzhiyu-c/qingyu-admin/pkg/service/setting"
	"github.com/anzhiyu-c/qingyu-admin/pkg/service/state"
	"github.com/anzhiyu-c/qingyu-admin/pkg/service/useradmin"
	"github.com/anzhiyu-c/qingyu-admin/pkg/service/utility"
)

// App 结构体，用于封装应用的所有核心组件
type App struct {
	cfg        *config.Config
	engine     *gin.Engine
	scheduler  *task.Scheduler
	sqlDB      *sql.DB
	eventBus   *event.EventBus
	settingSvc setting.SettingService
	tokenSvc   auth.TokenService
	mw         *middleware.Middleware
}

// NewApp 是应用的构造函数，它执行所有的初始化和依赖注入工作
func NewApp() (*App, func(), error) {
	// --- Phase 1: 加载外部配置 ---
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}

	// --- Phase 2: 初始化基础设施 ---
	sqlDB, err := database.NewSQLDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("创建数据库连接池失败: %w", err)
	}
	entClient, err := database.NewEntClient(sqlDB, cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	// 尝试连接 Redis（如果失败，将自动降级到内存缓存）
	redisClient, err := database.NewRedisClient(context.Background(), cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("redis 初始化失败: %w", err)
	}

	eventBus := event.NewEventBus()

	cleanup := func() {
		log.Println("执行清理操作：关闭事件总线与数据库连接...")
		eventBus.Shutdown()
		sqlDB.Close()
		if redisClient != nil {
			log.Println("关闭 Redis 连接...")
			redisClient.Close()
		}
	}

	// --- Phase 3: 初始化数据仓库层 ---
	settingRepo := ent_impl.NewEntSettingRepository(entClient)
	userRepo := ent_impl.NewEntUserRepository(entClient)
	roleRepo := ent_impl.NewEntRoleRepository(entClient)
	stateRepo := ent_impl.NewEntStateRepository(entClient)

	// --- Phase 4: 初始化应用引导程序 ---
	bootstrapper := bootstrap.NewBootstrapper(entClient, roleRepo)
	if err := bootstrapper.InitializeDatabase(); err != nil {
		return nil, cleanup, fmt.Errorf("数据库初始化失败: %w", err)
	}

	// --- Phase 4.5: 初始化 ID 编码器 ---
	// IDSeed 存储在数据库中，保证对外公开ID在重启后保持稳定。
	idSeed, err := getOrCreateIDSeed(context.Background(), settingRepo, userRepo)
	if err != nil {
		return nil, cleanup, fmt.Errorf("获取 IDSeed 失败: %w", err)
	}
	if err := idgen.InitSqidsEncoderWithSeed(idSeed); err != nil {
		return nil, cleanup, fmt.Errorf("初始化 ID 编码器失败: %w", err)
	}
	log.Println("✅ ID 编码器初始化成功")

	// --- Phase 5: 初始化业务逻辑层 ---
	settingSvc := setting.NewSettingService(settingRepo, eventBus)
	if err := settingSvc.LoadAllSettings(context.Background()); err != nil {
		return nil, cleanup, fmt.Errorf("从数据库加载站点配置失败: %w", err)
	}

	// 使用智能缓存工厂，自动选择 Redis 或内存缓存
	cacheSvc := utility.NewCacheServiceWithFallback(redisClient)

	tokenSvc := auth.NewTokenService(userRepo, settingSvc, cacheSvc)
	emailSvc := utility.NewEmailService(settingSvc)
	accountSvc := account.NewService(userRepo, tokenSvc, emailSvc, eventBus)
	userAdminSvc := useradmin.NewService(userRepo, roleRepo, tokenSvc, emailSvc, eventBus)
	stateSvc := state.NewService(stateRepo)

	// 审计监听器订阅全部账户域事件
	_ = listener.NewAuditListener(eventBus)

	// 定时任务调度器
	scheduler := task.NewScheduler(userRepo)

	// --- Phase 6: 初始化表现层 (Handlers) ---
	mw := middleware.NewMiddleware(tokenSvc)
	accountHandler := account_handler.NewAccountHandler(accountSvc, tokenSvc)
	stateHandler := state_handler.NewStateHandler(stateSvc)
	usersHandler := users_handler.NewUsersHandler(userAdminSvc)

	// --- Phase 7: 初始化路由 ---
	appRouter := router.NewRouter(accountHandler, stateHandler, usersHandler, mw)

	// --- Phase 8: 配置 Gin 引擎 ---
	if cfg.GetBool(config.KeyServerDebug) {
		gin.SetMode(gin.DebugMode)
		log.Println("运行模式: Debug (Gin 将打印详细路由日志)")
	} else {
		gin.SetMode(gin.ReleaseMode)
		log.Println("运行模式: Release (Gin 启动日志已禁用)")
	}

	engine := gin.Default()
	if err := engine.SetTrustedProxies([]string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"}); err != nil {
		return nil, cleanup, fmt.Errorf("设置信任代理失败: %w", err)
	}
	engine.ForwardedByClientIP = true
	engine.Use(middleware.Cors())
	appRouter.Setup(engine)

	app := &App{
		cfg:        cfg,
		engine:     engine,
		scheduler:  scheduler,
		sqlDB:      sqlDB,
		eventBus:   eventBus,
		settingSvc: settingSvc,
		tokenSvc:   tokenSvc,
		mw:         mw,
	}

	return app, cleanup, nil
}

func (a *App) Config() *config.Config {
	return a.cfg
}

func (a *App) Engine() *gin.Engine {
	return a.engine
}

func (a *App) SettingService() setting.SettingService {
	return a.settingSvc
}

// TokenService 返回 Token 服务（用于 JWT token 生成和验证）
func (a *App) TokenService() auth.TokenService {
	return a.tokenSvc
}

// EventBus 返回事件总线，用于发布和订阅事件
func (a *App) EventBus() *event.EventBus {
	return a.eventBus
}

func (a *App) Run() error {
	a.scheduler.RegisterJobs()
	a.scheduler.Start()

	port := a.cfg.GetString(config.KeyServerPort)
	if port == "" {
		port = "8091"
	}
	fmt.Printf("应用程序启动成功，正在监听端口: %s\n", port)

	return a.engine.Run(":" + port)
}

func (a *App) Stop() {
	if a.scheduler != nil {
		a.scheduler.Stop()
		log.Println("任务调度器已停止。")
	}
}

// getOrCreateIDSeed 从数据库获取或创建 IDSeed。
// IDSeed 用于生成对外公开ID，存储在数据库中以防止被外部修改。
// 对于已有用户数据的实例，使用空字符串（默认字母表）保持已有ID可解码。
func getOrCreateIDSeed(ctx context.Context, settingRepo repository.SettingRepository, userRepo repository.UserRepository) (string, error) {
	const idSeedKey = "ID_SEED"

	existing, err := settingRepo.FindByKey(ctx, idSeedKey)
	if err != nil {
		return "", fmt.Errorf("查询 IDSeed 失败: %w", err)
	}
	if existing != nil {
		if existing.Value != "" {
			log.Println("📦 已从数据库加载 IDSeed")
		} else {
			log.Println("📦 使用兼容模式（默认字母表）")
		}
		return existing.Value, nil
	}

	userCount, err := userRepo.CountAll(ctx)
	if err != nil {
		log.Printf("警告: 无法查询用户数量: %v，假设为已有数据的升级实例", err)
		userCount = 1
	}

	var newSeed string
	if userCount > 0 {
		// 已有用户数据，使用默认字母表保持已有ID正常解码
		newSeed = ""
		log.Println("⚠️  检测到已有用户数据，使用兼容模式（默认字母表）")
	} else {
		newSeed, err = idgen.GenerateRandomSeed()
		if err != nil {
			return "", fmt.Errorf("生成随机 IDSeed 失败: %w", err)
		}
		log.Println("✅ 全新安装，已生成随机 IDSeed")
	}

	if err := settingRepo.Update(ctx, map[string]string{idSeedKey: newSeed}); err != nil {
		return "", fmt.Errorf("保存 IDSeed 到数据库失败: %w", err)
	}
	return newSeed, nil
}
