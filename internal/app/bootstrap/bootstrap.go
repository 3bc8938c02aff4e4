// internal/app/bootstrap/bootstrap.go
package bootstrap

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/anzhiyu-c/qingyu-admin/ent"
	"github.com/anzhiyu-c/qingyu-admin/ent/setting"
	"github.com/anzhiyu-c/qingyu-admin/internal/configdef"
	"github.com/anzhiyu-c/qingyu-admin/internal/pkg/utils"
	"github.com/anzhiyu-c/qingyu-admin/pkg/constant"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/model"
	"github.com/anzhiyu-c/qingyu-admin/pkg/domain/repository"
)

type Bootstrapper struct {
	entClient *ent.Client
	roleRepo  repository.RoleRepository
}

func NewBootstrapper(entClient *ent.Client, roleRepo repository.RoleRepository) *Bootstrapper {
	return &Bootstrapper{
		entClient: entClient,
		roleRepo:  roleRepo,
	}
}

func (b *Bootstrapper) InitializeDatabase() error {
	log.Println("--- 开始执行数据库初始化引导程序 ---")

	if err := b.entClient.Schema.Create(context.Background()); err != nil {
		return fmt.Errorf("数据库 schema 创建/更新失败: %w", err)
	}
	log.Println("--- 数据库 Schema 同步成功 ---")

	b.syncSettings()
	b.initRoles()
	b.initStates()
	b.checkUserTable()

	log.Println("--- 数据库初始化引导程序执行完成 ---")
	return nil
}

// syncSettings 检查并同步配置项，确保所有在代码中定义的配置项都存在于数据库中。
func (b *Bootstrapper) syncSettings() {
	log.Println("--- 开始同步站点配置 (Setting 表)... ---")
	ctx := context.Background()
	newlyAdded := 0

	for _, def := range configdef.AllSettings {
		exists, err := b.entClient.Setting.Query().Where(setting.ConfigKey(def.Key.String())).Exist(ctx)
		if err != nil {
			log.Printf("⚠️ 失败: 查询配置项 '%s' 失败: %v", def.Key, err)
			continue
		}
		if exists {
			continue
		}

		value := def.Value
		// JWT 签名密钥首次启动时随机生成
		if def.Key == constant.KeyJWTSecret {
			value, _ = utils.GenerateRandomString(32)
		}

		// 检查环境变量覆盖
		envKey := "QINGYU_SETTING_DEFAULT_" + strings.ToUpper(string(def.Key))
		if envValue, ok := os.LookupEnv(envKey); ok {
			value = envValue
			log.Printf("    - 配置项 '%s' 由环境变量覆盖。", def.Key)
		}

		_, createErr := b.entClient.Setting.Create().
			SetConfigKey(def.Key.String()).
			SetValue(value).
			SetComment(def.Comment).
			Save(ctx)
		if createErr != nil {
			log.Printf("⚠️ 失败: 新增默认配置项 '%s' 失败: %v", def.Key, createErr)
		} else {
			newlyAdded++
		}
	}

	if newlyAdded > 0 {
		log.Printf("--- 站点配置同步完成，共新增 %d 个配置项。---", newlyAdded)
	} else {
		log.Println("--- 站点配置同步完成，无需新增配置项。---")
	}
}

// initRoles 确保系统内置角色存在。
func (b *Bootstrapper) initRoles() {
	log.Println("--- 开始初始化内置角色 (Role 表) ---")
	ctx := context.Background()
	for _, name := range []string{model.RoleAdmin, model.RoleUser} {
		if _, err := b.roleRepo.EnsureExists(ctx, name); err != nil {
			log.Printf("⚠️ 失败: 初始化角色 '%s' 失败: %v", name, err)
		}
	}
	log.Println("--- 内置角色初始化完成。---")
}

// initStates 在州表为空时写入 50 个州的参考数据。
func (b *Bootstrapper) initStates() {
	log.Println("--- 开始初始化州参考数据 (State 表) ---")
	ctx := context.Background()

	count, err := b.entClient.State.Query().Count(ctx)
	if err != nil {
		log.Printf("⚠️ 失败: 查询州数量失败: %v", err)
		return
	}
	if count > 0 {
		log.Println("--- 州表已存在数据，跳过初始化。---")
		return
	}

	bulk := make([]*ent.StateCreate, 0, len(defaultStates))
	for _, s := range defaultStates {
		bulk = append(bulk, b.entClient.State.Create().
			SetName(s.name).
			SetAbbreviation(s.abbreviation))
	}
	if _, err := b.entClient.State.CreateBulk(bulk...).Save(ctx); err != nil {
		log.Printf("⚠️ 失败: 写入州参考数据失败: %v", err)
		return
	}
	log.Printf("--- 州参考数据初始化完成，共写入 %d 条。---", len(defaultStates))
}

func (b *Bootstrapper) checkUserTable() {
	ctx := context.Background()
	userCount, err := b.entClient.User.Query().Count(ctx)
	if err != nil {
		log.Printf("❌ 错误: 查询 User 表记录数量失败: %v", err)
	} else if userCount == 0 {
		log.Println("User 表为空，第一个注册的用户将成为管理员。")
	}
}

// defaultStates 是美国 50 个州的种子数据。
var defaultStates = []struct {
	name         string
	abbreviation string
}{
	{"Alabama", "AL"},
	{"Alaska", "AK"},
	{"Arizona", "AZ"},
	{"Arkansas", "AR"},
	{"California", "CA"},
	{"Colorado", "CO"},
	{"Connecticut", "CT"},
	{"Delaware", "DE"},
	{"Florida", "FL"},
	{"Georgia", "GA"},
	{"Hawaii", "HI"},
	{"Idaho", "ID"},
	{"Illinois", "IL"},
	{"Indiana", "IN"},
	{"Iowa", "IA"},
	{"Kansas", "KS"},
	{"Kentucky", "KY"},
	{"Louisiana", "LA"},
	{"Maine", "ME"},
	{"Maryland", "MD"},
	{"Massachusetts", "MA"},
	{"Michigan", "MI"},
	{"Minnesota", "MN"},
	{"Mississippi", "MS"},
	{"Missouri", "MO"},
	{"Montana", "MT"},
	{"Nebraska", "NE"},
	{"Nevada", "NV"},
	{"New Hampshire", "NH"},
	{"New Jersey", "NJ"},
	{"New Mexico", "NM"},
	{"New York", "NY"},
	{"North Carolina", "NC"},
	{"North Dakota", "ND"},
	{"Ohio", "OH"},
	{"Oklahoma", "OK"},
	{"Oregon", "OR"},
	{"Pennsylvania", "PA"},
	{"Rhode Island", "RI"},
	{"South Carolina", "SC"},
	{"South Dakota", "SD"},
	{"Tennessee", "TN"},
	{"Texas", "TX"},
	{"Utah", "UT"},
	{"Vermont", "VT"},
	{"Virginia", "VA"},
	{"Washington", "WA"},
	{"West Virginia", "WV"},
	{"Wisconsin", "WI"},
	{"Wyoming", "WY"},
}
