/*
 * @Description: 演示数据填充工具，创建几个假账号和一批文章
 * @Author: 安知鱼
 * @Date: 2025-09-18 14:50:22
 * @LastEditTime: 2025-10-09 10:05:41
 * @LastEditors: 安知鱼
 */
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/anzhiyu-c/moyu-blog/internal/infra/persistence/database"
	ent_impl "github.com/anzhiyu-c/moyu-blog/internal/infra/persistence/ent"
	"github.com/anzhiyu-c/moyu-blog/internal/pkg/parser"
	"github.com/anzhiyu-c/moyu-blog/internal/pkg/security"
	"github.com/anzhiyu-c/moyu-blog/pkg/config"
	"github.com/anzhiyu-c/moyu-blog/pkg/domain/model"
	"github.com/anzhiyu-c/moyu-blog/pkg/domain/repository"
)

// maxSeededPosts 超过这个数量就不再填充，防止反复执行把数据库塞爆。
const maxSeededPosts = 60

type seedUser struct {
	Email    string
	Password string
	Nickname string
	Username string
}

// 刻意使用很长的邮箱，降低与真实注册用户撞车的概率。
var seedUsers = []seedUser{
	{Email: "fakeemailreserved@example.com", Password: "password", Nickname: "Joe", Username: "joe"},
	{Email: "anotherlongfakeemail@example.com", Password: "password", Nickname: "Sawyer", Username: "sawyer"},
	{Email: "longemailsaretheworst@example.com", Password: "password", Nickname: "Danielle", Username: "danielle"},
}

var seedBodies = []string{
	"Iis repugnemus perficitur dei persuadere dum praesertim familiarem quodcumqu",
	"reliqui ut vigilia mo at ostendi. Ut re vero unde soni ex ac solo. Quicquam temporis physicae ex ex co. Gi quibusnam perceptio ad ac industria persuasum eminenter. Male vi eram quin ha ii ad modo inde. Nos via probentur obversari ope opportune. Ea de animam iisdem juncta.",
	"Ita dependent productus dat simplicia uno. Aciem corpo ",
	"Re invenerunt transferre imbecillia prosecutus de dissolvant gi occasionem. Obstat ferant suo multae putavi quodam partes sit hoc. Sed ope sex ero conemur aliq",
	"Ipso in utor et sine. Tum hic agnosco proprie illarum cum agendam efficta mem creatum",
	"Expectem decipior eam abducere doctrina ero habuimus sae cavendum. Tractatu admittit ut de cavendum occurrit invenero co alicujus. Re invenerunt transferre imbecillia prosecutus de dissolvant gi occasionem. Obstat ferant suo multae putavi quodam partes sit hoc",
	"Quaslibet meditatio meo libertate ens praeditis. Uti otii nam hac dei haud alia deus. Deinde realem falsae statim usu rantem hos inquam dei.",
	"Dari boni co vi anno. Extitisse tantumdem abstinere formantur dat suspicari mea est",
	"Evidentius aliquoties at si perficitur de expectabam deceperunt. Sae tot dominum dicimus futurus divelli. Sex qui quales aptior tamque hic. ",
	"Quantumvis persuadeam ha se ut credidique ac integritas",
	"Alterius addamque ea gi fingerem sequatur sessione is credendi.",
	"Ea an istis vetus demus. Divinae videmur ubi proinde una cum rei. Pappo et ideae summa longa locis to.",
	"Extitisse tantumdem abstinere formantur dat suspicari mea est. Novi vel has fal sine dat etsi",
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("填充演示数据失败: %v", err)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("初始化配置失败: %w", err)
	}

	sqlDB, err := database.NewSQLDB(cfg)
	if err != nil {
		return fmt.Errorf("初始化数据库连接失败: %w", err)
	}
	defer sqlDB.Close()

	entClient, err := database.NewEntClient(sqlDB, cfg)
	if err != nil {
		return fmt.Errorf("初始化 Ent 客户端失败: %w", err)
	}
	defer entClient.Close()

	userRepo := ent_impl.NewEntUserRepository(entClient)
	postRepo := ent_impl.NewPostRepo(entClient, cfg.GetString(config.KeyDBType))

	postCount, err := postRepo.Count(ctx, model.ArchiveSelection{})
	if err != nil {
		return fmt.Errorf("统计文章数失败: %w", err)
	}
	if postCount > maxSeededPosts {
		log.Printf("文章数已达 %d 篇，超过上限 %d，跳过填充。", postCount, maxSeededPosts)
		return nil
	}

	authors, err := ensureUsers(ctx, userRepo)
	if err != nil {
		return err
	}

	// 每篇文章的发布时间依次回退14天，让归档页有跨年份/月份的数据可看。
	now := time.Now().UTC()
	for idx, body := range seedBodies {
		author := authors[idx%len(authors)]
		title := fmt.Sprintf("Post Number %d", postCount+idx+1)

		bodyHTML, err := parser.MarkdownToHTML(body)
		if err != nil {
			return fmt.Errorf("渲染文章 %q 失败: %w", title, err)
		}

		if _, err := postRepo.Create(ctx, &model.CreatePostParams{
			Title:    title,
			Body:     body,
			BodyHTML: bodyHTML,
			PubDate:  now.Add(-time.Duration(idx) * 14 * 24 * time.Hour),
			AuthorID: author.ID,
		}); err != nil {
			return fmt.Errorf("写入文章 %q 失败: %w", title, err)
		}
	}

	log.Printf("✅ 演示数据填充完成：%d 个账号，%d 篇文章。", len(authors), len(seedBodies))
	return nil
}

// ensureUsers 按邮箱幂等地创建演示账号，返回全部账号（含已存在的）。
func ensureUsers(ctx context.Context, userRepo repository.UserRepository) ([]*model.User, error) {
	authors := make([]*model.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		existing, err := userRepo.FindByEmail(ctx, su.Email)
		if err != nil {
			return nil, fmt.Errorf("查询演示账号失败: %w", err)
		}
		if existing != nil {
			authors = append(authors, existing)
			continue
		}

		passwordHash, err := security.HashPassword(su.Password)
		if err != nil {
			return nil, fmt.Errorf("生成密码哈希失败: %w", err)
		}
		u := &model.User{
			Username:     su.Username,
			Nickname:     su.Nickname,
			Email:        su.Email,
			PasswordHash: passwordHash,
			Status:       model.UserStatusActive,
		}
		if err := userRepo.Create(ctx, u); err != nil {
			return nil, fmt.Errorf("创建演示账号 %s 失败: %w", su.Email, err)
		}
		log.Printf("已创建演示账号: %s (%s)", su.Nickname, su.Email)
		authors = append(authors, u)
	}
	return authors, nil
}
