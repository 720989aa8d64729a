package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/creatorpage/internal/config"
	"github.com/creatorpage/internal/db"
	"github.com/creatorpage/internal/service"
	"gorm.io/gorm/logger"
)

// 示例数据生成器，所有写入都经过目录服务的校验
func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("配置读取失败:", err)
	}

	// 初始化数据库
	gdb, err := db.Open(db.Options{Driver: cfg.Database.Driver, DSN: cfg.Database.DSN, LogLevel: logger.Warn})
	if err != nil {
		log.Fatal("数据库初始化失败:", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal("数据库迁移失败:", err)
	}

	ctx := context.Background()
	directory := service.NewDirectory(gdb)

	existing, err := directory.SocialLinks.ListActive(ctx)
	if err != nil {
		log.Fatal("读取社交链接失败:", err)
	}
	if len(existing) > 0 {
		fmt.Println("已存在社交链接，跳过示例数据")
		return
	}

	fmt.Println("开始生成示例数据...")

	seedSocialLinks(ctx, directory)
	seedBrands(ctx, directory)
	seedSiteContent(ctx, directory)

	fmt.Println("示例数据生成完成！")
}

func seedSocialLinks(ctx context.Context, directory *service.Directory) {
	links := []struct {
		platform string
		username string
		url      string
	}{
		{"twitch", "swaybaechaos", "https://twitch.tv/swaybaechaos"},
		{"youtube", "Sway Bae", "https://youtube.com/@swaybaechaos"},
		{"tiktok", "@swaybaechaos", "https://tiktok.com/@swaybaechaos"},
		{"x", "@swaybaechaos", "https://x.com/swaybaechaos"},
		{"bluesky", "swaybaechaos", "https://bsky.app/profile/swaybaechaos"},
		{"discord", "Chaos Crew", "https://discord.gg/swaybaechaos"},
	}

	for i, link := range links {
		order := i + 1
		if _, err := directory.SocialLinks.Create(ctx, service.CreateSocialLinkInput{
			Platform:     link.platform,
			Username:     link.username,
			URL:          link.url,
			DisplayOrder: &order,
		}); err != nil {
			log.Fatalf("创建社交链接 %s 失败: %v", link.platform, err)
		}
	}
	fmt.Printf("社交链接: %d 条\n", len(links))
}

func seedBrands(ctx context.Context, directory *service.Directory) {
	brands := []struct {
		name     string
		website  string
		category string
	}{
		{"YouTube", "https://youtube.com", "platform"},
		{"GCX", "https://gcxevent.com", "sponsor"},
		{"Twitch", "https://twitch.tv", "platform"},
	}

	for i, brand := range brands {
		order := i + 1
		website := brand.website
		category := brand.category
		if _, err := directory.Brands.Create(ctx, service.CreateBrandInput{
			Name:            brand.name,
			LogoURL:         fmt.Sprintf("https://via.placeholder.com/120x60?text=%s", brand.name),
			WebsiteURL:      &website,
			PartnershipType: &category,
			DisplayOrder:    &order,
		}); err != nil {
			log.Fatalf("创建合作品牌 %s 失败: %v", brand.name, err)
		}
	}
	fmt.Printf("合作品牌: %d 个\n", len(brands))
}

func seedSiteContent(ctx context.Context, directory *service.Directory) {
	html := db.ContentTypeHTML
	items := []service.CreateSiteContentInput{
		{Section: "hero", Key: "title", Value: "Sway Bae"},
		{Section: "hero", Key: "tagline", Value: "Chaos, games and good vibes"},
		{Section: "about", Key: "bio", Value: "<p>Variety streamer and community builder.</p>", ContentType: &html},
	}

	for _, item := range items {
		if _, err := directory.SiteContent.Create(ctx, item); err != nil {
			log.Fatalf("创建内容 %s.%s 失败: %v", item.Section, item.Key, err)
		}
	}
	fmt.Printf("站点内容: %d 条\n", len(items))
}
