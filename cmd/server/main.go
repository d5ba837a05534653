package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/IsabelaBoudoux/Sail1/internal/config"
	"github.com/IsabelaBoudoux/Sail1/internal/handler"
	"github.com/IsabelaBoudoux/Sail1/internal/model"
	"github.com/IsabelaBoudoux/Sail1/internal/router"
	"github.com/IsabelaBoudoux/Sail1/internal/service"
	clubsession "github.com/IsabelaBoudoux/Sail1/internal/session"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	db, err := openDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Province{},
		&model.Member{},
		&model.BoatType{},
		&model.ClubTask{},
		&model.FeeStructure{},
		&model.MembershipType{},
		&model.Membership{},
	); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	if err := seedReferenceData(db); err != nil {
		log.Fatalf("seed reference data: %v", err)
	}

	// Services
	feeCalc := service.NewFeeCalculator(db)
	memberService := service.NewMemberService(db)
	boatTypeService := service.NewBoatTypeService(db)
	taskService := service.NewClubTaskService(db)
	feeService := service.NewFeeStructureService(db)
	membershipService := service.NewMembershipService(db, feeCalc)
	refService := service.NewReferenceService(db)

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.SetFuncMap(handler.TemplateFuncs())
	r.LoadHTMLGlob(cfg.Server.TemplateGlob)

	store := sessionStore(cfg.Session)
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAge,
		HttpOnly: true,
	})
	r.Use(sessions.Sessions(cfg.Session.Name, store))

	router.Setup(r, router.Deps{
		HomeHandler:         handler.NewHomeHandler(),
		MemberHandler:       handler.NewMemberHandler(memberService, refService),
		BoatTypeHandler:     handler.NewBoatTypeHandler(boatTypeService),
		ClubTaskHandler:     handler.NewClubTaskHandler(taskService),
		FeeStructureHandler: handler.NewFeeStructureHandler(feeService),
		MembershipHandler:   handler.NewMembershipHandler(membershipService, memberService, refService),
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	slog.Info("listening", "addr", addr, "driver", cfg.Database.Driver)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func openDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	switch cfg.Driver {
	case "mysql":
		return gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	case "postgres":
		return gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DSN()), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func sessionStore(cfg config.SessionConfig) sessions.Store {
	if cfg.Store == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return clubsession.NewRedisStore(client, []byte(cfg.Secret))
	}
	return cookie.NewStore([]byte(cfg.Secret))
}

// seedReferenceData fills the read-only lookup tables on first start.
// Nothing in the application writes to them afterwards.
func seedReferenceData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Province{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		provinces := []model.Province{
			{ProvinceCode: "AB", Name: "Alberta"},
			{ProvinceCode: "BC", Name: "British Columbia"},
			{ProvinceCode: "MB", Name: "Manitoba"},
			{ProvinceCode: "NB", Name: "New Brunswick"},
			{ProvinceCode: "NL", Name: "Newfoundland and Labrador"},
			{ProvinceCode: "NS", Name: "Nova Scotia"},
			{ProvinceCode: "NT", Name: "Northwest Territories"},
			{ProvinceCode: "NU", Name: "Nunavut"},
			{ProvinceCode: "ON", Name: "Ontario"},
			{ProvinceCode: "PE", Name: "Prince Edward Island"},
			{ProvinceCode: "QC", Name: "Quebec"},
			{ProvinceCode: "SK", Name: "Saskatchewan"},
			{ProvinceCode: "YT", Name: "Yukon"},
		}
		if err := db.Create(&provinces).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&model.MembershipType{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		types := []model.MembershipType{
			{MembershipTypeName: "Full", RatioToFull: 1.0},
			{MembershipTypeName: "Senior", RatioToFull: 0.9},
			{MembershipTypeName: "Associate", RatioToFull: 0.75},
			{MembershipTypeName: "Student", RatioToFull: 0.5},
			{MembershipTypeName: "Junior", RatioToFull: 0.4},
		}
		if err := db.Create(&types).Error; err != nil {
			return err
		}
	}
	return nil
}
