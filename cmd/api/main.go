package main

import (
	"context"
	"errors"
	"log"

	"communityhub/internal/config"
	"communityhub/internal/handler"
	"communityhub/internal/model"
	"communityhub/internal/pkg"
	"communityhub/internal/repository/mysql"
	"communityhub/internal/repository/redis"
	"communityhub/internal/router"
	"communityhub/internal/service"

	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()
	pkg.AccessSecret = []byte(cfg.JWTSecret)

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		panic(err)
	}

	if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		panic(err)
	}
	defer redis.Close()

	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Role{},
		&model.Community{},
		&model.Member{},
		&model.MembershipOutbox{},
	); err != nil {
		panic(err)
	}

	userRepo := &mysql.UserRepository{DB: mysql.DB}
	roleRepo := &mysql.RoleRepository{DB: mysql.DB}
	communityRepo := &mysql.CommunityRepository{DB: mysql.DB}
	memberRepo := &mysql.MemberRepository{DB: mysql.DB}
	outboxRepo := &mysql.OutboxRepository{DB: mysql.DB}
	sessionRepo := &redis.SessionRepository{}

	if err := seedRoles(context.Background(), roleRepo); err != nil {
		panic(err)
	}

	// Membership events go to kafka when brokers are configured, otherwise
	// to the log.
	sender := service.Sender(service.LogSender)
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		})
		if err != nil {
			panic(err)
		}
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.NewOutboxRelayer(outboxRepo, sender).Run(ctx)

	var mailer service.Mailer
	if cfg.SMTP.Host != "" {
		mailer = pkg.NewSMTPMailer(cfg.SMTP)
	}

	userSvc := service.NewUserService(userRepo, sessionRepo, mailer)
	roleSvc := service.NewRoleService(roleRepo)
	communitySvc := service.NewCommunityService(communityRepo, roleRepo)
	memberSvc := service.NewMemberService(memberRepo, communityRepo, userRepo, roleRepo)

	r := router.InitRouter(
		handler.NewAuthHandler(userSvc),
		handler.NewRoleHandler(roleSvc),
		handler.NewCommunityHandler(communitySvc, memberSvc),
		handler.NewMemberHandler(memberSvc),
	)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

// seedRoles makes sure the role names the membership checks depend on exist.
func seedRoles(ctx context.Context, repo *mysql.RoleRepository) error {
	for _, name := range []string{model.RoleCommunityAdmin, model.RoleCommunityModerator} {
		_, err := repo.FindByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		id, err := pkg.NewID()
		if err != nil {
			return err
		}
		if err := repo.Create(ctx, &model.Role{ID: id, Name: name}); err != nil {
			return err
		}
	}
	return nil
}
