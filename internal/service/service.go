package service

import (
	"treehole_web/internal/repository"
	"treehole_web/internal/validator"
	"treehole_web/pkg/config"
)

type Services struct {
	Post *PostService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	v := validator.New(cfg.Moderation.Denylist)
	postService := NewPostService(repos.Post, repos.IPLog, v,
		cfg.RateLimit.MaxPerWindow, cfg.RateLimit.Window())

	return &Services{
		Post: postService,
	}
}
