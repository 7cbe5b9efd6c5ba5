package repository

import "treehole_web/internal/storage"

type Repositories struct {
	Post  PostRepository
	IPLog IPLogRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		Post:  NewPostRepository(db),
		IPLog: NewIPLogRepository(db),
	}
}
