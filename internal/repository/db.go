package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Connect 建立 MongoDB 连接并通过 ping 验证可用性
func Connect(ctx context.Context, uri, database string) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("数据库 ping 失败: %w", err)
	}

	return client, client.Database(database), nil
}

// Repositories 仓库集合
type Repositories struct {
	User  *UserRepository
	Media *MediaRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		User:  NewUserRepository(db),
		Media: NewMediaRepository(db),
	}
}

// EnsureIndexes 创建必要的索引
func (r *Repositories) EnsureIndexes(ctx context.Context) error {
	return r.User.EnsureIndexes(ctx)
}
