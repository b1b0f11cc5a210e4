package ent

import (
	"context"

	"github.com/anzhiyu-c/moyu-blog/pkg/domain/model"
	"github.com/anzhiyu-c/moyu-blog/pkg/domain/repository"

	"github.com/anzhiyu-c/moyu-blog/ent"
	"github.com/anzhiyu-c/moyu-blog/ent/user"
)

// entUserRepository 是 UserRepository 的 Ent 实现
type entUserRepository struct {
	client *ent.Client
}

// NewEntUserRepository 是 entUserRepository 的构造函数
func NewEntUserRepository(client *ent.Client) repository.UserRepository {
	return &entUserRepository{client: client}
}

// toDomainUser 负责将 ent.User 实体转换为 model.User 领域模型。
func toDomainUser(u *ent.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		ID:           u.ID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Nickname:     u.Nickname,
		Email:        u.Email,
		Website:      u.Website,
		Avatar:       u.Avatar,
		Status:       u.Status,
	}
}

// Create 创建用户并把数据库生成的 ID 与时间戳回填到领域模型。
func (r *entUserRepository) Create(ctx context.Context, entity *model.User) error {
	created, err := r.client.User.
		Create().
		SetUsername(entity.Username).
		SetPasswordHash(entity.PasswordHash).
		SetNickname(entity.Nickname).
		SetEmail(entity.Email).
		SetWebsite(entity.Website).
		SetAvatar(entity.Avatar).
		SetStatus(entity.Status).
		Save(ctx)
	if err != nil {
		return err
	}

	entity.ID = created.ID
	entity.CreatedAt = created.CreatedAt
	entity.UpdatedAt = created.UpdatedAt
	return nil
}

// FindByID 根据 ID 查找用户
func (r *entUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	entUser, err := r.client.User.
		Query().
		Where(user.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainUser(entUser), nil
}

// FindByIDs 批量查找用户
func (r *entUserRepository) FindByIDs(ctx context.Context, ids []uint) ([]*model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	entUsers, err := r.client.User.
		Query().
		Where(user.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	domainUsers := make([]*model.User, len(entUsers))
	for i, u := range entUsers {
		domainUsers[i] = toDomainUser(u)
	}
	return domainUsers, nil
}

// FindByUsername 按用户名查找用户
func (r *entUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	entUser, err := r.client.User.
		Query().
		Where(user.Username(username)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainUser(entUser), nil
}

// FindByEmail 按邮箱查找用户
func (r *entUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	entUser, err := r.client.User.
		Query().
		Where(user.Email(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainUser(entUser), nil
}

// List 分页查询用户列表，按昵称排序
func (r *entUserRepository) List(ctx context.Context, page, pageSize int) ([]*model.User, int, error) {
	query := r.client.User.Query()

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	q := query.Order(ent.Asc(user.FieldNickname), ent.Asc(user.FieldID))
	if page > 0 && pageSize > 0 {
		q = q.Offset((page - 1) * pageSize).Limit(pageSize)
	}

	entUsers, err := q.All(ctx)
	if err != nil {
		return nil, 0, err
	}

	domainUsers := make([]*model.User, len(entUsers))
	for i, u := range entUsers {
		domainUsers[i] = toDomainUser(u)
	}
	return domainUsers, total, nil
}
