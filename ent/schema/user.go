/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 10:21:47
 * @LastEditTime: 2025-09-20 16:40:12
 * @LastEditors: 安知鱼
 */
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Annotations of the User.
func (User) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("用户(作者)表"),
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("username").
			MaxLen(50).
			Unique().
			NotEmpty().
			Comment("用户账号"),
		field.String("password_hash").
			MaxLen(255).
			NotEmpty().
			Sensitive(),
		field.String("nickname").
			MaxLen(50).
			NotEmpty().
			Comment("展示昵称，作者目录按它排序"),
		field.String("email").
			MaxLen(100).
			Unique().
			NotEmpty().
			Comment("用户邮箱，登录凭证"),
		field.String("website").
			MaxLen(255).
			Optional().
			Comment("用户个人网站"),
		field.String("avatar").
			MaxLen(255).
			Optional().
			Comment("用户头像URL"),
		field.Int("status").
			Default(1).
			Comment("用户状态 1:正常 2:未激活 3:已封禁"),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		// 一个用户可以发表多篇文章
		edge.To("posts", Post.Type),
	}
}
