/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 10:25:30
 * @LastEditTime: 2025-09-21 19:03:55
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
	"entgo.io/ent/schema/index"
)

// Post holds the schema definition for the Post entity.
type Post struct {
	ent.Schema
}

// Annotations of the Post.
func (Post) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("文章表"),
	}
}

// Fields of the Post.
func (Post) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("title").
			MaxLen(80).
			NotEmpty().
			Comment("文章标题"),
		field.Text("body").
			NotEmpty().
			Comment("文章正文原文"),
		field.Text("body_html").
			Optional().
			Comment("由 body 解析和净化后的 HTML"),
		field.Time("pub_date").
			Default(time.Now).
			Immutable().
			Comment("发布时间，创建后不可变更"),
		field.Uint("author_id").
			Comment("文章作者ID，关联到users表"),
	}
}

// Edges of the Post.
func (Post) Edges() []ent.Edge {
	return []ent.Edge{
		// 一篇文章属于唯一的一个作者
		edge.From("author", User.Type).
			Ref("posts").
			Field("author_id").
			Unique().
			Required(),
	}
}

// Indexes of the Post.
func (Post) Indexes() []ent.Index {
	return []ent.Index{
		// 首页与归档都按发布时间倒序扫描
		index.Fields("pub_date"),
		index.Fields("author_id", "pub_date"),
	}
}
