// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// PostsColumns holds the columns for the "posts" table.
	PostsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 80, Comment: "文章标题"},
		{Name: "body", Type: field.TypeString, Size: 2147483647, Comment: "文章正文原文"},
		{Name: "body_html", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "由 body 解析和净化后的 HTML"},
		{Name: "pub_date", Type: field.TypeTime, Comment: "发布时间，创建后不可变更"},
		{Name: "author_id", Type: field.TypeUint, Comment: "文章作者ID，关联到users表"},
	}
	// PostsTable holds the schema information for the "posts" table.
	PostsTable = &schema.Table{
		Name:       "posts",
		Comment:    "文章表",
		Columns:    PostsColumns,
		PrimaryKey: []*schema.Column{PostsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "posts_users_posts",
				Columns:    []*schema.Column{PostsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "post_pub_date",
				Unique:  false,
				Columns: []*schema.Column{PostsColumns[6]},
			},
			{
				Name:    "post_author_id_pub_date",
				Unique:  false,
				Columns: []*schema.Column{PostsColumns[7], PostsColumns[6]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Unique: true, Size: 50, Comment: "用户账号"},
		{Name: "password_hash", Type: field.TypeString, Size: 255},
		{Name: "nickname", Type: field.TypeString, Size: 50, Comment: "展示昵称，作者目录按它排序"},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 100, Comment: "用户邮箱，登录凭证"},
		{Name: "website", Type: field.TypeString, Nullable: true, Size: 255, Comment: "用户个人网站"},
		{Name: "avatar", Type: field.TypeString, Nullable: true, Size: 255, Comment: "用户头像URL"},
		{Name: "status", Type: field.TypeInt, Comment: "用户状态 1:正常 2:未激活 3:已封禁", Default: 1},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Comment:    "用户(作者)表",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PostsTable,
		UsersTable,
	}
)

func init() {
	PostsTable.ForeignKeys[0].RefTable = UsersTable
}
