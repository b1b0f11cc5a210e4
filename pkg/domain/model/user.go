/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 14:02:26
 * @LastEditTime: 2025-09-22 11:40:53
 * @LastEditors: 安知鱼
 */
package model

import "time"

// 用户状态常量定义了用户的几种不同状态
const (
	UserStatusActive   = 1
	UserStatusInactive = 2
	UserStatusBanned   = 3
)

// User 是用户(作者)的核心领域模型。
type User struct {
	ID           uint      `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Nickname     string    `json:"nickname"`
	Email        string    `json:"email"`
	Website      string    `json:"website"`
	Avatar       string    `json:"avatar"`
	Status       int       `json:"status"`
}

// AuthorInfo 是作者目录条目：用户信息加上已发表文章数。
type AuthorInfo struct {
	User      *User
	PostCount int
}
