/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 14:31:56
 * @LastEditTime: 2025-09-02 14:32:10
 * @LastEditors: 安知鱼
 */
package repository

// PageQuery 包含了所有列表查询都通用的分页参数。
type PageQuery struct {
	Page     int `form:"page" json:"page"`
	PageSize int `form:"pageSize" json:"pageSize"`
}
