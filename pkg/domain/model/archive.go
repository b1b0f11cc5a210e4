/*
 * @Description: 归档级联筛选的领域对象
 * @Author: 安知鱼
 * @Date: 2025-09-05 10:30:17
 * @LastEditTime: 2025-09-24 15:08:22
 * @LastEditors: 安知鱼
 */
package model

// ArchiveSelection 表示归档页当前选中的筛选维度。
// 三个维度均可选，任意子集组合生效（AND 语义）。
type ArchiveSelection struct {
	Year     *int  // 发布年份
	Month    *int  // 发布月份 1-12
	AuthorID *uint // 作者内部ID
}

// IsZero 判断是否未选择任何维度。
func (s ArchiveSelection) IsZero() bool {
	return s.Year == nil && s.Month == nil && s.AuthorID == nil
}

// FacetOption 是筛选维度的一个可选值。
// Value 是回传给接口的原始值（年份、月份数字或作者公共ID），
// Name 是展示名（月份名称、作者昵称）。
type FacetOption struct {
	Value string `json:"value"`
	Name  string `json:"name"`
}

// ArchiveOptions 是三个筛选维度各自的合法候选值列表。
// 每个维度的候选值根据“其余两个维度”的当前选择计算得出。
type ArchiveOptions struct {
	Year   []FacetOption `json:"year"`
	Month  []FacetOption `json:"month"`
	Author []FacetOption `json:"author"`
}
