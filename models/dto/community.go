package dto

// CreateCommunityRequest 定义了创建社区的请求数据结构
// - 名称的长度上下限由 binding 标签校验，字符集（仅字母数字下划线）在服务层用正则校验，
//   因为 validator 的内置 tag 无法表达该规则
type CreateCommunityRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=21"` // 社区名称，必填，3-21字符
	Description string `json:"description" binding:"omitempty"`      // 社区描述，可选
}
