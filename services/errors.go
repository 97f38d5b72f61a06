// file: services/errors.go
package services

import "errors"

// 业务错误，由 controller 统一翻译为响应码。
// 这些都是调用方输入错误，服务层不做内部重试。
var (
	ErrNotFound          = errors.New("record not found")
	ErrConflictingRename = errors.New("old and new values are identical")
)

// ValidationError 表示题目未通过结构校验
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "question is not valid: " + e.Reason
}
