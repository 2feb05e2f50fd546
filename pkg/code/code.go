// Package code defines typed status codes for service results.
// Package code 定义服务结果的类型化状态码
package code

import "fmt"

// Code typed status code carrying a numeric id and a message
// Code 类型化状态码，携带数字编号和消息
type Code struct {
	// 状态码
	code int
	// 错误消息
	msg string
	// 错误详细信息
	details []string
}

var codes = map[int]string{}

// NewError registers an error code, panics on duplicates
// NewError 注册错误码，重复时 panic
func NewError(code int, msg string) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("错误码 %d 已经存在，请更换一个", code))
	}
	codes[code] = msg
	return &Code{code: code, msg: msg}
}

// Code returns the numeric code
// Code 返回数字编号
func (e *Code) Code() int {
	return e.code
}

// Msg returns the message text
// Msg 返回消息文本
func (e *Code) Msg() string {
	return e.msg
}

// Error implements the error interface
// Error 实现 error 接口
func (e *Code) Error() string {
	return fmt.Sprintf("code %d: %s", e.code, e.msg)
}

// Is reports code equality so errors.Is matches detail-carrying copies
// Is 按编号比较，使 errors.Is 能匹配携带详情的副本
func (e *Code) Is(target error) bool {
	t, ok := target.(*Code)
	return ok && t.code == e.code
}

// WithDetails returns a copy with extra detail strings attached
// WithDetails 返回附加详情的副本
func (e *Code) WithDetails(details ...string) *Code {
	clone := *e
	clone.details = append([]string{}, e.details...)
	clone.details = append(clone.details, details...)
	return &clone
}

// Details returns the attached detail strings
// Details 返回附加的详情
func (e *Code) Details() []string {
	return e.details
}
