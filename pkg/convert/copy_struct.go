// Package convert provides struct copy and conversion helpers.
// Package convert 提供结构体复制与转换辅助函数
package convert

import (
	"github.com/jinzhu/copier"
)

// StructAssign copies same-named fields from src to dst
// StructAssign 将 src 与 dst 的同名字段值复制到 dst 中
// dst 目标结构体，src 源结构体
func StructAssign(src any, dst any) any {
	copier.Copy(dst, src)
	return dst
}
