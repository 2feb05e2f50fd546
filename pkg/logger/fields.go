package logger

// 统一的日志字段命名常量
// 用于确保整个项目中日志字段命名的一致性，便于日志查询和分析
const (
	// FieldNoteID 笔记 ID 字段
	FieldNoteID = "noteId"

	// FieldAction 操作类型字段
	FieldAction = "action"

	// FieldTitle 笔记标题字段
	FieldTitle = "title"

	// FieldCount 数量字段
	FieldCount = "count"

	// FieldDuration 耗时字段
	FieldDuration = "duration"

	// FieldStorageType 存储类型字段
	FieldStorageType = "storageType"

	// FieldStorageKey 存储键字段
	FieldStorageKey = "storageKey"

	// FieldCharsAdded 新增字符数字段
	FieldCharsAdded = "charsAdded"

	// FieldCharsRemoved 删除字符数字段
	FieldCharsRemoved = "charsRemoved"
)
