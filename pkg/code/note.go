package code

// 笔记相关错误码（20xxx）
var (
	// ErrorNoteNotFound 笔记不存在
	ErrorNoteNotFound = NewError(20001, "note not found")
	// ErrorNoteTitleTooLong 标题超出长度限制
	ErrorNoteTitleTooLong = NewError(20002, "note title too long")
	// ErrorNoteContentTooLong 内容超出长度限制
	ErrorNoteContentTooLong = NewError(20003, "note content too long")
)

// 存储相关错误码（30xxx）
var (
	// ErrorInvalidStorageType 无效的存储类型
	ErrorInvalidStorageType = NewError(30001, "invalid storage type")
	// ErrorStorageWriteFailed 存储写入失败
	ErrorStorageWriteFailed = NewError(30002, "storage write failed")
	// ErrorStorageReadFailed 存储读取失败
	ErrorStorageReadFailed = NewError(30003, "storage read failed")
)
