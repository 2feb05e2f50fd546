// Package timex provides a time.Time alias with stable JSON formatting.
// Package timex 提供具有稳定 JSON 格式的 time.Time 别名
package timex

import (
	"fmt"
	"time"
)

// Layout serialization layout, RFC 3339 with nanoseconds for lossless round trips
// Layout 序列化格式，带纳秒的 RFC 3339，保证无损往返
const Layout = time.RFC3339Nano

// Time wraps time.Time with ISO-8601 JSON encoding
// Time 包装 time.Time，JSON 编码为 ISO-8601
type Time time.Time

// Now returns the current time as a timex.Time
// Now 返回当前时间的 timex.Time
func Now() Time {
	return Time(time.Now())
}

func (t Time) Time() time.Time {
	return time.Time(t)
}

func (t Time) Unix() int64 {
	return time.Time(t).Unix()
}

func (t Time) UnixMilli() int64 {
	return time.Time(t).UnixMilli()
}

func (t Time) UnixMicro() int64 {
	return time.Time(t).UnixMicro()
}

func (t Time) UnixNano() int64 {
	return time.Time(t).UnixNano()
}

func (t Time) IsZero() bool {
	return time.Time(t).IsZero()
}

// Format formats with the given layout
// Format 按给定格式输出
func (t Time) Format(layout string) string {
	return time.Time(t).Format(layout)
}

func (t Time) String() string {
	return time.Time(t).Format(Layout)
}

// MarshalJSON implements json.Marshaler
// MarshalJSON 实现 json.Marshaler
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", time.Time(t).Format(Layout))), nil
}

// UnmarshalJSON implements json.Unmarshaler
// UnmarshalJSON 实现 json.Unmarshaler
func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*t = Time(time.Time{})
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := time.Parse(Layout, s)
	if err != nil {
		return err
	}
	*t = Time(parsed)
	return nil
}
