// Package diff computes text change statistics between note revisions.
// Package diff 计算笔记版本之间的文本变更统计
package diff

import "github.com/sergi/go-diff/diffmatchpatch"

// Stats change statistics of a single edit
// Stats 单次编辑的变更统计
type Stats struct {
	// CharsAdded 新增字符数
	CharsAdded int
	// CharsRemoved 删除字符数
	CharsRemoved int
}

// Changed reports whether the edit touched the text at all
// Changed 判断本次编辑是否有实际改动
func (s Stats) Changed() bool {
	return s.CharsAdded > 0 || s.CharsRemoved > 0
}

// ChangeStats diffs old against new text and counts changed characters
// ChangeStats 对比新旧文本并统计变更字符数
func ChangeStats(oldText, newText string) Stats {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldText, newText, false)

	var s Stats
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			s.CharsAdded += len([]rune(d.Text))
		case diffmatchpatch.DiffDelete:
			s.CharsRemoved += len([]rune(d.Text))
		}
	}
	return s
}
