package global

import (
	"github.com/haierkeys/note-desk/pkg/fileurl"
)

var (
	// 程序执行目录
	ROOT string
	Name string = "Note Desk"
)

func init() {

	filename := fileurl.GetExePath()
	ROOT = filename + "/"

}
