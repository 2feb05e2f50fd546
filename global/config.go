package global

import (
	"github.com/haierkeys/note-desk/internal/app"
)

// Config 全局配置实例，ConfigLoad 成功后可用
var Config *app.AppConfig

// ConfigLoad 加载配置文件并更新全局配置实例
func ConfigLoad(path string) (*app.AppConfig, error) {
	c, _, err := app.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	Config = c
	return c, nil
}
