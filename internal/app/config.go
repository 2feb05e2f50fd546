// Package app 提供应用容器，封装配置和所有依赖
package app

import (
	"os"
	"path/filepath"

	"github.com/haierkeys/note-desk/pkg/storage"

	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// AppConfig 应用配置
type AppConfig struct {
	File    string         `yaml:"-"` // 配置文件路径，不序列化
	Log     LogConfig      `yaml:"log"`
	Storage storage.Config `yaml:"storage"`
	Note    NoteConfig     `yaml:"note"`
	UI      UIConfig       `yaml:"ui"`
}

// LogConfig 日志配置
type LogConfig struct {
	// Level 日志级别，参见 zapcore.ParseLevel
	Level string `yaml:"level" default:"info"`
	// File 日志文件路径
	// 终端 UI 占用标准输出，日志必须写入文件
	File string `yaml:"file" default:"storage/logs/note-desk.log"`
	// Production 是否启用 JSON 输出
	Production bool `yaml:"production" default:"true"`
	// MaxSize 单个日志文件最大体积（MB）
	MaxSize int `yaml:"max-size" default:"64"`
	// MaxBackups 保留的历史日志文件数量
	MaxBackups int `yaml:"max-backups" default:"7"`
}

// NoteConfig 笔记配置
type NoteConfig struct {
	// TitleMaxLength 标题最大长度
	TitleMaxLength int `yaml:"title-max-length" default:"100"`
	// ContentMaxLength 内容最大长度
	ContentMaxLength int `yaml:"content-max-length" default:"2000"`
	// UntitledTitle 空标题的默认值
	UntitledTitle string `yaml:"untitled-title" default:"Untitled Note"`
}

// UIConfig 终端界面配置
type UIConfig struct {
	// PanelThreshold 列表面板自动折叠的终端宽度阈值（列数）
	PanelThreshold int `yaml:"panel-threshold" default:"80"`
	// PanelWidth 列表面板宽度（列数）
	PanelWidth int `yaml:"panel-width" default:"34"`
}

// LoadConfig 从文件加载配置
// 返回配置实例和配置文件的绝对路径
func LoadConfig(f string) (*AppConfig, string, error) {
	realpath, err := filepath.Abs(f)
	if err != nil {
		return nil, "", err
	}
	realpath = filepath.Clean(realpath)

	c := new(AppConfig)
	c.File = realpath

	// 设置默认值
	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "set default config failed")
	}

	file, err := os.ReadFile(realpath)
	if err != nil {
		return nil, realpath, errors.Wrap(err, "read config file failed")
	}

	err = yaml.Unmarshal(file, c)
	if err != nil {
		return nil, realpath, errors.Wrap(err, "parse config file failed")
	}

	// 再次设置默认值，以填充 YAML 中存在但值为空的字段
	// defaults.Set 只有在字段为该类型的零值时才会填充
	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "re-set default config failed")
	}

	return c, realpath, nil
}

// Save 保存配置到文件
func (c *AppConfig) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config failed")
	}

	err = os.WriteFile(c.File, data, 0644)
	if err != nil {
		return errors.Wrap(err, "write config file failed")
	}

	return nil
}
