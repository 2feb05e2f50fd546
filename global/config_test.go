package global

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestConfigLoadAndSave(t *testing.T) {
	// 1. 创建临时配置文件
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "config.yaml")

	initial := map[string]any{
		"note": map[string]any{
			"untitled-title": "Initial Title",
		},
	}
	data, err := yaml.Marshal(initial)
	if err != nil {
		t.Fatalf("Failed to marshal initial config: %v", err)
	}

	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		t.Fatalf("Failed to write initial config file: %v", err)
	}

	// 2. 加载配置
	absPath, _ := filepath.Abs(tmpFile)
	c, err := ConfigLoad(absPath)
	if err != nil {
		t.Fatalf("ConfigLoad failed: %v", err)
	}

	if c.Note.UntitledTitle != "Initial Title" {
		t.Errorf("Expected UntitledTitle %q, got %q", "Initial Title", c.Note.UntitledTitle)
	}

	// 未出现在文件中的字段使用默认值
	if c.Note.TitleMaxLength != 100 {
		t.Errorf("Expected default TitleMaxLength 100, got %d", c.Note.TitleMaxLength)
	}
	if c.UI.PanelThreshold != 80 {
		t.Errorf("Expected default PanelThreshold 80, got %d", c.UI.PanelThreshold)
	}

	// 3. 修改配置并保存
	Config.Note.UntitledTitle = "Updated Title"
	if err := Config.Save(); err != nil {
		t.Fatalf("Config.Save error: %v, file: %s", err, Config.File)
	}

	// 4. 验证文件内容
	updatedData, err := os.ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read updated config file: %v", err)
	}

	var updated struct {
		Note struct {
			UntitledTitle string `yaml:"untitled-title"`
		} `yaml:"note"`
	}
	if err := yaml.Unmarshal(updatedData, &updated); err != nil {
		t.Fatalf("Failed to unmarshal updated config: %v", err)
	}

	if updated.Note.UntitledTitle != "Updated Title" {
		t.Errorf("Expected UntitledTitle Updated Title, got %s", updated.Note.UntitledTitle)
	}
}
