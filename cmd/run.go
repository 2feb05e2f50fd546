package cmd

import (
	"os"

	"github.com/haierkeys/note-desk/global"
	internalApp "github.com/haierkeys/note-desk/internal/app"
	"github.com/haierkeys/note-desk/internal/ui"
	"github.com/haierkeys/note-desk/pkg/fileurl"
	"github.com/haierkeys/note-desk/pkg/logger"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type runFlags struct {
	dir    string // Working directory // 工作目录
	config string // Specified configuration file path // 指定要使用的配置文件路径
}

func init() {
	runEnv := new(runFlags)

	var runCommand = &cobra.Command{
		Use:   "run [-c config_file] [-d working_dir]",
		Short: "Run the note desk",
		Run: func(cmd *cobra.Command, args []string) {
			if len(runEnv.dir) > 0 {
				err := os.Chdir(runEnv.dir)
				if err != nil {
					bootstrapLogger.Error("failed to change the current working directory", zap.Error(err))
				}
				bootstrapLogger.Info("working directory changed", zap.String("dir", runEnv.dir))
			}

			if len(runEnv.config) <= 0 {
				if fileurl.IsExist("config/config-dev.yaml") {
					runEnv.config = "config/config-dev.yaml"
				} else if fileurl.IsExist("config.yaml") {
					runEnv.config = "config.yaml"
				} else if fileurl.IsExist("config/config.yaml") {
					runEnv.config = "config/config.yaml"
				} else if fileurl.IsExist(global.ROOT + "config/config.yaml") {
					// Fall back to a config next to the executable
					// 回退到可执行文件旁的配置
					runEnv.config = global.ROOT + "config/config.yaml"
				} else {

					bootstrapLogger.Warn("config file not found, creating default config")
					runEnv.config = "config/config.yaml"

					if err := fileurl.CreatePath(runEnv.config, os.ModePerm); err != nil {
						bootstrapLogger.Error("config file auto create error", zap.Error(err))
						return
					}

					file, err := os.OpenFile(runEnv.config, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
					if err != nil {
						bootstrapLogger.Error("config file auto create error", zap.Error(err))
						return
					}
					defer file.Close()
					_, err = file.WriteString(configDefault)
					if err != nil {
						bootstrapLogger.Error("config file auto create writing error", zap.Error(err))
						return
					}
					bootstrapLogger.Info("config file auto create successfully", zap.String("path", runEnv.config))

				}
			}

			cfg, err := global.ConfigLoad(runEnv.config)
			if err != nil {
				bootstrapLogger.Error("config load err", zap.Error(err))
				return
			}

			// Terminal UI owns stdout, the main logger always writes to a file
			// 终端界面占用标准输出，主日志器始终写入文件
			lg, err := logger.NewLogger(logger.Config{
				Level:      cfg.Log.Level,
				File:       cfg.Log.File,
				Production: cfg.Log.Production,
				MaxSize:    cfg.Log.MaxSize,
				MaxBackups: cfg.Log.MaxBackups,
			})
			if err != nil {
				bootstrapLogger.Error("logger init err", zap.Error(err))
				return
			}
			defer lg.Sync()
			global.Logger = lg

			a, err := internalApp.NewApp(cfg, lg)
			if err != nil {
				bootstrapLogger.Error("app container init err", zap.Error(err))
				return
			}

			lg.Info(global.Name+" starting",
				zap.String("version", internalApp.Version),
				zap.String("config", cfg.File),
				zap.String(logger.FieldStorageType, string(cfg.Storage.Type)),
			)

			p := tea.NewProgram(ui.New(a), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				lg.Error("terminal ui exited with error", zap.Error(err))
				bootstrapLogger.Error("terminal ui err", zap.Error(err))
				return
			}

			lg.Info("note desk shut down")
		},
	}

	rootCmd.AddCommand(runCommand)
	fs := runCommand.Flags()
	fs.StringVarP(&runEnv.dir, "dir", "d", "", "run dir")
	fs.StringVarP(&runEnv.config, "config", "c", "", "config file")
}
