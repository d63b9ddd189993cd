package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/urfave/cli/v3"

	"github.com/ytget/play-publisher/internal/config"
	"github.com/ytget/play-publisher/internal/ui"
)

const (
	AppID   = "com.ytget.play-publisher"
	AppName = "Play Publisher"
)

func cmdGUI(loggerCfg *config.Logger, version string) *cli.Command {
	return &cli.Command{
		Name:  "gui",
		Usage: "Open the publish window (default)",
		Action: func(ctx context.Context, c *cli.Command) error {
			return runGUI(c, *loggerCfg, version)
		},
	}
}

// runGUI blocks until the window is closed
func runGUI(c *cli.Command, loggerCfg config.Logger, version string) error {
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewPublisherTheme())

	logger := slog.Default()
	// the level chosen in the settings dialog applies unless given on the command line
	if !c.IsSet("log-level") {
		loggerCfg.Level = config.NewSettings(myApp).GetLogLevel()
		configured, err := loggerCfg.Configure(os.Stderr)
		if err != nil {
			logger.Warn("ignoring stored log level", slog.String("level", loggerCfg.Level), slog.Any("error", err))
		} else {
			logger = configured
		}
	}

	logger.Info("starting GUI", slog.String("version", version))

	window := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	window.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	ui.NewPublisherUI(window, myApp, logger)

	window.ShowAndRun()
	return nil
}
