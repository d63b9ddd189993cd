package ui

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/play-publisher/internal/config"
	"github.com/ytget/play-publisher/internal/model"
	"github.com/ytget/play-publisher/internal/platform"
	"github.com/ytget/play-publisher/internal/publish"
)

// PublisherUI is the publish form window. It also answers the prompts of
// the publish service with dialogs.
type PublisherUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	logger       *slog.Logger
	publisher    publish.Publishing

	appNameLabel  *widget.Label
	appNameEntry  *widget.Entry
	packageLabel  *widget.Label
	packageEntry  *widget.Entry
	trackLabel    *widget.Label
	trackGroup    *RadioGroup
	statusLabel   *widget.Label
	statusGroup   *RadioGroup
	keyTitleLabel *widget.Label
	keyFileLabel  *widget.Label
	keyBtn        *widget.Button
	apkBtn        *widget.Button
	bundleBtn     *widget.Button

	// key file path lives only as long as the window
	mu          sync.Mutex
	keyFilePath string

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewPublisherUI creates the form in window. opts are passed to the publish
// service after the logger option.
func NewPublisherUI(window fyne.Window, app fyne.App, logger *slog.Logger, opts ...publish.Option) *PublisherUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &PublisherUI{
		window:       window,
		settings:     settings,
		localization: localization,
		logger:       logger,
	}

	svcOpts := append([]publish.Option{publish.WithLogger(logger)}, opts...)
	svc := publish.NewService(ui, svcOpts...)
	svc.SetUpdateCallback(ui.onTaskUpdate)
	ui.publisher = svc

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *PublisherUI) setupUI() {
	ui.createMenu()

	ui.appNameLabel = widget.NewLabel("")
	ui.appNameEntry = widget.NewEntry()
	ui.appNameEntry.SetText(ui.settings.GetAppName())

	ui.packageLabel = widget.NewLabel("")
	ui.packageEntry = widget.NewEntry()
	ui.packageEntry.SetText(ui.settings.GetPackageName())

	ui.trackLabel = widget.NewLabel("")
	ui.trackGroup = NewRadioGroup(true)
	for _, track := range model.Tracks() {
		ui.trackGroup.Add(NewRadioItem(track.Label(), string(track)))
	}
	if !ui.trackGroup.SelectValue(string(ui.settings.GetTrack())) {
		ui.trackGroup.SelectValue(string(model.DefaultTrack))
	}

	ui.statusLabel = widget.NewLabel("")
	ui.statusGroup = NewRadioGroup(true)
	for _, status := range model.ReleaseStatuses() {
		ui.statusGroup.Add(NewRadioItem(status.Label(), string(status)))
	}
	if !ui.statusGroup.SelectValue(string(ui.settings.GetReleaseStatus())) {
		ui.statusGroup.SelectValue(string(model.DefaultReleaseStatus))
	}

	ui.keyTitleLabel = widget.NewLabel("")
	ui.keyFileLabel = widget.NewLabel("")
	ui.keyFileLabel.Truncation = fyne.TextTruncateEllipsis
	ui.keyBtn = widget.NewButton("", ui.onChooseKeyFile)

	ui.apkBtn = widget.NewButton("", func() { ui.startPublish(model.ArtifactAPK) })
	ui.apkBtn.Importance = widget.HighImportance
	ui.bundleBtn = widget.NewButton("", func() { ui.startPublish(model.ArtifactBundle) })
	ui.bundleBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, nil, settingsBtn, widget.NewLabel(""))
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		logoImage.FillMode = canvas.ImageFillContain
		header = container.NewBorder(nil, nil, logoImage, settingsBtn, widget.NewLabel(""))
	}

	form := container.New(
		layout.NewFormLayout(),
		ui.appNameLabel, ui.appNameEntry,
		ui.packageLabel, ui.packageEntry,
		ui.trackLabel, ui.trackGroup,
		ui.statusLabel, ui.statusGroup,
		ui.keyTitleLabel, container.NewBorder(nil, nil, nil, ui.keyBtn, ui.keyFileLabel),
	)

	// Notification panel under the buttons (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewVBox(ui.notificationSpinner, ui.notificationLabel)
	ui.notificationContainer.Hide()

	buttons := container.NewGridWithColumns(2, ui.apkBtn, ui.bundleBtn)

	content := container.NewBorder(
		header,
		container.NewVBox(widget.NewSeparator(), buttons, ui.notificationContainer),
		nil,
		nil,
		container.NewVScroll(form),
	)

	ui.refreshUITexts()
	ui.window.SetContent(container.NewPadded(content))
}

// createMenu creates the application menu
func (ui *PublisherUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *PublisherUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *PublisherUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))

	ui.appNameLabel.SetText(l.GetText(KeyAppName))
	ui.appNameEntry.SetPlaceHolder(l.GetText(KeyAppNameHint))
	ui.packageLabel.SetText(l.GetText(KeyPackageName))
	ui.packageEntry.SetPlaceHolder(l.GetText(KeyPackageNameHint))
	ui.trackLabel.SetText(l.GetText(KeyTrack))
	ui.statusLabel.SetText(l.GetText(KeyReleaseStatus))
	ui.keyTitleLabel.SetText(l.GetText(KeyKeyFile))
	ui.keyBtn.SetText(IconKey + " " + l.GetText(KeyBrowse))
	ui.apkBtn.SetText(IconUpload + " " + l.GetText(KeyUploadAPK))
	ui.bundleBtn.SetText(IconUpload + " " + l.GetText(KeyUploadBundle))
	ui.refreshKeyLabel()
}

func (ui *PublisherUI) refreshKeyLabel() {
	path := ui.getKeyFilePath()
	if path == "" {
		ui.keyFileLabel.SetText(ui.localization.GetText(KeyNoKeySelected))
		return
	}
	ui.keyFileLabel.SetText(filepath.Base(path))
}

func (ui *PublisherUI) getKeyFilePath() string {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	return ui.keyFilePath
}

// SetKeyFilePath sets the service account key used by the next publish
func (ui *PublisherUI) SetKeyFilePath(path string) {
	ui.mu.Lock()
	ui.keyFilePath = path
	ui.mu.Unlock()
	ui.refreshKeyLabel()
}

// onChooseKeyFile lets the user pick the service account key
func (ui *PublisherUI) onChooseKeyFile() {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if rc == nil {
			return
		}
		defer rc.Close()

		path := rc.URI().Path()
		if err := platform.CheckKeyFile(path); err != nil {
			ui.logger.Warn("key file rejected", slog.String("path", path), slog.Any("error", err))
			dialog.ShowError(err, ui.window)
			return
		}
		ui.SetKeyFilePath(path)
	}, ui.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{platform.ExtJSON}))
	d.Show()
}

// buildRequest collects the form values
func (ui *PublisherUI) buildRequest(kind model.ArtifactKind) model.PublishRequest {
	return model.PublishRequest{
		AppName:     ui.appNameEntry.Text,
		PackageName: ui.packageEntry.Text,
		Track:       model.Track(ui.trackGroup.SelectedValue()),
		Status:      model.ReleaseStatus(ui.statusGroup.SelectedValue()),
		Kind:        kind,
		KeyFilePath: ui.getKeyFilePath(),
	}.Normalized()
}

// rememberForm stores the form values for the next run
func (ui *PublisherUI) rememberForm(req model.PublishRequest) {
	if req.AppName != "" {
		ui.settings.SetAppName(req.AppName)
	}
	if req.PackageName != "" {
		ui.settings.SetPackageName(req.PackageName)
	}
	ui.settings.SetTrack(req.Track)
	ui.settings.SetReleaseStatus(req.Status)
}

// startPublish runs the workflow off the UI goroutine, since the prompts
// block on dialogs the UI goroutine has to serve
func (ui *PublisherUI) startPublish(kind model.ArtifactKind) {
	if ui.publisher.IsRunning() {
		ui.showNotification(ui.localization.GetText(KeyPublishBusy), false)
		return
	}

	req := ui.buildRequest(kind)
	ui.rememberForm(req)
	ui.setBusy(true)

	go func() {
		task, err := ui.publish(context.Background(), req)
		fyne.Do(func() {
			ui.setBusy(false)
			ui.showResult(task, err)
		})
	}()
}

func (ui *PublisherUI) publish(ctx context.Context, req model.PublishRequest) (*model.PublishTask, error) {
	ui.logger.Info("publish requested",
		slog.String("package", req.PackageName),
		slog.String("track", string(req.Track)),
		slog.String("kind", string(req.Kind)))
	return ui.publisher.Publish(ctx, req)
}

func (ui *PublisherUI) setBusy(busy bool) {
	for _, btn := range []*widget.Button{ui.apkBtn, ui.bundleBtn, ui.keyBtn} {
		if busy {
			btn.Disable()
		} else {
			btn.Enable()
		}
	}
}

// showResult reports the outcome of a publish
func (ui *PublisherUI) showResult(task *model.PublishTask, err error) {
	msg, ok := describeResult(ui.localization, task, err)
	if !ok {
		ui.hideNotification()
		return
	}
	title := msg.Title
	if msg.IsError {
		title = IconError + " " + title
	}
	ui.showNotification(msg.Text, false)
	dialog.ShowInformation(title, msg.Text, ui.window)
}

// onTaskUpdate mirrors the workflow state in the notification panel
func (ui *PublisherUI) onTaskUpdate(task *model.PublishTask) {
	ui.logger.Debug("publish state", slog.String("task_id", task.ID), slog.String("state", task.State.String()))

	key := stateTextKey(task.State)
	if key == "" {
		return
	}
	// the file chooser is open; the spinner would sit behind it
	ui.showNotification(ui.localization.GetText(key), task.State != model.StateFileSelection)
}

// showNotification displays a message in the notification panel.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *PublisherUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(strings.TrimSpace(message))
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel.
func (ui *PublisherUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}

// onShowSettings shows the settings dialog
func (ui *PublisherUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.refreshUITexts()
		ui.createMenu()
		ui.showNotification(ui.localization.GetText(KeySettingsSaved), false)
	})
}
