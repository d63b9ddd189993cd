package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeyAppName            = "app_name"
	KeyAppNameHint        = "app_name_hint"
	KeyPackageName        = "package_name"
	KeyPackageNameHint    = "package_name_hint"
	KeyTrack              = "track"
	KeyReleaseStatus      = "release_status"
	KeyKeyFile            = "key_file"
	KeyNoKeySelected      = "no_key_selected"
	KeyUploadAPK          = "upload_apk"
	KeyUploadBundle       = "upload_bundle"
	KeyReleaseNotes       = "release_notes"
	KeyReleaseNotesFor    = "release_notes_for"
	KeyNotesHint          = "notes_hint"
	KeyNotesLanguage      = "notes_language"
	KeyLogLevel           = "log_level"
	KeyOK                 = "ok"
	KeyError              = "error"
	KeySuccess            = "success"
	KeySettingsSaved      = "settings_saved"
	KeyStateValidating    = "state_validating"
	KeyStateCredentials   = "state_credentials"
	KeyStateFileSelection = "state_file_selection"
	KeyStateEditCreated   = "state_edit_created"
	KeyStateUploaded      = "state_uploaded"
	KeyStateTrackUpdated  = "state_track_updated"
	KeyMissingKeyTitle    = "missing_key_title"
	KeyMissingKeyMessage  = "missing_key_message"
	KeyMissingInfoTitle   = "missing_info_title"
	KeyMissingInfoMessage = "missing_info_message"
	KeyServiceError       = "service_error"
	KeyInvalidArtifact    = "invalid_artifact"
	KeyUploadRolledBack   = "upload_rolled_back"
	KeyPublishBusy        = "publish_busy"
	KeyEditCommitted      = "edit_committed"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Play Publisher",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeyAppName:            "App name",
		KeyAppNameHint:        "My App",
		KeyPackageName:        "Package name",
		KeyPackageNameHint:    "com.example.app",
		KeyTrack:              "Track",
		KeyReleaseStatus:      "Release status",
		KeyKeyFile:            "Service account key",
		KeyNoKeySelected:      "No key file selected",
		KeyUploadAPK:          "Upload APK",
		KeyUploadBundle:       "Upload App Bundle",
		KeyReleaseNotes:       "Release notes",
		KeyReleaseNotesFor:    "Release notes for version %d",
		KeyNotesHint:          "What's new in this release",
		KeyNotesLanguage:      "Language code",
		KeyLogLevel:           "Log level",
		KeyOK:                 "OK",
		KeyError:              "Error",
		KeySuccess:            "Success",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyStateValidating:    "Checking form...",
		KeyStateCredentials:   "Loading service account key...",
		KeyStateFileSelection: "Choose the file to upload",
		KeyStateEditCreated:   "Edit created, uploading...",
		KeyStateUploaded:      "Uploaded, waiting for release notes",
		KeyStateTrackUpdated:  "Track updated, committing...",
		KeyMissingKeyTitle:    "Missing key file",
		KeyMissingKeyMessage:  "Please select the key file for your service account",
		KeyMissingInfoTitle:   "Missing information",
		KeyMissingInfoMessage: "Please specify both app and package name",
		KeyServiceError:       "Could not create service!",
		KeyInvalidArtifact:    "The chosen file cannot be uploaded",
		KeyUploadRolledBack:   "App could not be uploaded! Transaction was rolled back.",
		KeyPublishBusy:        "A publish is already in progress",
		KeyEditCommitted:      "App edit with id %s has been committed!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Play Publisher",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyBrowse:             "Обзор",
		KeyAppName:            "Название приложения",
		KeyAppNameHint:        "Моё приложение",
		KeyPackageName:        "Имя пакета",
		KeyPackageNameHint:    "com.example.app",
		KeyTrack:              "Канал",
		KeyReleaseStatus:      "Статус выпуска",
		KeyKeyFile:            "Ключ сервисного аккаунта",
		KeyNoKeySelected:      "Файл ключа не выбран",
		KeyUploadAPK:          "Загрузить APK",
		KeyUploadBundle:       "Загрузить App Bundle",
		KeyReleaseNotes:       "Примечания к выпуску",
		KeyReleaseNotesFor:    "Примечания к версии %d",
		KeyNotesHint:          "Что нового в этом выпуске",
		KeyNotesLanguage:      "Код языка",
		KeyLogLevel:           "Уровень логов",
		KeyOK:                 "ОК",
		KeyError:              "Ошибка",
		KeySuccess:            "Готово",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyStateValidating:    "Проверка формы...",
		KeyStateCredentials:   "Загрузка ключа сервисного аккаунта...",
		KeyStateFileSelection: "Выберите файл для загрузки",
		KeyStateEditCreated:   "Правка создана, загрузка...",
		KeyStateUploaded:      "Загружено, ожидание примечаний",
		KeyStateTrackUpdated:  "Канал обновлён, фиксация...",
		KeyMissingKeyTitle:    "Нет файла ключа",
		KeyMissingKeyMessage:  "Выберите файл ключа сервисного аккаунта",
		KeyMissingInfoTitle:   "Не хватает данных",
		KeyMissingInfoMessage: "Укажите название приложения и имя пакета",
		KeyServiceError:       "Не удалось создать сервис!",
		KeyInvalidArtifact:    "Выбранный файл нельзя загрузить",
		KeyUploadRolledBack:   "Приложение не загружено! Транзакция отменена.",
		KeyPublishBusy:        "Публикация уже выполняется",
		KeyEditCommitted:      "Правка приложения с id %s зафиксирована!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Play Publisher",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyBrowse:             "Navegar",
		KeyAppName:            "Nome do app",
		KeyAppNameHint:        "Meu App",
		KeyPackageName:        "Nome do pacote",
		KeyPackageNameHint:    "com.example.app",
		KeyTrack:              "Faixa",
		KeyReleaseStatus:      "Status da versão",
		KeyKeyFile:            "Chave da conta de serviço",
		KeyNoKeySelected:      "Nenhum arquivo de chave selecionado",
		KeyUploadAPK:          "Enviar APK",
		KeyUploadBundle:       "Enviar App Bundle",
		KeyReleaseNotes:       "Notas da versão",
		KeyReleaseNotesFor:    "Notas da versão %d",
		KeyNotesHint:          "O que há de novo nesta versão",
		KeyNotesLanguage:      "Código do idioma",
		KeyLogLevel:           "Nível de log",
		KeyOK:                 "OK",
		KeyError:              "Erro",
		KeySuccess:            "Sucesso",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyStateValidating:    "Verificando formulário...",
		KeyStateCredentials:   "Carregando chave da conta de serviço...",
		KeyStateFileSelection: "Escolha o arquivo para enviar",
		KeyStateEditCreated:   "Edição criada, enviando...",
		KeyStateUploaded:      "Enviado, aguardando notas da versão",
		KeyStateTrackUpdated:  "Faixa atualizada, confirmando...",
		KeyMissingKeyTitle:    "Arquivo de chave ausente",
		KeyMissingKeyMessage:  "Selecione o arquivo de chave da sua conta de serviço",
		KeyMissingInfoTitle:   "Informações ausentes",
		KeyMissingInfoMessage: "Informe o nome do app e o nome do pacote",
		KeyServiceError:       "Não foi possível criar o serviço!",
		KeyInvalidArtifact:    "O arquivo escolhido não pode ser enviado",
		KeyUploadRolledBack:   "O app não pôde ser enviado! A transação foi revertida.",
		KeyPublishBusy:        "Uma publicação já está em andamento",
		KeyEditCommitted:      "A edição do app com id %s foi confirmada!",
	}
}
