package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle              = "app_title"
	KeySettings              = "settings"
	KeyFile                  = "file"
	KeyLanguage              = "language"
	KeyDownloadDirectory     = "download_directory"
	KeyMaxParallel           = "max_parallel"
	KeyMaxRetries            = "max_retries"
	KeyAnimationDuration     = "animation_duration"
	KeyDefaultText           = "default_text"
	KeyLoadingText           = "loading_text"
	KeySave                  = "save"
	KeyCancel                = "cancel"
	KeyBrowse                = "browse"
	KeySettingsSaved         = "settings_saved"
	KeySelectFile            = "select_file"
	KeyDownloadCompleted     = "download_completed"
	KeyNotificationTitle     = "notification_title"
	KeyNotificationBody      = "notification_description"
	KeyCheckStatus           = "check_status"
	KeyChannelName           = "channel_name"
	KeyChannelDescription    = "channel_description"
	KeyDetailTitle           = "detail_title"
	KeyFileName              = "file_name"
	KeyStatus                = "status"
	KeyStatusSuccessful      = "status_successful"
	KeyStatusFailed          = "status_failed"
	KeyStatusUnknown         = "status_unknown"
	KeyOK                    = "ok"
	KeyShowInFolder          = "show_in_folder"
	KeyErrorOpeningFile      = "error_opening_file"
	KeyEnqueueFailed         = "enqueue_failed"
	KeyInvalidNumber         = "invalid_number"
	KeyDismiss               = "dismiss"
	KeySettingsNextDownloads = "settings_next_downloads"
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

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:              "LoadStatus",
		KeySettings:              "Settings",
		KeyFile:                  "File",
		KeyLanguage:              "Language",
		KeyDownloadDirectory:     "Download Directory",
		KeyMaxParallel:           "Max Parallel Downloads",
		KeyMaxRetries:            "Retries per Download",
		KeyAnimationDuration:     "Animation Duration (ms)",
		KeyDefaultText:           "Button Text",
		KeyLoadingText:           "Loading Text",
		KeySave:                  "Save",
		KeyCancel:                "Cancel",
		KeyBrowse:                "Browse",
		KeySettingsSaved:         "Settings saved successfully!",
		KeySelectFile:            "Please select the file to download",
		KeyDownloadCompleted:     "Download completed",
		KeyNotificationTitle:     "Udacity: Android Kotlin Nanodegree",
		KeyNotificationBody:      "The Project 3 repository is downloaded",
		KeyCheckStatus:           "Check the status",
		KeyChannelName:           "Download status",
		KeyChannelDescription:    "Shows the result of finished downloads",
		KeyDetailTitle:           "Download details",
		KeyFileName:              "File name",
		KeyStatus:                "Status",
		KeyStatusSuccessful:      "Successful",
		KeyStatusFailed:          "Failed",
		KeyStatusUnknown:         "Unknown",
		KeyOK:                    "OK",
		KeyShowInFolder:          "Show in folder",
		KeyErrorOpeningFile:      "Error opening file",
		KeyEnqueueFailed:         "Could not start the download",
		KeyInvalidNumber:         "Please enter a number",
		KeyDismiss:               "Dismiss",
		KeySettingsNextDownloads: "Some changes apply after restart",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:              "LoadStatus",
		KeySettings:              "Настройки",
		KeyFile:                  "Файл",
		KeyLanguage:              "Язык",
		KeyDownloadDirectory:     "Папка загрузки",
		KeyMaxParallel:           "Макс. параллельных",
		KeyMaxRetries:            "Повторов на загрузку",
		KeyAnimationDuration:     "Длительность анимации (мс)",
		KeyDefaultText:           "Текст кнопки",
		KeyLoadingText:           "Текст загрузки",
		KeySave:                  "Сохранить",
		KeyCancel:                "Отмена",
		KeyBrowse:                "Обзор",
		KeySettingsSaved:         "Настройки успешно сохранены!",
		KeySelectFile:            "Пожалуйста, выберите файл для загрузки",
		KeyDownloadCompleted:     "Загрузка завершена",
		KeyNotificationTitle:     "Udacity: Android Kotlin Nanodegree",
		KeyNotificationBody:      "Репозиторий проекта 3 загружен",
		KeyCheckStatus:           "Проверить статус",
		KeyChannelName:           "Статус загрузки",
		KeyChannelDescription:    "Показывает результат завершённых загрузок",
		KeyDetailTitle:           "Детали загрузки",
		KeyFileName:              "Имя файла",
		KeyStatus:                "Статус",
		KeyStatusSuccessful:      "Успешно",
		KeyStatusFailed:          "Ошибка",
		KeyStatusUnknown:         "Неизвестно",
		KeyOK:                    "OK",
		KeyShowInFolder:          "Показать в папке",
		KeyErrorOpeningFile:      "Ошибка открытия файла",
		KeyEnqueueFailed:         "Не удалось начать загрузку",
		KeyInvalidNumber:         "Пожалуйста, введите число",
		KeyDismiss:               "Скрыть",
		KeySettingsNextDownloads: "Часть изменений вступит в силу после перезапуска",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:              "LoadStatus",
		KeySettings:              "Configurações",
		KeyFile:                  "Arquivo",
		KeyLanguage:              "Idioma",
		KeyDownloadDirectory:     "Diretório de Download",
		KeyMaxParallel:           "Max Downloads Paralelos",
		KeyMaxRetries:            "Tentativas por Download",
		KeyAnimationDuration:     "Duração da Animação (ms)",
		KeyDefaultText:           "Texto do Botão",
		KeyLoadingText:           "Texto de Carregamento",
		KeySave:                  "Salvar",
		KeyCancel:                "Cancelar",
		KeyBrowse:                "Navegar",
		KeySettingsSaved:         "Configurações salvas com sucesso!",
		KeySelectFile:            "Por favor, selecione o arquivo para baixar",
		KeyDownloadCompleted:     "Download concluído",
		KeyNotificationTitle:     "Udacity: Android Kotlin Nanodegree",
		KeyNotificationBody:      "O repositório do Projeto 3 foi baixado",
		KeyCheckStatus:           "Verificar o status",
		KeyChannelName:           "Status do download",
		KeyChannelDescription:    "Mostra o resultado dos downloads concluídos",
		KeyDetailTitle:           "Detalhes do download",
		KeyFileName:              "Nome do arquivo",
		KeyStatus:                "Status",
		KeyStatusSuccessful:      "Concluído",
		KeyStatusFailed:          "Falhou",
		KeyStatusUnknown:         "Desconhecido",
		KeyOK:                    "OK",
		KeyShowInFolder:          "Mostrar na pasta",
		KeyErrorOpeningFile:      "Erro ao abrir arquivo",
		KeyEnqueueFailed:         "Não foi possível iniciar o download",
		KeyInvalidNumber:         "Por favor, digite um número",
		KeyDismiss:               "Fechar",
		KeySettingsNextDownloads: "Algumas alterações valem após reiniciar",
	}
}
