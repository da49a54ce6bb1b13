package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyRefresh           = "refresh"
	KeyOpen              = "open"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySearchPlaceholder = "search_placeholder"
	KeyLoadingCatalog    = "loading_catalog"
	KeyNoData            = "no_data"
	KeyNoMatches         = "no_matches"
	KeyNetworkError      = "network_error"
	KeySettingsSaved     = "settings_saved"
	KeyFetchOnStart      = "fetch_on_start"
	KeyConfirmBeforeOpen = "confirm_before_open"
	KeyOpenDetailTitle   = "open_detail_title"
	KeyErrorOpeningPage  = "error_opening_page"
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
		"ja": "日本語",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Sweet Catalog",
		KeyRefresh:           "Refresh",
		KeyOpen:              "Open",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySearchPlaceholder: "Search sweets by name",
		KeyLoadingCatalog:    "Loading catalog...",
		KeyNoData:            "No data available",
		KeyNoMatches:         "No sweets match your search",
		KeyNetworkError:      "Could not reach the catalog. Refresh to retry.",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyFetchOnStart:      "Load catalog on start",
		KeyConfirmBeforeOpen: "Confirm before opening pages",
		KeyOpenDetailTitle:   "Open detail page",
		KeyErrorOpeningPage:  "Error opening page",
	}

	// Japanese texts
	l.texts["ja"] = map[string]string{
		KeyAppTitle:          "お菓子カタログ",
		KeyRefresh:           "更新",
		KeyOpen:              "開く",
		KeySettings:          "設定",
		KeyFile:              "ファイル",
		KeyLanguage:          "言語",
		KeySave:              "保存",
		KeyCancel:            "キャンセル",
		KeySearchPlaceholder: "お菓子の名前で検索",
		KeyLoadingCatalog:    "カタログを読み込み中...",
		KeyNoData:            "データがありません",
		KeyNoMatches:         "検索に一致するお菓子がありません",
		KeyNetworkError:      "カタログに接続できません。更新して再試行してください。",
		KeySettingsSaved:     "設定を保存しました！",
		KeyFetchOnStart:      "起動時にカタログを読み込む",
		KeyConfirmBeforeOpen: "ページを開く前に確認する",
		KeyOpenDetailTitle:   "詳細ページを開く",
		KeyErrorOpeningPage:  "ページを開けませんでした",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Каталог сладостей",
		KeyRefresh:           "Обновить",
		KeyOpen:              "Открыть",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySearchPlaceholder: "Поиск сладостей по названию",
		KeyLoadingCatalog:    "Загрузка каталога...",
		KeyNoData:            "Нет данных",
		KeyNoMatches:         "Ничего не найдено",
		KeyNetworkError:      "Каталог недоступен. Обновите, чтобы повторить.",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyFetchOnStart:      "Загружать каталог при запуске",
		KeyConfirmBeforeOpen: "Подтверждать открытие страниц",
		KeyOpenDetailTitle:   "Открыть страницу",
		KeyErrorOpeningPage:  "Ошибка открытия страницы",
	}
}
