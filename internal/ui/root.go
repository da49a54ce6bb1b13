package ui

import (
	"context"
	"log"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/sweetbird/sweet-catalog/internal/browse"
	"github.com/sweetbird/sweet-catalog/internal/config"
	"github.com/sweetbird/sweet-catalog/internal/model"
	"github.com/sweetbird/sweet-catalog/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	session      *browse.Session
	viewer       platform.Viewer
	settings     *config.Settings
	localization *Localization
	mobileUI     *MobileUI

	// UI components
	searchEntry *widget.Entry
	refreshBtn  *widget.Button
	itemList    *widget.List
	emptyLabel  *widget.Label

	// visible is the list's snapshot of the session's filtered items,
	// replaced wholesale on every session update
	visible []model.CatalogItem

	// Loading notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, session *browse.Session, viewer platform.Viewer) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		session:      session,
		viewer:       viewer,
		settings:     settings,
		localization: localization,
		mobileUI:     NewMobileUI(app),
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Re-render whenever the session state changes; the callback may arrive
	// from a fetch goroutine, so marshal onto the UI thread
	session.SetUpdateCallback(ui.onSessionUpdate)

	ui.setupUI()

	if settings.GetFetchOnStart() {
		ui.onRefresh()
	}

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Create search entry
	ui.searchEntry = ui.mobileUI.CreateMobileEntry(ui.localization.GetText(KeySearchPlaceholder))
	ui.searchEntry.OnChanged = ui.onSearchChanged

	// Create refresh button
	ui.refreshBtn = ui.mobileUI.CreateMobileButton(ui.localization.GetText(KeyRefresh), ui.onRefresh)

	// Create settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Create logo
	logo, err := LoadLogoResource()
	var logoImage *canvas.Image
	if err == nil {
		logoImage = canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
	}

	// Create top panel (search row) with logo
	var topPanel *fyne.Container
	if logoImage != nil {
		topPanel = container.NewBorder(nil, nil, container.NewHBox(logoImage, settingsBtn), ui.refreshBtn, ui.searchEntry)
	} else {
		topPanel = container.NewBorder(nil, nil, container.NewHBox(settingsBtn), ui.refreshBtn, ui.searchEntry)
	}

	// Create loading notification panel under the search row (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	// Combine search row and notification panel at the top
	topCombined := container.NewVBox(topPanel, ui.notificationContainer)

	// Create empty-state label shown instead of results
	ui.emptyLabel = widget.NewLabel(ui.localization.GetText(KeyNoData))
	ui.emptyLabel.Alignment = fyne.TextAlignCenter
	ui.emptyLabel.Wrapping = fyne.TextWrapWord

	// Create item list
	ui.itemList = widget.NewList(
		func() int {
			return len(ui.visible)
		},
		func() fyne.CanvasObject { return ui.createItemRow() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateItemRow(id, obj) },
	)
	ui.itemList.OnSelected = func(id widget.ListItemID) {
		ui.itemList.UnselectAll()
		if id < len(ui.visible) {
			ui.onItemTapped(ui.visible[id])
		}
	}

	// Create main layout
	content := container.NewBorder(
		topCombined, // top
		nil,         // bottom
		nil,         // left
		nil,         // right
		container.NewStack(ui.itemList, container.NewCenter(ui.emptyLabel)),
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.refreshBtn.SetText(ui.localization.GetText(KeyRefresh))

	// Refresh list and empty state to update button texts
	ui.refreshFromSession()
}

// onSearchChanged forwards search edits into the session
func (ui *RootUI) onSearchChanged(text string) {
	ui.session.SetSearchText(text)
}

// onRefresh starts a catalog fetch. The session supersedes any fetch that is
// still outstanding, but the search input is disabled while loading anyway so
// a second one normally cannot start.
func (ui *RootUI) onRefresh() {
	ui.session.StartFetch(context.Background())
}

// onSessionUpdate re-renders the UI from a session snapshot
func (ui *RootUI) onSessionUpdate() {
	fyne.Do(ui.refreshFromSession)
}

// refreshFromSession pulls the current session state into the widgets.
// Must run on the UI thread.
func (ui *RootUI) refreshFromSession() {
	ui.visible = ui.session.FilteredItems()
	loading := ui.session.Loading()

	if loading {
		ui.searchEntry.Disable()
		ui.refreshBtn.Disable()
		ui.showLoadingNotification()
	} else {
		ui.searchEntry.Enable()
		ui.refreshBtn.Enable()
		ui.hideLoadingNotification()
	}

	ui.updateEmptyState(loading)
	ui.itemList.Refresh()
}

// updateEmptyState chooses which empty-state message to show, if any
func (ui *RootUI) updateEmptyState(loading bool) {
	if loading || len(ui.visible) > 0 {
		ui.emptyLabel.Hide()
		return
	}

	switch {
	case ui.session.LastFailure().IsRetryable():
		ui.emptyLabel.SetText(ui.localization.GetText(KeyNetworkError))
	case len(ui.session.Items()) > 0:
		// Records exist, the search just matches none of them
		ui.emptyLabel.SetText(ui.localization.GetText(KeyNoMatches))
	default:
		ui.emptyLabel.SetText(ui.localization.GetText(KeyNoData))
	}
	ui.emptyLabel.Show()
}

// showLoadingNotification displays the loading panel under the search row
func (ui *RootUI) showLoadingNotification() {
	ui.notificationLabel.SetText(ui.localization.GetText(KeyLoadingCatalog))
	ui.notificationSpinner.Show()
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// hideLoadingNotification hides the loading panel
func (ui *RootUI) hideLoadingNotification() {
	ui.notificationSpinner.Hide()
	ui.notificationContainer.Hide()
}

// createItemRow creates a new list row widget
func (ui *RootUI) createItemRow() fyne.CanvasObject {
	// Placeholder item - will be updated in updateItemRow
	row := NewItemRow(model.CatalogItem{}, ui.localization)
	row.SetCallbacks(ui.onItemTapped)
	return row
}

// updateItemRow updates a list row with current data
func (ui *RootUI) updateItemRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(ui.visible) {
		return
	}

	if row, ok := obj.(*ItemRow); ok {
		row.SetCallbacks(ui.onItemTapped)
		row.UpdateItem(ui.visible[id])
	}
}

// onItemTapped validates the tap through the session and opens the detail
// viewer. Items with a broken detail URL are ignored without user-facing
// feedback; the session logs them.
func (ui *RootUI) onItemTapped(item model.CatalogItem) {
	if err := ui.session.SelectItem(item); err != nil {
		return
	}

	target := ui.session.Selected()
	if target == nil {
		return
	}

	if ui.settings.GetConfirmBeforeOpen() {
		dialog.ShowConfirm(
			ui.localization.GetText(KeyOpenDetailTitle),
			target.String(),
			func(confirmed bool) {
				if confirmed {
					ui.openDetail(target)
				} else {
					ui.session.ClearSelection()
				}
			},
			ui.window,
		)
		return
	}

	ui.openDetail(target)
}

// openDetail hands the target to the detail viewer and clears the selection
// so a dismissed page is not reopened on the next render
func (ui *RootUI) openDetail(target *url.URL) {
	if err := ui.viewer.Open(target); err != nil {
		log.Printf("Failed to open detail page %s: %v", target, err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningPage)), ui.window.Canvas())
	}
	ui.session.ClearSelection()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		// Language may have changed
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	}).Show()
}
