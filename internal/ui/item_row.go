package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/sweetbird/sweet-catalog/internal/model"
)

// ItemRow represents a compact catalog row widget: an icon, the sweet's name,
// and an open button for its detail page
type ItemRow struct {
	widget.BaseWidget

	item         model.CatalogItem
	localization *Localization

	// UI components
	iconLabel *widget.Label
	nameLabel *widget.Label
	openBtn   *widget.Button

	// Callbacks
	onOpen func(item model.CatalogItem)
}

// NewItemRow creates a new item row widget
func NewItemRow(item model.CatalogItem, localization *Localization) *ItemRow {
	ir := &ItemRow{
		item:         item,
		localization: localization,
	}
	ir.ExtendBaseWidget(ir)
	ir.createUI()
	ir.updateFromItem()
	return ir
}

// SetCallbacks sets the action callbacks
func (ir *ItemRow) SetCallbacks(onOpen func(item model.CatalogItem)) {
	ir.onOpen = onOpen
}

// UpdateItem updates the row with new item data
func (ir *ItemRow) UpdateItem(item model.CatalogItem) {
	ir.item = item
	ir.updateFromItem()
}

// createUI creates the row's widgets
func (ir *ItemRow) createUI() {
	ir.iconLabel = widget.NewLabel(IconSweet)
	ir.nameLabel = widget.NewLabel("")
	ir.nameLabel.Truncation = fyne.TextTruncateEllipsis

	ir.openBtn = widget.NewButton(ir.localization.GetText(KeyOpen), func() {
		if ir.onOpen != nil {
			ir.onOpen(ir.item)
		}
	})
	ir.openBtn.Importance = widget.LowImportance
}

// updateFromItem refreshes the widgets from the current item data
func (ir *ItemRow) updateFromItem() {
	ir.nameLabel.SetText(ir.item.GetDisplayTitle())
	ir.openBtn.SetText(ir.localization.GetText(KeyOpen))
}

// MinSize keeps rows tall enough for touch targets
func (ir *ItemRow) MinSize() fyne.Size {
	min := ir.BaseWidget.MinSize()
	if min.Height < RowMinHeight {
		min.Height = RowMinHeight
	}
	return min
}

// CreateRenderer creates the widget renderer
func (ir *ItemRow) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(nil, nil, ir.iconLabel, ir.openBtn, ir.nameLabel)
	return widget.NewSimpleRenderer(content)
}
