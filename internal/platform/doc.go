package platform

// Package platform contains OS integration glue: opening a catalog detail
// page in the platform's browsing surface, either through the Fyne
// application or by shelling out to the OS opener directly.
