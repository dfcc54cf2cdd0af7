package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

func (a *Application) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open...", a.controller.ChooseFile),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Reset Zoom", a.controller.ResetZoom),
		fyne.NewMenuItem("Toggle Log Scale", a.controller.ToggleLogScale),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.view.ShowAboutDialog(AppName, AppVersion)
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, helpMenu))
}

func (a *Application) setupShortcuts() {
	canvas := a.window.Canvas()
	for _, modifier := range []fyne.KeyModifier{fyne.KeyModifierShortcutDefault, fyne.KeyModifierControl} {
		canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: modifier}, func(fyne.Shortcut) {
			a.controller.ChooseFile()
		})
		canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.Key0, Modifier: modifier}, func(fyne.Shortcut) {
			a.controller.ResetZoom()
		})
		canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyL, Modifier: modifier}, func(fyne.Shortcut) {
			a.controller.ToggleLogScale()
		})
	}
}
