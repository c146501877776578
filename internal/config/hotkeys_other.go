//go:build !darwin

package config

// DefaultHotkeys returns the default keyboard shortcuts for Windows/Linux
func DefaultHotkeys() HotkeysConfig {
	return HotkeysConfig{
		NewTab:   "Ctrl+T",
		CloseTab: "Ctrl+W",
		NextTab:  "Ctrl+Tab",
		PrevTab:  "Ctrl+Shift+Tab",
		Escape:   "Escape",

		Tab1: "Ctrl+1",
		Tab2: "Ctrl+2",
		Tab3: "Ctrl+3",
		Tab4: "Ctrl+4",
		Tab5: "Ctrl+5",
		Tab6: "Ctrl+6",
	}
}
