//go:build darwin

package config

// DefaultHotkeys returns the default keyboard shortcuts for macOS
// Uses Cmd instead of Ctrl (macOS convention)
func DefaultHotkeys() HotkeysConfig {
	return HotkeysConfig{
		NewTab:   "Cmd+T",
		CloseTab: "Cmd+W",
		NextTab:  "Ctrl+Tab",
		PrevTab:  "Ctrl+Shift+Tab",
		Escape:   "Escape",

		Tab1: "Cmd+1",
		Tab2: "Cmd+2",
		Tab3: "Cmd+3",
		Tab4: "Cmd+4",
		Tab5: "Cmd+5",
		Tab6: "Cmd+6",
	}
}
