package keymap

// DefaultRegistry returns the stock events used by the keybind tool and
// its demo. Host applications declare their own registry the same way.
func DefaultRegistry() *Registry {
	return NewRegistry().
		Define("quit", "Quit the application", "Control+c", "Q", "q").
		Define("toggle_help_widget", "Show or hide the help panel", "F1", "?").
		Define("scroll_up", "Scroll up one line", "Up", "k").
		Define("scroll_down", "Scroll down one line", "Down", "j").
		Define("page_up", "Scroll up one page", "PageUp", "Control+b").
		Define("page_down", "Scroll down one page", "PageDown", "Control+f", "Space").
		Define("go_top", "Jump to the first line", "Home", "g").
		Define("go_bottom", "Jump to the last line", "End", "G").
		Define("search", "Start a search", "/", "Control+s").
		Define("refresh", "Redraw the screen", "Control+l", "F5").
		Define("select", "Activate the selected item", "Enter").
		Define("cancel", "Leave the current prompt", "Esc", "Control+c")
}
