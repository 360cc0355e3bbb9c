package session

import "unicode/utf8"

// WrapFunc applies a function key to the display text: name( on an empty
// display, otherwise the display wrapped as the function's argument.
func WrapFunc(display, name string) string {
	if display == "" {
		return name + "("
	}
	return name + "(" + display + ")"
}

// WrapPower applies a power key such as ^2 to the display text as a whole.
// An empty display is unchanged.
func WrapPower(display, suffix string) string {
	if display == "" {
		return display
	}
	return "(" + display + ")" + suffix
}

// Backspace removes the last character from the display text.
func Backspace(display string) string {
	_, n := utf8.DecodeLastRuneInString(display)
	return display[:len(display)-n]
}
