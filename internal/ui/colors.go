package ui

// Accessor functions over the active theme. Call sites always read the
// current theme so a SetTheme/InitTheme takes effect immediately.

// ColorBlue returns the active theme's primary accent color.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorSecondary returns the active theme's secondary color.
func ColorSecondary() string { return GetCurrentTheme().Secondary }

// ColorGreen returns the active theme's success color.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the active theme's warning color.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorRed returns the active theme's error color.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorCyan returns the active theme's info color.
func ColorCyan() string { return GetCurrentTheme().Info }

// ColorBold returns the active theme's bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the active theme's underline escape code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the active theme's reset escape code.
func ColorReset() string { return GetCurrentTheme().Reset }

// ThemeColorProvider exposes the active theme through the error-reporting
// color interface.
type ThemeColorProvider struct{}

// Red returns the error color of the active theme.
func (ThemeColorProvider) Red() string { return ColorRed() }

// Yellow returns the warning color of the active theme.
func (ThemeColorProvider) Yellow() string { return ColorYellow() }

// Reset returns the reset code of the active theme.
func (ThemeColorProvider) Reset() string { return ColorReset() }
