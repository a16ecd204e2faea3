// Package ui provides semantic text formatting for sala's messages.
//
// Formatters colorize content when the terminal supports it. When NO_COLOR
// is set or the output is not a terminal, text decorations are used instead,
// so messages stay identical to the classic plain-text ones:
//
//	ui.Code.Sprint("sala init")   // `sala init'
//	ui.Path.Sprint("mail/work")   // mail/work
//	ui.Error.Sprint("Error:")     // Error:
//	ui.Success.Sprint("done")     // done
//
// Secrets themselves are never formatted; they are printed byte for byte.
package ui
