// Package logging wraps the structured logger behind a small interface
// so CLI, server, and dashboard components log the same way without
// importing the backend directly. The default adapter is zerolog; a
// stdlib adapter exists for callers that only have a *log.Logger.
package logging
