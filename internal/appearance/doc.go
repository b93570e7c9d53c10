package appearance

// Package appearance handles the widget's visual configuration: panel and dot
// colors, grid layout and corner rounding. Values load from a user-editable
// TOML file with built-in defaults, and a filesystem watcher hot-reloads the
// widget when the file changes.
