package shell

// Package shell contains the OS-shell integration that pins the widget behind
// the desktop icons: locating (or forcing creation of) Explorer's hidden
// WorkerW wallpaper layer, reparenting the widget's native window into it, and
// the acrylic composition effect. Everything here relies on undocumented
// Explorer behavior, so the window class names and messages are isolated as
// constants and the rest of the app only sees the Locator and Reparenter
// interfaces. Non-Windows builds get stubs that report the layer as
// unavailable, which makes the widget fall back to a normal floating window.
