package platform

// Package platform contains OS integration glue: filesystem helpers for the
// config directory and registration of the widget as a login-time autostart
// program (registry Run key on Windows, no-op elsewhere).
