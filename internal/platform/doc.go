package platform

// Package platform contains OS integration glue: filesystem helpers and
// revealing files in the system file manager.
