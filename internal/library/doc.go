package library

// Package library reads the series directory: it derives the ordered episode
// list from numerically named video files, deletes watched files on request,
// and watches the directory for external changes.
