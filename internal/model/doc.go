package model

// Package model defines domain data structures shared across the app: transfer
// records and requests, service status codes, the loading button states and the
// payload handed to the detail view.
