package common

// DateLayout is the ISO-8601 layout used when a registration date has to be
// generated server-side.
const DateLayout = "2006-01-02T15:04:05.000Z"
