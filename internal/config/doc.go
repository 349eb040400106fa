// Package config loads and validates the deployment configuration for the
// recordings page.
//
// All values are sourced from the process environment once per process and
// carried in an explicit Config struct, so the handler and the tests never
// read environment variables themselves.
//
// Required variables: ZOOM_ACCOUNT_ID, ZOOM_CLIENT_ID, ZOOM_CLIENT_SECRET,
// MEETING_ID. Optional: ZOOM_USER_ID (default "me"), DISPLAY_MODE
// ("plain" or "rich", default "rich"), DISPLAY_TIMEZONE (IANA name,
// default "America/New_York").
package config
