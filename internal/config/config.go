package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Environment variable names read by FromEnv.
const (
	EnvAccountID    = "ZOOM_ACCOUNT_ID"
	EnvClientID     = "ZOOM_CLIENT_ID"
	EnvClientSecret = "ZOOM_CLIENT_SECRET"
	EnvMeetingID    = "MEETING_ID"
	EnvUserID       = "ZOOM_USER_ID"
	EnvDisplayMode  = "DISPLAY_MODE"
	EnvTimezone     = "DISPLAY_TIMEZONE"
)

// DefaultUserID is the Zoom API sentinel for "the authenticated user".
const DefaultUserID = "me"

// DefaultTimezone is the display timezone used when DISPLAY_TIMEZONE is unset.
const DefaultTimezone = "America/New_York"

// DefaultPageSize is the upper bound on one page of the recordings list.
// The service never paginates past the first page.
const DefaultPageSize = 200

// DisplayMode selects how recording files are listed on the page.
type DisplayMode string

const (
	// ModePlain lists every playable file with its raw file type and a
	// formatted per-file recording timestamp.
	ModePlain DisplayMode = "plain"

	// ModeRich drops chat transcripts and summaries, orders video before
	// audio and relabels the media types (MP4 -> VIDEO, M4A -> AUDIO).
	ModeRich DisplayMode = "rich"
)

// ErrMissingEnv is returned by Validate when any of the four required
// environment variables is absent or empty. The message names all four so an
// operator can fix the deployment in one pass.
var ErrMissingEnv = fmt.Errorf("Missing env vars. Set %s, %s, %s, %s in the environment.",
	EnvAccountID, EnvClientID, EnvClientSecret, EnvMeetingID)

// Config holds everything one page render needs. It is built once and passed
// explicitly into the handler so tests never have to mutate process state.
type Config struct {
	// AccountID is the account_credentials grant parameter.
	AccountID string

	// ClientID and ClientSecret form the Basic credential for the token
	// exchange.
	ClientID     string
	ClientSecret string

	// MeetingID is the target meeting identifier, kept as the raw string so
	// the page subtitle can echo it verbatim.
	MeetingID string

	// UserID is the path segment for the recordings-list call.
	UserID string

	// DisplayMode selects the plain or rich file listing.
	DisplayMode DisplayMode

	// Timezone is the IANA zone name for timestamp display.
	Timezone string

	// PageSize bounds the single recordings-list page.
	PageSize int
}

// FromEnv reads the configuration from the process environment.
// Defaults are applied for the optional values; Validate reports the
// required ones.
func FromEnv() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault(EnvUserID, DefaultUserID)
	v.SetDefault(EnvDisplayMode, string(ModeRich))
	v.SetDefault(EnvTimezone, DefaultTimezone)

	return &Config{
		AccountID:    v.GetString(EnvAccountID),
		ClientID:     v.GetString(EnvClientID),
		ClientSecret: v.GetString(EnvClientSecret),
		MeetingID:    v.GetString(EnvMeetingID),
		UserID:       v.GetString(EnvUserID),
		DisplayMode:  DisplayMode(v.GetString(EnvDisplayMode)),
		Timezone:     v.GetString(EnvTimezone),
		PageSize:     DefaultPageSize,
	}
}

// Validate checks the required fields and normalizes the optional ones.
func (c *Config) Validate() error {
	if c.AccountID == "" || c.ClientID == "" || c.ClientSecret == "" || c.MeetingID == "" {
		return ErrMissingEnv
	}
	if c.UserID == "" {
		c.UserID = DefaultUserID
	}
	switch c.DisplayMode {
	case ModePlain, ModeRich:
	case "":
		c.DisplayMode = ModeRich
	default:
		return fmt.Errorf("invalid display mode %q: must be %q or %q", c.DisplayMode, ModePlain, ModeRich)
	}
	if c.Timezone == "" {
		c.Timezone = DefaultTimezone
	}
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	return nil
}
