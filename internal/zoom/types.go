package zoom

import "fmt"

// Recording file types returned by the Zoom API.
const (
	FileTypeMP4     = "MP4"
	FileTypeM4A     = "M4A"
	FileTypeChat    = "CHAT"
	FileTypeSummary = "SUMMARY"
)

// TokenResponse is the body of a successful account-credentials token grant.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope"`
}

// ListRecordingsResponse is the body of GET /v2/users/{userId}/recordings.
type ListRecordingsResponse struct {
	From         string    `json:"from"`
	To           string    `json:"to"`
	PageCount    int       `json:"page_count"`
	PageSize     int       `json:"page_size"`
	TotalRecords int       `json:"total_records"`
	Meetings     []Meeting `json:"meetings"`
}

// Meeting is one recorded meeting as returned by the recordings list.
// The object defined at https://developers.zoom.us/docs/api/meetings/
type Meeting struct {
	UUID           string          `json:"uuid"`
	ID             int64           `json:"id"`
	HostID         string          `json:"host_id"`
	Topic          string          `json:"topic"`
	Type           int             `json:"type"`
	StartTime      string          `json:"start_time"`
	Timezone       string          `json:"timezone"`
	Duration       int             `json:"duration"`
	TotalSize      int64           `json:"total_size"`
	RecordingCount int             `json:"recording_count"`
	ShareURL       string          `json:"share_url"`
	RecordingFiles []RecordingFile `json:"recording_files"`
}

// RecordingFile is one media artifact attached to a recorded meeting.
type RecordingFile struct {
	ID             string `json:"id"`
	MeetingID      string `json:"meeting_id"`
	FileType       string `json:"file_type"`
	FileExtension  string `json:"file_extension"`
	FileSize       int64  `json:"file_size"`
	PlayURL        string `json:"play_url"`
	DownloadURL    string `json:"download_url"`
	RecordingStart string `json:"recording_start"`
	RecordingEnd   string `json:"recording_end"`
	RecordingType  string `json:"recording_type"`
	Status         string `json:"status"`
}

// APIError represents a failed call against the Zoom API.
type APIError struct {
	// Op is the operation that failed (e.g., "token", "listRecordings")
	Op string

	// StatusCode is the upstream HTTP status, or 0 for transport errors
	StatusCode int

	// Body is the upstream response body, if one was read
	Body string

	// Err is the underlying error
	Err error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("zoom %s: status %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("zoom %s: %v", e.Op, e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *APIError) Unwrap() error {
	return e.Err
}
