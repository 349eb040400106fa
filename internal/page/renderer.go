package page

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/teemow/recordingpage/internal/config"
	"github.com/teemow/recordingpage/internal/recordings"
	"github.com/teemow/recordingpage/internal/zoom"
)

// displayTimeFormat is the human form of recording timestamps:
// month abbreviation, day, 4-digit year, 12-hour clock.
const displayTimeFormat = "Jan 2, 2006 3:04 PM"

// FileView is one rendered file line.
type FileView struct {
	Label      string
	URL        string
	RecordedAt string
}

// MeetingView is one rendered meeting block.
type MeetingView struct {
	Topic     string
	StartTime string
	Files     []FileView
}

// PageData is everything the page template needs.
type PageData struct {
	MeetingID string
	Meetings  []MeetingView
	Rich      bool
}

// Renderer builds and renders the recordings page for one deployment
// configuration. It is immutable and safe for concurrent use.
type Renderer struct {
	mode config.DisplayMode
	loc  *time.Location
}

// NewRenderer creates a renderer for the given display mode and IANA
// timezone name.
func NewRenderer(mode config.DisplayMode, timezone string) (*Renderer, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load display timezone %q: %w", timezone, err)
	}
	return &Renderer{mode: mode, loc: loc}, nil
}

// FormatTimestamp converts an ISO-8601 timestamp into the display form in
// the configured zone. Empty or unparseable input formats to an empty
// string, never an error.
func (r *Renderer) FormatTimestamp(iso string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return ""
	}
	return t.In(r.loc).Format(displayTimeFormat)
}

// BuildPage assembles the template data for the matched meetings.
// The meeting id is echoed verbatim even when nothing matched.
func (r *Renderer) BuildPage(meetingID string, matched []zoom.Meeting) PageData {
	data := PageData{
		MeetingID: meetingID,
		Rich:      r.mode == config.ModeRich,
	}

	for _, m := range matched {
		view := MeetingView{
			Topic:     m.Topic,
			StartTime: r.FormatTimestamp(m.StartTime),
		}
		for _, f := range recordings.DisplayFiles(m.RecordingFiles, r.mode) {
			view.Files = append(view.Files, FileView{
				Label:      f.Label,
				URL:        f.URL,
				RecordedAt: r.FormatTimestamp(f.RecordedAt),
			})
		}
		data.Meetings = append(data.Meetings, view)
	}

	return data
}

// Render writes the complete HTML document for the page data.
// All dynamic values pass through html/template escaping, since every one of
// them originates from the upstream API response.
func (r *Renderer) Render(w io.Writer, data PageData) error {
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to execute page template: %w", err)
	}
	return nil
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Meeting Recordings</title>
{{- if .Rich}}
<style>
  body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 0; background: #f5f6f8; color: #1f2430; }
  main { max-width: 640px; margin: 0 auto; padding: 24px 16px; }
  h1 { font-size: 1.5rem; margin-bottom: 4px; }
  .subtitle { color: #5b6472; margin-top: 0; }
  .meeting { background: #fff; border-radius: 8px; padding: 16px; margin: 16px 0; box-shadow: 0 1px 3px rgba(0,0,0,.08); }
  .meeting h2 { font-size: 1.1rem; margin: 0 0 4px; }
  .start { color: #5b6472; font-size: .9rem; margin: 0 0 12px; }
  .file { margin: 8px 0; }
  .file a { color: #2d6cdf; text-decoration: none; font-weight: 600; }
  .file a:hover { text-decoration: underline; }
  .empty { color: #5b6472; }
  .refresh { display: inline-block; margin-top: 16px; color: #2d6cdf; }
</style>
{{- end}}
</head>
<body>
<main>
<h1>Meeting Recordings</h1>
<p class="subtitle">Meeting ID: {{.MeetingID}}</p>
{{- if not .Meetings}}
<p class="empty">No recordings found for this meeting yet.</p>
{{- else}}
{{- range .Meetings}}
<div class="meeting">
{{- if $.Rich}}
<h2>{{.Topic}}</h2>
{{- end}}
<p class="start">{{.StartTime}}</p>
{{- range .Files}}
<p class="file"><a href="{{.URL}}" target="_blank" rel="noopener noreferrer">{{.Label}}</a>{{if .RecordedAt}}{{if not $.Rich}} &mdash; {{.RecordedAt}}{{end}}{{end}}</p>
{{- end}}
</div>
{{- end}}
{{- end}}
{{- if .Rich}}
<a class="refresh" href="" target="_self">Refresh</a>
{{- end}}
</main>
</body>
</html>
`))
