package recordings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/recordingpage/internal/config"
	"github.com/teemow/recordingpage/internal/zoom"
)

func TestMatchMeetings(t *testing.T) {
	meetings := []zoom.Meeting{
		{ID: 111, Topic: "first"},
		{ID: 222, Topic: "second"},
		{ID: 333, Topic: "third"},
	}

	tests := []struct {
		name      string
		meetingID string
		wantIDs   []int64
	}{
		{
			name:      "exact numeric match",
			meetingID: "222",
			wantIDs:   []int64{222},
		},
		{
			name:      "no match",
			meetingID: "999",
			wantIDs:   []int64{},
		},
		{
			name:      "non-numeric id matches nothing",
			meetingID: "abc",
			wantIDs:   []int64{},
		},
		{
			name:      "empty id matches nothing",
			meetingID: "",
			wantIDs:   []int64{},
		},
		{
			name:      "fractional id matches nothing",
			meetingID: "222.5",
			wantIDs:   []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := MatchMeetings(meetings, tt.meetingID)

			require.NotNil(t, matched)
			gotIDs := []int64{}
			for _, m := range matched {
				gotIDs = append(gotIDs, m.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestMatchMeetings_DuplicateIDs(t *testing.T) {
	meetings := []zoom.Meeting{
		{ID: 42, Topic: "a"},
		{ID: 42, Topic: "b"},
	}

	matched := MatchMeetings(meetings, "42")
	assert.Len(t, matched, 2)
}

func TestDisplayFiles_RichFiltersAndSorts(t *testing.T) {
	files := []zoom.RecordingFile{
		{FileType: zoom.FileTypeChat, PlayURL: "https://zoom.example/chat"},
		{FileType: zoom.FileTypeM4A, PlayURL: "u1"},
		{FileType: zoom.FileTypeSummary, PlayURL: "https://zoom.example/summary"},
		{FileType: zoom.FileTypeMP4, PlayURL: "u2"},
	}

	display := DisplayFiles(files, config.ModeRich)

	require.Len(t, display, 2)
	assert.Equal(t, LabelVideo, display[0].Label)
	assert.Equal(t, "u2", display[0].URL)
	assert.Equal(t, LabelAudio, display[1].Label)
	assert.Equal(t, "u1", display[1].URL)
}

func TestDisplayFiles_RichStableAmongEqualRank(t *testing.T) {
	files := []zoom.RecordingFile{
		{FileType: "TRANSCRIPT", PlayURL: "t1"},
		{FileType: zoom.FileTypeMP4, PlayURL: "v1"},
		{FileType: "TIMELINE", PlayURL: "t2"},
		{FileType: zoom.FileTypeMP4, PlayURL: "v2"},
	}

	display := DisplayFiles(files, config.ModeRich)

	require.Len(t, display, 4)
	// Videos first in original relative order, then the unknown types in
	// their original relative order.
	assert.Equal(t, "v1", display[0].URL)
	assert.Equal(t, "v2", display[1].URL)
	assert.Equal(t, "t1", display[2].URL)
	assert.Equal(t, "t2", display[3].URL)
	assert.Equal(t, "TRANSCRIPT", display[2].Label)
}

func TestDisplayFiles_SkipsFilesWithoutPlayURL(t *testing.T) {
	files := []zoom.RecordingFile{
		{FileType: zoom.FileTypeMP4, PlayURL: ""},
		{FileType: zoom.FileTypeM4A, PlayURL: "u1"},
	}

	for _, mode := range []config.DisplayMode{config.ModePlain, config.ModeRich} {
		display := DisplayFiles(files, mode)
		require.Len(t, display, 1, "mode %s", mode)
		assert.Equal(t, "u1", display[0].URL)
	}
}

func TestDisplayFiles_PlainKeepsOrderAndRawTypes(t *testing.T) {
	files := []zoom.RecordingFile{
		{FileType: zoom.FileTypeChat, PlayURL: "c1", RecordingStart: "2024-05-01T15:00:00Z"},
		{FileType: zoom.FileTypeM4A, PlayURL: "a1"},
		{FileType: zoom.FileTypeMP4, PlayURL: "v1"},
	}

	display := DisplayFiles(files, config.ModePlain)

	require.Len(t, display, 3)
	assert.Equal(t, zoom.FileTypeChat, display[0].Label)
	assert.Equal(t, "2024-05-01T15:00:00Z", display[0].RecordedAt)
	assert.Equal(t, zoom.FileTypeM4A, display[1].Label)
	assert.Equal(t, zoom.FileTypeMP4, display[2].Label)
}

func TestDisplayFiles_Empty(t *testing.T) {
	display := DisplayFiles(nil, config.ModeRich)
	require.NotNil(t, display)
	assert.Empty(t, display)
}
