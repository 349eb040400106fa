package recordings

import (
	"sort"
	"strconv"

	"github.com/teemow/recordingpage/internal/config"
	"github.com/teemow/recordingpage/internal/zoom"
)

// Display labels for the rich listing.
const (
	LabelVideo = "VIDEO"
	LabelAudio = "AUDIO"
)

// DisplayFile is one line of the rendered file listing.
type DisplayFile struct {
	// Label is the text of the link (VIDEO, AUDIO, or the raw file type)
	Label string

	// URL is the playable link target
	URL string

	// RecordedAt is the raw per-file recording start timestamp; the page
	// layer formats it for display
	RecordedAt string
}

// MatchMeetings filters the listed meetings down to the ones whose numeric id
// equals the configured meeting id. Comparison is numeric, so "123" matches a
// returned id of 123 and nothing else; an unparseable configured id matches
// nothing.
func MatchMeetings(meetings []zoom.Meeting, meetingID string) []zoom.Meeting {
	target, err := strconv.ParseInt(meetingID, 10, 64)
	if err != nil {
		return []zoom.Meeting{}
	}

	matched := []zoom.Meeting{}
	for _, m := range meetings {
		if m.ID == target {
			matched = append(matched, m)
		}
	}
	return matched
}

// fileRank orders media types for the rich listing: video first, audio
// second, everything else after in original order.
func fileRank(fileType string) int {
	switch fileType {
	case zoom.FileTypeMP4:
		return 1
	case zoom.FileTypeM4A:
		return 2
	default:
		return 99
	}
}

// label derives the link text for a file type in the rich listing.
func label(fileType string) string {
	switch fileType {
	case zoom.FileTypeMP4:
		return LabelVideo
	case zoom.FileTypeM4A:
		return LabelAudio
	default:
		return fileType
	}
}

// DisplayFiles turns a meeting's recording files into the ordered, labeled
// entries the page shows. Files without a playable URL never produce an
// entry.
//
// In rich mode, chat transcripts and summaries are dropped and the remainder
// is stable-sorted video before audio before anything else. In plain mode
// every playable file is kept in API order with its raw file type as label.
func DisplayFiles(files []zoom.RecordingFile, mode config.DisplayMode) []DisplayFile {
	kept := make([]zoom.RecordingFile, 0, len(files))
	for _, f := range files {
		if mode == config.ModeRich && (f.FileType == zoom.FileTypeSummary || f.FileType == zoom.FileTypeChat) {
			continue
		}
		kept = append(kept, f)
	}

	if mode == config.ModeRich {
		sort.SliceStable(kept, func(i, j int) bool {
			return fileRank(kept[i].FileType) < fileRank(kept[j].FileType)
		})
	}

	display := []DisplayFile{}
	for _, f := range kept {
		if f.PlayURL == "" {
			continue
		}
		entry := DisplayFile{
			URL:        f.PlayURL,
			RecordedAt: f.RecordingStart,
		}
		if mode == config.ModeRich {
			entry.Label = label(f.FileType)
		} else {
			entry.Label = f.FileType
		}
		display = append(display, entry)
	}
	return display
}
