// Package recordings selects and orders the recording files shown on the
// page.
//
// It is pure data transformation: matching listed meetings against the
// configured numeric meeting id, dropping non-playable artifacts, ordering
// media (video before audio) and deriving display labels. Network and
// rendering concerns live in the zoom and page packages.
package recordings
