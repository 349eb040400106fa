// Package page renders the recordings HTML document.
//
// The renderer is configured once per deployment with a display mode and a
// fixed timezone, turns matched meetings into template data and executes a
// single html/template document. Dynamic values (meeting id, topic, file
// URLs) are auto-escaped because they originate from an external API
// response.
package page
