// Package http implements the HTTP surface of work-notes.
//
// It serves the server-rendered note pages (list, create, view, edit,
// download) and the small JSON API used by notesctl. Request tracing,
// access logging, compression and the optional basic-auth gate are handled
// here before requests reach the service layer.
package http
