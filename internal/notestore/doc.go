// Package notestore provides an HTTP client for the remote note store.
//
// # Overview
//
// The note store exposes plain CRUD over JSON:
//
//   - GET /notes: summaries {id, title, timestamp?} in server order
//   - GET /notes/{id}: the full note; 404 when the id is gone
//   - POST /notes: create from {title, content}
//   - PUT /notes/{id}: replace title and content
//   - DELETE /notes/{id}: remove, empty body
//
// Client implements Store, the interface the synchronization engine in
// package state depends on. Tests substitute in-memory fakes for it.
//
// # Client Usage
//
//	client, err := notestore.NewClient("http://localhost:5000")
//	if err != nil {
//		return err
//	}
//	notes, err := client.List(ctx)
//
// A bare host:port is accepted and a path prefix on the base URL is kept,
// so "http://host/api" resolves notes under /api/notes.
//
// # Error Handling
//
// Every call is exactly one round trip: no retries, no caching. Any failure
// (transport error, non-2xx status, undecodable body) comes back as *Error
// carrying the operation, the note id and the HTTP status when there was
// one. Error.Message gives the short text shown to the user, for example
// "Failed to create note". A 404 also matches ErrNotFound:
//
//	if errors.Is(err, notestore.ErrNotFound) {
//		// note was deleted elsewhere
//	}
//
// Ids are strings on the Go side; numeric ids in responses are accepted and
// converted.
package notestore
