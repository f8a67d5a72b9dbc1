// Package devstore is a small in-memory note store that serves the CRUD
// surface the notes client consumes:
//
//	GET    /notes        list of {id, title, timestamp}, newest first
//	GET    /notes/{id}   full note, 404 when unknown
//	POST   /notes        create from {title, content}, 201 with the note
//	PUT    /notes/{id}   replace title and content, 200 with the note
//	DELETE /notes/{id}   204 on success
//
// Ids are UUIDs and timestamps RFC3339 in UTC. Titles are normalized
// (trimmed, inner whitespace collapsed) so clients can observe server-side
// normalization after a save. State can be seeded from and written back to a
// YAML snapshot. It exists for local development and for tests; it is not a
// production backend.
package devstore
