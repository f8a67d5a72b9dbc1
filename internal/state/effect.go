package state

import (
	"context"
	"fmt"

	"github.com/five82/notes/internal/notestore"
)

// Effect is a store call requested by Reduce.
type Effect interface {
	effect()
}

type (
	ListRequest   struct{}
	GetRequest    struct{ ID string }
	CreateRequest struct{ Draft notestore.Draft }
	UpdateRequest struct {
		ID    string
		Draft notestore.Draft
	}
	DeleteRequest struct{ ID string }
)

func (ListRequest) effect()   {}
func (GetRequest) effect()    {}
func (CreateRequest) effect() {}
func (UpdateRequest) effect() {}
func (DeleteRequest) effect() {}

// Perform runs eff against store and returns the result event to feed back
// into Reduce. It blocks for one round trip.
func Perform(ctx context.Context, store notestore.Store, eff Effect) Event {
	switch e := eff.(type) {
	case ListRequest:
		notes, err := store.List(ctx)
		return Listed{Notes: notes, Err: err}
	case GetRequest:
		note, err := store.Get(ctx, e.ID)
		return Fetched{ID: e.ID, Note: note, Err: err}
	case CreateRequest:
		note, err := store.Create(ctx, e.Draft)
		return Created{Note: note, Err: err}
	case UpdateRequest:
		note, err := store.Update(ctx, e.ID, e.Draft)
		return Updated{ID: e.ID, Note: note, Err: err}
	case DeleteRequest:
		return Deleted{ID: e.ID, Err: store.Delete(ctx, e.ID)}
	default:
		panic(fmt.Sprintf("state: unknown effect %T", eff))
	}
}
