package client

import (
	"context"

	"commentboard/internal/models"

	log "github.com/sirupsen/logrus"
)

// ViewModel mirrors server state for a rendering layer. It holds the derived
// thread tree, re-derives it on every fetch and applies like toggles in place
// without a refetch. Failures are logged and leave the previous state intact.
type ViewModel struct {
	api     *Client
	threads []Thread
}

func NewViewModel(api *Client) *ViewModel {
	return &ViewModel{api: api, threads: []Thread{}}
}

func (vm *ViewModel) Threads() []Thread {
	return vm.threads
}

// Refresh refetches one page of the listing and re-derives the tree.
func (vm *ViewModel) Refresh(ctx context.Context, page, limit int) error {
	res, err := vm.api.List(ctx, page, limit)
	if err != nil {
		log.Errorf("[client] failed to fetch comments: %v", err)
		return err
	}
	vm.threads = BuildThreads(res.Data)
	return nil
}

// ToggleLike calls the server and patches the returned likes count into the
// local tree, wherever the comment sits.
func (vm *ViewModel) ToggleLike(ctx context.Context, id models.FlexID) error {
	updated, err := vm.api.ToggleLike(ctx, uint(id))
	if err != nil {
		log.Errorf("[client] failed to toggle like on comment %d: %v", uint(id), err)
		return err
	}
	vm.threads = PatchLikes(vm.threads, id, updated.Likes)
	return nil
}
