package module

import (
	"context"

	gh "patchgate/internal/adapters/github"
	"patchgate/internal/services/api/dispatch/domain"
)

// ghDispatcher adapts the GitHub client to the domain Dispatcher port for one owner/repo
type ghDispatcher struct {
	c     *gh.Client
	owner string
	repo  string
}

func (g ghDispatcher) Dispatch(ctx context.Context, call domain.Call) error {
	return g.c.DispatchWorkflow(ctx, gh.Dispatch{
		Owner:    g.owner,
		Repo:     g.repo,
		Workflow: call.Workflow,
		Ref:      call.Ref,
		Inputs:   call.Inputs,
	})
}
