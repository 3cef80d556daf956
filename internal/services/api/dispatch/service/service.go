// Package service contains the dispatch workflow: credential, validation, one remote call
package service

import (
	"context"
	"errors"
	"sort"
	"time"

	perr "patchgate/internal/platform/errors"
	"patchgate/internal/platform/logger"
	"patchgate/internal/platform/net/http/bind"
	pstrings "patchgate/internal/platform/strings"
	"patchgate/internal/services/api/dispatch/domain"

	"github.com/google/uuid"
)

// Service is the public service port
type Service interface{ domain.ServicePort }

// Options control service behavior
type Options struct {
	// Configured reports whether a credential exists, checked before anything else
	Configured func() bool

	// Ref is the git ref every dispatch runs on, callers cannot change it
	Ref string

	// Default is the workflow used by the unnamed target
	Default string

	// Targets maps extra target names to workflow files
	Targets map[string]string
}

// DefaultTarget is the name the unnamed route dispatches to
const DefaultTarget = "default"

// MessageNoCredential is returned whenever dispatch runs without a token
const MessageNoCredential = "GitHub token not set in environment"

// Svc implements the service port
type Svc struct {
	d          domain.Dispatcher
	configured func() bool
	ref        string
	workflows  map[string]string
	names      []string

	newID func() uuid.UUID
	now   func() time.Time
}

// New constructs the service; d and opt.Configured are required
func New(d domain.Dispatcher, opt Options) *Svc {
	if d == nil {
		panic("dispatch.Service requires a non nil Dispatcher")
	}
	if opt.Configured == nil {
		panic("dispatch.Service requires a Configured check")
	}
	opt.Ref = pstrings.Or(opt.Ref, "main")

	wf := map[string]string{}
	for name, file := range opt.Targets {
		if name != "" && file != "" {
			wf[name] = file
		}
	}
	if opt.Default != "" {
		wf[DefaultTarget] = opt.Default
	}
	names := make([]string, 0, len(wf))
	for n := range wf {
		names = append(names, n)
	}
	sort.Strings(names)

	return &Svc{
		d:          d,
		configured: opt.Configured,
		ref:        opt.Ref,
		workflows:  wf,
		names:      names,
		newID:      uuid.New,
		now:        time.Now,
	}
}

// Configured reports whether dispatch has a credential
func (s *Svc) Configured() bool { return s.configured() }

// Targets lists target names; workflow files stay server side
func (s *Svc) Targets() domain.Targets {
	return domain.Targets{Default: DefaultTarget, Names: append([]string(nil), s.names...)}
}

// Dispatch validates in and triggers the workflow bound to target exactly once
// an empty target means the default workflow
func (s *Svc) Dispatch(ctx context.Context, target string, in domain.PatchRequest) (domain.Accepted, error) {
	if target == "" {
		target = DefaultTarget
	}
	log := logger.C(ctx).With().Str("target", target).Logger()

	if !s.configured() {
		log.Error().Msg("dispatch refused, credential not configured")
		return domain.Accepted{}, perr.WithOp(perr.Configf(MessageNoCredential), "dispatch.credential")
	}

	if err := validate(in); err != nil {
		log.Info().Strs("missing", domain.MissingFields(err)).Msg("dispatch refused, missing fields")
		return domain.Accepted{}, err
	}

	workflow, ok := s.workflows[target]
	if !ok {
		return domain.Accepted{}, perr.WithOp(perr.NotFoundf("unknown dispatch target %q", target), "dispatch.target")
	}

	id := s.newID()
	start := s.now()
	err := s.d.Dispatch(ctx, domain.Call{Workflow: workflow, Ref: s.ref, Inputs: in.Inputs()})
	ev := log.Info()
	if err != nil {
		ev = log.Warn()
	}
	ev.Str("dispatch_id", id.String()).
		Str("workflow", workflow).
		Str("outcome", string(domain.OutcomeOf(err))).
		Dur("elapsed", s.now().Sub(start)).
		Msg("workflow dispatch")

	if err != nil {
		return domain.Accepted{}, perr.WithOp(classify(err), "dispatch.remote")
	}
	return domain.Accepted{DispatchID: id, Target: target, Workflow: workflow, Ref: s.ref}, nil
}

// validate runs the struct rules and turns every failing field into one error
func validate(in domain.PatchRequest) error {
	err := bind.Get().Validator.Struct(in)
	if err == nil {
		return nil
	}
	fields := bind.FailedFields(err)
	if len(fields) == 0 {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "validator internal error")
	}
	mf := &domain.MissingFieldsError{Fields: fields}
	return perr.WithField(perr.Wrap(mf, perr.ErrorCodeValidation, mf.Error()), fields[0])
}

// classify keeps project errors as they are and files anything else as a transport failure
func classify(err error) error {
	if _, ok := perr.As(err); ok {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return perr.Wrap(err, perr.ErrorCodeUpstreamTransport, "timeout")
	}
	return perr.Wrap(err, perr.ErrorCodeUpstreamTransport, "workflow dispatch failed")
}
