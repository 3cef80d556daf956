package modkit

import "patchgate/internal/modkit/module"

// Module is the common surface for API modules that can mount routes and expose ports
// aliased from the module package so ports and registry helpers accept it directly
type Module = module.Module

// Builder constructs a Module from shared deps and options
// modules expose New(deps Deps, opts ...Option) Module and match this shape
type Builder func(Deps, ...Option) Module
