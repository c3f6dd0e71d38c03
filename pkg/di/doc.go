// Package di wires k3d-manager's shared collaborators through samber/do.
//
// Every command invocation gets a fresh injector built from the runtime's modules,
// so tests can swap the command runner or sleeper without touching globals.
package di
