// Package hooking lets observers attach to the projection engine without the
// engine knowing who is listening.
package hooking

// HookPos names a position in the execution of a hookable object where hooks
// can fire.
type HookPos struct {
	Name string
}

// HookCtx carries the information about the site where a hook is triggered.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   any
}

// Hookable is an object that accepts hooks.
type Hookable interface {
	// AcceptHook registers a hook.
	AcceptHook(hook Hook)

	// NumHooks returns the number of hooks registered.
	NumHooks() int

	// Hooks returns all the hooks registered.
	Hooks() []Hook
}

// A Hook is a short piece of program that a hookable object invokes at
// defined positions.
type Hook interface {
	// Func determines what to do when the hook is invoked.
	Func(ctx HookCtx)
}

// A HookableBase provides the hook bookkeeping for types that implement the
// Hookable interface.
type HookableBase struct {
	hookList []Hook
}

// NumHooks returns the number of hooks registered.
func (h *HookableBase) NumHooks() int {
	return len(h.hookList)
}

// Hooks returns all the hooks registered.
func (h *HookableBase) Hooks() []Hook {
	return h.hookList
}

// AcceptHook registers a hook.
func (h *HookableBase) AcceptHook(hook Hook) {
	h.mustNotHaveDuplicatedHook(hook)
	h.hookList = append(h.hookList, hook)
}

func (h *HookableBase) mustNotHaveDuplicatedHook(hook Hook) {
	for _, registered := range h.hookList {
		if registered == hook {
			panic("duplicated hook")
		}
	}
}

// InvokeHook triggers the registered hooks in registration order.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.hookList {
		hook.Func(ctx)
	}
}
