// Package router moves between menu screens and remembers where the user
// was on each one.
//
// Every screen is a function from a Visit to a result. A single transition
// function decides what comes next, so the whole navigation graph lives in
// one place. Before moving forward the transition pushes the current screen
// together with its menu's Snapshot; going back pops that entry and the
// screen rebuilds its menu with Settings.Resume, landing on the same row
// with the same scroll position.
//
// # Basic Usage
//
//	const (
//	    ScreenMain router.Screen = iota
//	    ScreenAudio
//	)
//
//	r := router.New()
//
//	r.Register(ScreenMain, func(v router.Visit) (any, error) {
//	    settings := minimenu.DefaultSettings()
//	    settings.Resume = v.Resume
//	    return runMainMenu(settings) // returns a mainResult
//	})
//
//	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, router.Visit) {
//	    switch from {
//	    case ScreenMain:
//	        res := result.(mainResult)
//	        stack.Push(from, nil, &res.Snapshot)
//	        return res.Next, router.Visit{}
//	    case ScreenAudio:
//	        return router.Back(stack)
//	    }
//	    return router.ScreenExit, router.Visit{}
//	})
//
//	err := r.Run(ScreenMain, nil)
//
// BackTo unwinds several levels at once, e.g. straight to the main menu.
//
// A screen that returns minimenu.ErrCancelled is treated as a back press:
// the router pops the stack itself, and exits once the stack is empty.
package router
