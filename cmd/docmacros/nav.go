package main

import (
	"fmt"

	"github.com/fwojciec/docmacros"
	"github.com/fwojciec/docmacros/macros"
)

// Run executes the nav command.
func (c *NavCmd) Run(deps *Dependencies) error {
	nav, err := deps.Nav()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmacros.ErrorMessage(err))
		return err
	}

	state := docmacros.NewState()
	macros.NewCapture(state, deps.Logger).OnNav(deps.Ctx, nav)
	env := macros.NewEnv(state, deps.Pages, deps.Vocabularies, deps.Site.DocsDir, deps.Logger)

	out, err := env.GlobalNav(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmacros.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, out)
	return nil
}
