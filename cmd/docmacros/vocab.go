package main

import (
	"fmt"

	"github.com/fwojciec/docmacros"
	"github.com/fwojciec/docmacros/macros"
)

// Run executes the vocab command.
func (c *VocabCmd) Run(deps *Dependencies) error {
	env := macros.NewEnv(docmacros.NewState(), deps.Pages, deps.Vocabularies, deps.Site.DocsDir, deps.Logger)
	fmt.Fprintln(deps.Stdout, env.VocabularyTable(deps.Ctx, c.Category))
	return nil
}
