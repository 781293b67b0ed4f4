package main

import (
	"fmt"

	"github.com/fwojciec/cmdref"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	loader, err := deps.Loader(c.Source)
	if err != nil {
		return err
	}

	doc, err := loader.Load(deps.Ctx)
	if err != nil {
		return err
	}

	categories, err := cmdref.Normalize(doc)
	if err != nil {
		return err
	}

	categories = cmdref.Filter(categories, c.Filter)
	if len(categories) == 0 {
		fmt.Fprintln(deps.Stdout, "No commands found.")
		return nil
	}

	d := cmdref.NewDisclosure(c.Expand...)
	if c.All {
		for _, category := range categories {
			if !d.IsExpanded(category.ID) {
				d = d.Toggle(category.ID)
			}
		}
	}

	fmt.Fprintln(deps.Stdout, cmdref.FormatCategories(categories, d))
	return nil
}
