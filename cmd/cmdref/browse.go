package main

// Run executes the browse command.
func (c *BrowseCmd) Run(deps *Dependencies) error {
	loader, err := deps.Loader(c.Source)
	if err != nil {
		return err
	}
	return deps.Browse(deps.Ctx, loader)
}
