package system

import (
	"fmt"
	"os"

	"github.com/mhollis/serene/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Reinitialize even if storage already exists. Existing data is discarded."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := os.Remove(ctx.Store.GetConfigPath()); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized serene storage at %s\n", ctx.Store.GetConfigPath())
	return nil
}
