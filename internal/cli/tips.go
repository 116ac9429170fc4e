package cli

import (
	"fmt"

	"github.com/mhollis/serene/internal/tips"
)

type TipsCmd struct {
	All bool `help:"Show every coping tip instead of a random one."`
}

func (c *TipsCmd) Run(ctx *Context) error {
	if c.All {
		for i, tip := range tips.All() {
			fmt.Printf("%d. %s\n", i+1, tip)
		}
		return nil
	}
	fmt.Println(tips.Random())
	return nil
}
