package commands

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/housebuilder/internal/house"
)

// VariantsCmd implements the 'variants' command.
type VariantsCmd struct {
	Names bool `help:"Print variant names only"`
}

func (v *VariantsCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}

	var sb strings.Builder
	for _, name := range catalog.Names() {
		sb.WriteString(name)
		sb.WriteByte('\n')
		if v.Names {
			continue
		}
		variant, err := catalog.Lookup(name)
		if err != nil {
			return err
		}
		for _, s := range house.Steps() {
			e, _ := variant.Entry(s)
			fmt.Fprintf(&sb, "  %-6s %s | %s\n", s, e.Part, e.Page)
		}
	}
	_, err = fmt.Fprint(g.Out, sb.String())
	return err
}
