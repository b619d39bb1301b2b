package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rosbox/rosbox/internal/config"
	"github.com/rosbox/rosbox/internal/paths"
)

// Represents the 'rosbox init' command.
type InitCmd struct {
	Force bool `help:"Overwrite an existing environment description."`
}

// Executes the init command.
//
// Scaffolds a starter environment description with placeholder sentinels.
// Installing the container runtime itself is out of scope; the scaffold is
// the only bootstrap artifact this tool owns.
func (c *InitCmd) Run(ctx context.Context) error {
	path := paths.InitConfigFile(RootCmd.Root)

	if !c.Force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), paths.DefaultDirMode); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(config.Scaffold), paths.DefaultFileMode); err != nil {
		return err
	}

	fmt.Printf("Wrote %s. Fill in the <placeholders>, then run 'rosbox build dev'.\n", path)
	return nil
}
