package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/genie/internal/shared"
	"github.com/urfave/cli/v3"
)

// ConfigInit writes the embedded example configuration to disk.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")

	if err := shared.CreateConfigFile(path); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	r.logger.Info("config file created", "path", path)
	return r.writePlain("✓ Configuration written to %s\n", path)
}

// ConfigShow prints the configuration the serve command would use.
func (r *Runner) ConfigShow(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	return r.writeJSON(config, cmd.Bool("pretty"))
}
