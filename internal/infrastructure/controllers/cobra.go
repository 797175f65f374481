package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
)

// flagger is implemented by controllers that declare their own flags.
type flagger interface {
	AddFlags(cmd *cobra.Command)
}

// NewCobraCommand turns a controller into a Cobra command.
func NewCobraCommand(controller entities.Controller) *cobra.Command {
	bind := controller.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   bind.Use,
		Short: bind.Short,
		Long:  bind.Long,
		RunE:  controller.Execute,
	}

	if f, ok := controller.(flagger); ok {
		f.AddFlags(cmd)
	}

	return cmd
}
