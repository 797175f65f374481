package internal

import (
	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
)

// AppInternal holds the top-level controllers mounted on the root command.
type AppInternal struct {
	controllers []entities.Controller
}

// NewAppInternal creates the application from the aggregated controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

// GetControllers returns the controllers in registration order.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
