package internal

import (
	"github.com/leaferjs/create-leafer/internal/domain/entities"
	"github.com/leaferjs/create-leafer/internal/infrastructure/controllers"
)

// AppInternal holds the controllers exposed by the binary.
type AppInternal struct {
	controllers      []entities.Controller
	createController *controllers.CreateController
}

// NewAppInternal creates the application from the injected controllers.
func NewAppInternal(
	controllerList *[]entities.Controller,
	createController *controllers.CreateController,
) *AppInternal {
	return &AppInternal{controllers: *controllerList, createController: createController}
}

// GetControllers returns every subcommand controller.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

// GetCreateController returns the controller run when no subcommand is given.
func (it *AppInternal) GetCreateController() *controllers.CreateController {
	return it.createController
}
