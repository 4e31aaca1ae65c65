package controllers

import (
	"go.uber.org/dig"

	"github.com/leaferjs/create-leafer/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewCreateController); err != nil {
		return err
	}
	if err := container.Provide(NewPluginController); err != nil {
		return err
	}
	if err := container.Provide(NewAddController); err != nil {
		return err
	}
	if err := container.Provide(NewUpdateController); err != nil {
		return err
	}
	if err := container.Provide(NewVersionController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	createController *CreateController,
	pluginController *PluginController,
	addController *AddController,
	updateController *UpdateController,
	versionController *VersionController,
) *[]entities.Controller {
	return &[]entities.Controller{
		createController,
		pluginController,
		addController,
		updateController,
		versionController,
	}
}
