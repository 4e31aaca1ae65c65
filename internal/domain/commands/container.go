package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewCreateCommand); err != nil {
		return err
	}
	if err := container.Provide(NewPluginCommand); err != nil {
		return err
	}
	if err := container.Provide(NewAddCommand); err != nil {
		return err
	}
	if err := container.Provide(NewUpdateCommand); err != nil {
		return err
	}
	if err := container.Provide(NewVersionCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *CreateCommand) Create {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *PluginCommand) Plugin {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *AddCommand) Add {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *UpdateCommand) Update {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *VersionCommand) Version {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
