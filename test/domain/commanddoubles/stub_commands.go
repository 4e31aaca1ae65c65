//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/leaferjs/create-leafer/config"
	"github.com/leaferjs/create-leafer/internal/domain/commands"
)

// StubCreateCommand is a stub implementation of commands.Create.
type StubCreateCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           *commands.ScaffoldResult
	LastOpts         commands.CreateOptions
}

var _ commands.Create = (*StubCreateCommand)(nil)

func (s *StubCreateCommand) Execute(
	_ context.Context,
	_ *config.Settings,
	opts commands.CreateOptions,
) (*commands.ScaffoldResult, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	return s.result(opts.Cwd), nil
}

func (s *StubCreateCommand) result(cwd string) *commands.ScaffoldResult {
	if s.Result != nil {
		return s.Result
	}
	return &commands.ScaffoldResult{Root: cwd, Cwd: cwd, PackageManager: "npm", Script: "dev"}
}

// StubPluginCommand is a stub implementation of commands.Plugin.
type StubPluginCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.PluginOptions
}

var _ commands.Plugin = (*StubPluginCommand)(nil)

func (s *StubPluginCommand) Execute(
	_ context.Context,
	_ *config.Settings,
	opts commands.PluginOptions,
) (*commands.ScaffoldResult, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	return &commands.ScaffoldResult{Root: opts.Cwd, Cwd: opts.Cwd, PackageManager: "npm", Script: "start"}, nil
}

// StubAddCommand is a stub implementation of commands.Add.
type StubAddCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.AddOptions
}

var _ commands.Add = (*StubAddCommand)(nil)

func (s *StubAddCommand) Execute(
	_ context.Context,
	_ *config.Settings,
	opts commands.AddOptions,
) (*commands.AddResult, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	return &commands.AddResult{
		ScaffoldResult: commands.ScaffoldResult{Root: opts.Cwd, Cwd: opts.Cwd, PackageManager: "npm"},
	}, nil
}

// StubUpdateCommand is a stub implementation of commands.Update.
type StubUpdateCommand struct {
	Plan       *commands.UpdatePlan
	CheckErr   error
	ApplyErr   error
	ApplyCalls int
}

var _ commands.Update = (*StubUpdateCommand)(nil)

func (s *StubUpdateCommand) Check(_ context.Context, _ *config.Settings, cwd string) (*commands.UpdatePlan, error) {
	if s.CheckErr != nil {
		return nil, s.CheckErr
	}
	if s.Plan != nil {
		return s.Plan, nil
	}
	return &commands.UpdatePlan{Root: cwd}, nil
}

func (s *StubUpdateCommand) Apply(_ *commands.UpdatePlan) error {
	s.ApplyCalls++
	return s.ApplyErr
}

// StubVersionCommand is a stub implementation of commands.Version.
type StubVersionCommand struct {
	Version         string
	LastPackageName string
}

var _ commands.Version = (*StubVersionCommand)(nil)

func (s *StubVersionCommand) Execute(_ context.Context, _ *config.Settings, packageName string) string {
	s.LastPackageName = packageName
	return s.Version
}
