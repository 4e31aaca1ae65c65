package entities

import (
	"slices"
	"strings"
)

const (
	// LeaferPackage is the package whose latest version pins every leafer dependency.
	LeaferPackage = "leafer"

	// DefaultLeaferVersion is used when no version source answers.
	DefaultLeaferVersion = "1.0.2"

	leaferInScope = "@leafer-in/"
	interfacePkg  = "@leafer-ui/interface"

	PlatformWeb     = "web"
	PlatformWorker  = "worker"
	PlatformNode    = "node"
	PlatformMiniapp = "miniapp"

	SceneUI     = "ui"
	SceneDraw   = "draw"
	SceneGame   = "game"
	SceneEditor = "editor"
	SceneFull   = "full"
)

// Platforms lists the runtimes a leafer-x plugin can be built for.
func Platforms() []string {
	return []string{PlatformWeb, PlatformWorker, PlatformNode, PlatformMiniapp}
}

// Scenes lists the leafer bundles a project can depend on.
func Scenes() []string {
	return []string{SceneUI, SceneDraw, SceneGame, SceneEditor, SceneFull}
}

// LeaferInPlugins lists the @leafer-in plugins plus the "interface" pseudo plugin.
func LeaferInPlugins() []string {
	return []string{
		"viewport", "view", "scroll", "arrow", "html", "text-editor", "motion-path",
		"robot", "state", "find", "export", "filter", "color", "resize", "bright",
		"interface",
	}
}

// sceneIncludes lists plugins already bundled by a scene package.
func sceneIncludes(scene, platform string) []string {
	switch scene {
	case SceneEditor:
		return []string{"text-editor", "viewport", "view", "scroll", "arrow", "html", "find", "export"}
	case SceneGame:
		included := []string{"robot", "state", "motion-path", "find"}
		if platform == PlatformNode {
			included = append(included, "export")
		}
		return included
	case SceneFull:
		return LeaferInPlugins()
	default:
		return nil
	}
}

// IsLeaferPackage reports whether name belongs to the leafer family.
func IsLeaferPackage(name string) bool {
	return name == LeaferPackage ||
		strings.HasPrefix(name, "leafer-") ||
		strings.HasPrefix(name, "@leafer-") ||
		strings.HasPrefix(name, "@leafer/")
}

// UpdateLeaferDeps rewrites every leafer dependency in deps to ^version.
// A nil mapping is ignored.
func UpdateLeaferDeps(deps *Node, version string) {
	if deps == nil || deps.Kind != KindObject {
		return
	}
	for _, key := range deps.keys {
		if IsLeaferPackage(key) {
			deps.Set(key, NewString(Caret(version)))
		}
	}
}

// Caret returns the ^version constraint written into manifests.
func Caret(version string) string {
	return "^" + version
}

// SceneFromDeps infers the scene from a project's dependency names.
func SceneFromDeps(deps []string) string {
	families := []struct {
		scene string
		name  string
	}{
		{SceneFull, "leafer"},
		{SceneEditor, "leafer-editor"},
		{SceneGame, "leafer-game"},
		{SceneDraw, "leafer-draw"},
		{SceneUI, "leafer-ui"},
	}
	for _, family := range families {
		scoped := "@" + family.name + "/"
		if slices.ContainsFunc(deps, func(dep string) bool {
			return dep == family.name || strings.HasPrefix(dep, scoped)
		}) {
			return family.scene
		}
	}
	return SceneUI
}

// PlatformFromDeps infers the target runtime from a project's dependency names.
func PlatformFromDeps(deps []string) string {
	for _, platform := range []string{PlatformWorker, PlatformNode, PlatformMiniapp} {
		for _, family := range []string{"leafer-ui", "leafer-draw", "leafer-game", "leafer-editor", "leafer"} {
			prefix := "@" + family + "/" + platform
			if slices.ContainsFunc(deps, func(dep string) bool { return strings.HasPrefix(dep, prefix) }) {
				return platform
			}
		}
	}
	return PlatformWeb
}

// ScenePackage returns the package implementing scene on platform.
func ScenePackage(scene, platform string) string {
	family := "leafer-ui"
	switch scene {
	case SceneDraw:
		family = "leafer-draw"
	case SceneGame:
		family = "leafer-game"
	case SceneEditor:
		family = "leafer-editor"
	case SceneFull:
		family = "leafer"
	}
	if platform == PlatformWeb {
		return family
	}
	return "@" + family + "/" + platform
}

// PluginDependency describes one dependency requested by the add command.
type PluginDependency struct {
	Name string
	Dev  bool
}

// PluginDependencies resolves the packages to install for scene, platform and
// the selected plugins. Plugins already bundled by the scene are skipped.
func PluginDependencies(scene, platform string, plugins []string) []PluginDependency {
	result := []PluginDependency{{Name: ScenePackage(scene, platform)}}
	excluded := sceneIncludes(scene, platform)
	for _, plugin := range plugins {
		if slices.Contains(excluded, plugin) {
			continue
		}
		if plugin == "interface" {
			result = append(result, PluginDependency{Name: interfacePkg, Dev: true})
			continue
		}
		result = append(result, PluginDependency{Name: leaferInScope + plugin})
	}
	return result
}

// InstalledPlugins returns the plugins a project already depends on.
func InstalledPlugins(deps []string) []string {
	var plugins []string
	for _, dep := range deps {
		if name, ok := strings.CutPrefix(dep, leaferInScope); ok {
			plugins = append(plugins, name)
		}
	}
	if slices.Contains(deps, interfacePkg) {
		plugins = append(plugins, "interface")
	}
	return plugins
}

// ExpandPluginPresets replaces the "editor" and "game" presets by the plugins
// they stand for and removes duplicates.
func ExpandPluginPresets(plugins []string) []string {
	var expanded []string
	for _, plugin := range plugins {
		switch plugin {
		case SceneEditor, SceneGame:
			expanded = append(expanded, sceneIncludes(plugin, PlatformWeb)...)
		default:
			expanded = append(expanded, plugin)
		}
	}
	result := make([]string, 0, len(expanded))
	for _, plugin := range expanded {
		if !slices.Contains(result, plugin) {
			result = append(result, plugin)
		}
	}
	return result
}
