package entities

import (
	"fmt"
	"path"
	"strings"
)

const (
	// PluginTemplate is the template rendered for leafer-x plugins.
	PluginTemplate = "leaferx/base"

	templateFamily = "leafer"
)

// Variant is one language flavour of a framework template.
type Variant struct {
	Name    string
	Display string
}

// Framework groups the template variants of one UI framework.
type Framework struct {
	Name     string
	Display  string
	Variants []Variant
}

// Frameworks lists every framework the create command can scaffold.
func Frameworks() []Framework {
	return []Framework{
		{Name: "vanilla", Display: "Vanilla", Variants: languageVariants("vanilla")},
		{Name: "vue", Display: "Vue", Variants: languageVariants("vue")},
		{Name: "react", Display: "React", Variants: languageVariants("react")},
	}
}

func languageVariants(framework string) []Variant {
	return []Variant{
		{Name: framework + "-js", Display: "JavaScript"},
		{Name: framework + "-ts", Display: "TypeScript"},
	}
}

// FindVariant reports whether name is a known variant.
func FindVariant(name string) (Variant, bool) {
	for _, framework := range Frameworks() {
		for _, variant := range framework.Variants {
			if variant.Name == name {
				return variant, true
			}
		}
	}
	return Variant{}, false
}

// VariantTemplate converts a variant name like "vanilla-js" into the template
// path "leafer/vanilla/js".
func VariantTemplate(variant string) (string, error) {
	if _, ok := FindVariant(variant); !ok {
		return "", fmt.Errorf("unknown template variant %q", variant)
	}
	framework, lang, _ := strings.Cut(variant, "-")
	return path.Join(templateFamily, framework, lang), nil
}

// Package manager identifiers.
const (
	PackageManagerNpm  = "npm"
	PackageManagerYarn = "yarn"
	PackageManagerPnpm = "pnpm"
	PackageManagerBun  = "bun"
)

// InstallCommand returns the command line installing dependencies with agent.
func InstallCommand(agent string) string {
	switch agent {
	case PackageManagerYarn:
		return "yarn"
	case PackageManagerPnpm, PackageManagerBun:
		return agent + " install"
	default:
		return "npm install"
	}
}

// ScriptCommand returns the command line running a package.json script with agent.
func ScriptCommand(agent, script string) string {
	switch agent {
	case PackageManagerYarn, PackageManagerPnpm:
		return agent + " " + script
	case PackageManagerBun:
		return "bun run " + script
	default:
		return "npm run " + script
	}
}
