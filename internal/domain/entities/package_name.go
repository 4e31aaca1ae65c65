package entities

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	// DefaultProjectName is proposed when the user leaves the project name blank.
	DefaultProjectName = "leafer-project"

	pluginNamePrefix = "leafer-x"
	globalNamePrefix = "LeaferX."
)

var (
	pluginNamePattern  = regexp.MustCompile(`^(leafer-[a-z0-9-~][a-z0-9-._~]*|@[a-z0-9-*~][a-z0-9-*._~]*/leafer-x[a-z0-9-._~]*)$`)
	pluginPrefixRegexp = regexp.MustCompile(`^(leafer-x|@[a-zA-Z0-9_-]+/leafer-x)`)
	npmNamePattern     = regexp.MustCompile(`^(?:@[a-z0-9-*~][a-z0-9-*._~]*/)?[a-z0-9-~][a-z0-9-._~]*$`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
	invalidCharPattern = regexp.MustCompile(`[^a-z0-9-~]+`)
	scopePattern       = regexp.MustCompile(`^@[^/]+/`)
)

// IsValidNpmPackageName reports whether name is an acceptable npm package name.
func IsValidNpmPackageName(name string) bool {
	return len(name) <= 214 && npmNamePattern.MatchString(name)
}

// IsValidPluginName reports whether name is a valid leafer-x plugin package name.
func IsValidPluginName(name string) bool {
	return pluginNamePattern.MatchString(name)
}

// ToValidPackageName turns a project name into an npm-compatible suggestion.
func ToValidPackageName(projectName string) string {
	name := strings.ToLower(strings.TrimSpace(projectName))
	name = whitespacePattern.ReplaceAllString(name, "-")
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		name = name[1:]
	}
	return invalidCharPattern.ReplaceAllString(name, "-")
}

// ToValidPluginName normalizes a project name into a plugin package name.
// Names that do not start with leafer-x collapse to the bare "leafer-x-" prefix
// so the prompt can ask the user to complete it.
func ToValidPluginName(projectName string) string {
	name := ToValidPackageName(projectName)
	if pluginPrefixRegexp.MatchString(name) {
		return name
	}
	return pluginNamePrefix + "-"
}

// GlobalName derives the UMD global of a plugin, e.g. leafer-x-dot-matrix
// becomes LeaferX.DotMatrix.
func GlobalName(packageName string) string {
	name := scopePattern.ReplaceAllString(packageName, "")
	if strings.HasPrefix(name, pluginNamePrefix) {
		name = strings.Replace(name, pluginNamePrefix, "", 1)
	} else if strings.HasPrefix(name, "leafer-") {
		name = strings.Replace(name, "leafer-", "", 1)
	}

	parts := strings.Split(name, "-")
	var sb strings.Builder
	sb.WriteString(globalNamePrefix)
	for i, part := range parts {
		if i > 0 || len(parts) > 1 {
			sb.WriteString(capitalize(part))
			continue
		}
		sb.WriteString(strings.ToLower(part))
	}
	return sb.String()
}

func capitalize(part string) string {
	if part == "" {
		return ""
	}
	runes := []rune(strings.ToLower(part))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ResolvePackageName picks the manifest name from the answers given.
func ResolvePackageName(packageName, projectName string) string {
	if trimmed := strings.TrimSpace(packageName); trimmed != "" {
		return trimmed
	}
	if projectName != "" {
		return projectName
	}
	return DefaultProjectName
}
