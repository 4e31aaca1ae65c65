package entities

import (
	"strings"

	"golang.org/x/text/language"
)

const (
	LocaleEnglish = "en-US"
	LocaleChinese = "zh-Hans"
)

// Messages holds the user-facing strings of one locale.
type Messages struct {
	Language           string
	ProjectName        string
	PackageName        string
	PackageNameHint    string
	InvalidPackageName string
	OverwriteCurrent   string
	OverwriteTarget    string
	Overwrite          string
	Framework          string
	Variant            string
	Platforms          string
	PlatformsHint      string
	Scene              string
	Plugins            string
	PluginsHint        string
	ConfirmUpdate      string
	OperationCancelled string
	Done               string
}

//nolint:gochecknoglobals // immutable locale table
var catalog = map[string]Messages{
	LocaleEnglish: {
		Language:           "en",
		ProjectName:        "Project name:",
		PackageName:        "Package name:",
		PackageNameHint:    "A plugin name must start with leafer-x, e.g. leafer-x-selector or @scope/leafer-x-selector",
		InvalidPackageName: "Invalid package name",
		OverwriteCurrent:   "Current directory",
		OverwriteTarget:    "Target directory",
		Overwrite:          "is not empty. Remove existing files and continue?",
		Framework:          "Select a framework:",
		Variant:            "Select a variant:",
		Platforms:          "Select the platforms to support:",
		PlatformsHint:      "comma separated, e.g. web,worker",
		Scene:              "Select a scene:",
		Plugins:            "Select the plugins to add:",
		PluginsHint:        "comma separated, leave blank for none",
		ConfirmUpdate:      "Do you want to update them?",
		OperationCancelled: "Operation cancelled",
		Done:               "Done. Now run:",
	},
	LocaleChinese: {
		Language:           "zh",
		ProjectName:        "项目名称：",
		PackageName:        "包名称：",
		PackageNameHint:    "插件名称需以 leafer-x 开头，例如 leafer-x-selector 或 @scope/leafer-x-selector",
		InvalidPackageName: "无效的包名称",
		OverwriteCurrent:   "当前目录",
		OverwriteTarget:    "目标目录",
		Overwrite:          "非空，是否删除现有文件并继续？",
		Framework:          "选择框架：",
		Variant:            "选择变体：",
		Platforms:          "选择需要支持的平台：",
		PlatformsHint:      "以逗号分隔，例如 web,worker",
		Scene:              "选择场景：",
		Plugins:            "选择需要添加的插件：",
		PluginsHint:        "以逗号分隔，留空表示不添加",
		ConfirmUpdate:      "是否更新这些依赖？",
		OperationCancelled: "操作已取消",
		Done:               "项目初始化完成，可执行以下命令：",
	},
}

//nolint:gochecknoglobals // built once from the locale table
var (
	supportedLocales = []string{LocaleEnglish, LocaleChinese}
	localeMatcher    = language.NewMatcher([]language.Tag{
		language.AmericanEnglish,
		language.SimplifiedChinese,
	})
)

// SelectLocale maps a shell locale such as "zh_CN.UTF-8" to a supported
// locale. Unknown or unparsable values fall back to English.
func SelectLocale(shellLocale string) string {
	raw, _, _ := strings.Cut(shellLocale, ".")
	raw = strings.ReplaceAll(raw, "_", "-")
	if raw == "" {
		return LocaleEnglish
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return LocaleEnglish
	}
	_, index, confidence := localeMatcher.Match(tag)
	if confidence == language.No {
		return LocaleEnglish
	}
	return supportedLocales[index]
}

// MessagesFor returns the messages of locale, defaulting to English.
func MessagesFor(locale string) Messages {
	if messages, ok := catalog[locale]; ok {
		return messages
	}
	return catalog[LocaleEnglish]
}
