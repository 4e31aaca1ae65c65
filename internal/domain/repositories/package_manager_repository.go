package repositories

// PackageManagerRepository detects the package manager controlling a directory.
type PackageManagerRepository interface {
	Detect(dir string) string
}
