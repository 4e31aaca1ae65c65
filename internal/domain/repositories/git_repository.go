package repositories

// GitRepository initializes version control in a scaffolded project.
type GitRepository interface {
	// Init creates an empty repository in dir. An existing repository is left untouched.
	Init(dir string) error
}
