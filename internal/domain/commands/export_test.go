package commands

// EmptyDirectory exports emptyDirectory for testing.
var EmptyDirectory = emptyDirectory //nolint:gochecknoglobals // test export

// CompareConstraint exports compareConstraint for testing.
var CompareConstraint = compareConstraint //nolint:gochecknoglobals // test export

// IsPinnedElsewhere exports isPinnedElsewhere for testing.
var IsPinnedElsewhere = isPinnedElsewhere //nolint:gochecknoglobals // test export
