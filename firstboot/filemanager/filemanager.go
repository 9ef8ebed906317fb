package filemanager

// FileManager performs the system config file edits the installation
// steps need. All writes go through sudo-elevated commands because the
// targets live under /etc and /boot.
type FileManager interface {
	// Exists reports whether the path exists.
	Exists(path string) bool

	// Contains reports whether any line in the file matches the
	// extended regular expression.
	Contains(path, pattern string) (bool, error)

	// ReplacePattern applies a sed substitution expression in place.
	ReplacePattern(path, sedExpr string) error

	// AppendLineIfMissing appends line to the file unless an identical
	// line is already present.
	AppendLineIfMissing(path, line string) error
}
