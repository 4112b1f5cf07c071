package ucd

// DataStore is the local data directory holding the extracted UCD.
type DataStore interface {
	// Dir returns the path of the data directory.
	Dir() string

	// HasSentinel reports whether the sentinel file (Index.txt) exists in
	// the data directory. Its presence is the sole signal that the data
	// was already fetched.
	HasSentinel() bool

	// Ensure creates the data directory and any missing parents.
	// It is a no-op when the directory already exists.
	Ensure() error

	// ReadFile reads a named data file from the directory.
	// Returns ENOTFOUND if the file does not exist.
	ReadFile(name string) (*File, error)
}
