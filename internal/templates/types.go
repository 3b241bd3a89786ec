// Package templates indexes a directory tree of prompt template files and
// answers listing, search and view queries against it.
package templates

// DefaultRoot is the template root used when none is configured.
const DefaultRoot = "templates"

// Extension is the file extension recognized as a template.
const Extension = ".md"

// Record is one discovered template file.
type Record struct {
	// Category is the name of the immediate parent directory under the root.
	Category string

	// Name is the file base name without its extension.
	Name string

	// Path is the file path, joined from the root as configured.
	Path string
}

// Index is the ordered set of records found under Root.
type Index struct {
	// Root is the directory the index was built from.
	Root string

	// Records holds records in directory enumeration order.
	Records []Record
}

// Len returns the number of indexed records.
func (idx *Index) Len() int {
	return len(idx.Records)
}

// Empty reports whether no templates were indexed.
func (idx *Index) Empty() bool {
	return len(idx.Records) == 0
}
