package engine

// Labels stamped on every object this tool creates.
//
// Clean only considers objects carrying the managed label, and then still
// requires a naming-pattern match before removing anything.
const (
	LabelManaged = "rosbox.managed"
	LabelAuthor  = "rosbox.author"
	LabelTarget  = "rosbox.target"
)
