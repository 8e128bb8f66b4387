package layer

// Standard priority levels for configuration layers.
// Higher values override lower values during merging.
const (
	// PriorityDefault is the lowest priority for compiled-in defaults.
	PriorityDefault = 0

	// PriorityFile is for the user's override file.
	PriorityFile = 100

	// PriorityEnv is for environment variable overrides.
	PriorityEnv = 500
)

// DefaultPriority returns the default priority for a given source.
func DefaultPriority(source Source) int {
	switch source {
	case SourceFile:
		return PriorityFile
	case SourceEnv:
		return PriorityEnv
	default:
		return PriorityDefault
	}
}

// StandardLayerNames defines standard names for configuration layers.
var StandardLayerNames = map[Source]string{
	SourceDefault: "default",
	SourceFile:    "file",
	SourceEnv:     "env",
}

// StandardLayerName returns the standard name for a source.
func StandardLayerName(source Source) string {
	if name, ok := StandardLayerNames[source]; ok {
		return name
	}
	return "unknown"
}
