package domain

// Manifest holds the bundle headers read from META-INF/MANIFEST.MF.
type Manifest struct {
	// SymbolicName is the Bundle-SymbolicName key without directives.
	SymbolicName string
	Version      string
	// SourceFor is the symbolic name from Eclipse-SourceBundle, set on source bundles.
	SourceFor string
	Headers   map[string]string
}

// Bundle is a deployable plugin unit found on the target platform.
type Bundle struct {
	SymbolicName string
	Version      string
	Root         string
	// Source is the matching source bundle, if one is installed.
	Source *Bundle
}

// Module is a plugin project of the workspace.
type Module struct {
	Name string
	Root string
	// SymbolicName is read from the module manifest; empty when the module has none.
	SymbolicName string
	// ContentRoots are searched in order when resolving schema locations.
	ContentRoots []string
}
