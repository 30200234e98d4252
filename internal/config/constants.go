package config

// DumpFileExt is the extension of serialized front-end tree dumps that the
// standalone elaboration tool consumes.
const DumpFileExt = ".nast.yaml"

// DumpFileExtensions are all recognized dump file extensions
var DumpFileExtensions = []string{".nast.yaml", ".nast.yml"}

// Reserved names in type-hint and type-parameter position
const (
	// ThisName is the reserved self-type name; no type parameter may use it
	// in any casing.
	ThisName = "this"

	// WildcardName is the unnamed-placeholder marker, legal only as a
	// concrete parameter nested inside a higher-kinded parameter's list.
	WildcardName = "_"

	// TparamPrefix is the required first letter of every type parameter name.
	TparamPrefix = "T"
)

// Builtin primitive type names
const (
	IntTypeName    = "int"
	FloatTypeName  = "float"
	StringTypeName = "string"
	BoolTypeName   = "bool"
	NothingName    = "nothing"
	MixedTypeName  = "mixed"
)
