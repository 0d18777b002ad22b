package registry

// ComponentPath returns the registry path of a component's source body.
func ComponentPath(name string) string {
	return "components/" + name + "/index.tsx"
}

// ComponentTypesPath returns the registry path of a component's optional
// standalone type declarations.
func ComponentTypesPath(name string) string {
	return "components/" + name + "/types.ts"
}

// UtilityPath returns the registry path of a shared utility module.
func UtilityPath(name string) string {
	return "utils/" + name + ".ts"
}
