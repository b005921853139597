// Package config resolves the search configuration from the process argument
// vector, the environment and an optional YAML file. Environment access is
// injected as a LookupFunc so resolution never touches process state directly.
package config
