package configs

// Configurable is implemented by typed config values that map to a CUE
// expression in the config files.
type Configurable interface {
	ConfigExpr() string
}
