package configs

// Configurable is a value that can be set by a flag or by the config entry at ConfigPath
type Configurable interface {
	ConfigPath() string
}

// Resolve returns flag when set, else the first config value, else fallback
func Resolve[T interface {
	Configurable
	comparable
}](loader Loader, flag T, fallback T) T {
	var zero T
	if flag != zero {
		return flag
	}
	if value := First[T](loader, fallback.ConfigPath()); value != zero {
		return value
	}
	return fallback
}
