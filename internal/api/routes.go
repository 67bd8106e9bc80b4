package api

// RegisterRoutes fills the registry with every route the service
// exposes. Any registration error (duplicate route, invalid schema) is
// returned immediately and is fatal at startup.
func RegisterRoutes(reg *Registry) error {
	registrars := []func(*Registry) error{
		registerBasicRoutes,
		registerItemRoutes,
		registerQueryRoutes,
		registerDatatypeRoutes,
	}
	for _, register := range registrars {
		if err := register(reg); err != nil {
			return err
		}
	}
	return nil
}

// registerAll registers a batch of routes, stopping at the first error.
func registerAll(reg *Registry, routes []Registration) error {
	for _, rt := range routes {
		if err := reg.Register(rt.Method, rt.Pattern, rt.Schema, rt.Handler); err != nil {
			return err
		}
	}
	return nil
}
