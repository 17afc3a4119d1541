// Package settings resolves named configuration values with a two-tier precedence rule.
//
// A value set programmatically on the Resolver (an override, typically coming from a
// -D KEY=VALUE flag) always wins over the process environment. When neither tier holds
// the name, the setting is unset and callers apply their own default.
//
// # Tiers
//
//   - Override: Resolver.Set, backed by Viper's override layer.
//   - Environment: the process environment, backed by Viper's AutomaticEnv.
//
// A variable that is present but empty counts as set.
//
// # Usage
//
//	r := settings.New(map[string]string{"TOMCAT_STANDALONE_PORT": "9090"})
//	port, ok, err := r.LookupInt("TOMCAT_STANDALONE_PORT")
package settings
