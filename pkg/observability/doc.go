// Package observability exports validation outcomes as Prometheus metrics.
//
// Metrics plugs into the loader through lifecycle hooks:
//
//	m := observability.NewMetrics(prometheus.DefaultRegisterer)
//	env, err := safeenv.Load(ctx, s, safeenv.WithLifecycleHooks(m.Hooks()))
//
// Labels only carry variable names and problem codes, never values.
package observability
