// Package metrics provides build metrics for housebuilder.
//
// Components receive a Recorder through functional options and default to
// NoopRecorder, so no nil checks are needed at call sites:
//
//	d := director.New(director.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// PrometheusRecorder registers its collectors on the registry it is given.
// WriteText dumps a registry in the Prometheus text exposition format, which
// is how the CLI surfaces metrics (there is no HTTP endpoint).
package metrics
