package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "housebuilder"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	steps           *prom.CounterVec
	handoffs        *prom.CounterVec
	profileResults  *prom.CounterVec
	profileDuration *prom.HistogramVec
}

// NewPrometheusRecorder constructs the collectors and registers them on reg.
// A nil reg gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		steps: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Construction steps applied, by builder variant and step",
		}, []string{"variant", "step"}),
		handoffs: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "handoffs_total",
			Help:      "Products, byproducts and resets handed over by builders",
		}, []string{"variant", "kind"}),
		profileResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "profile_results_total",
			Help:      "Build profile invocations by outcome",
		}, []string{"profile", "result"}),
		profileDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "profile_duration_seconds",
			Help:      "Duration of build profile invocations",
			Buckets:   prom.DefBuckets,
		}, []string{"profile"}),
	}
	reg.MustRegister(pr.steps, pr.handoffs, pr.profileResults, pr.profileDuration)
	return pr
}

func (p *PrometheusRecorder) IncStep(variant, step string) {
	if p == nil {
		return
	}
	p.steps.WithLabelValues(variant, step).Inc()
}

func (p *PrometheusRecorder) IncHandoff(variant string, kind HandoffKind) {
	if p == nil {
		return
	}
	p.handoffs.WithLabelValues(variant, string(kind)).Inc()
}

func (p *PrometheusRecorder) IncProfileResult(profile string, result ResultLabel) {
	if p == nil {
		return
	}
	p.profileResults.WithLabelValues(profile, string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveProfileDuration(profile string, d time.Duration) {
	if p == nil {
		return
	}
	p.profileDuration.WithLabelValues(profile).Observe(d.Seconds())
}
