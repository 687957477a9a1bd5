package metrics

import (
	"io"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"git.home.luguber.info/inful/housebuilder/internal/foundation/errors"
)

// WriteText gathers reg and writes every metric family to w in the
// Prometheus text exposition format.
func WriteText(w io.Writer, reg prom.Gatherer) error {
	mfs, err := reg.Gather()
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "gather metrics").Build()
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.WrapError(err, errors.CategoryRender, "write metrics").Build()
		}
	}
	return nil
}
