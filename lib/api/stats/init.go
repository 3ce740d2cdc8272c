package stats

import (
	"time"

	"github.com/ether/delta-go/lib"
	"github.com/ether/delta-go/lib/settings"
	"github.com/gofiber/adaptor/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Init(store *lib.InitStore) {
	checks := []Checker{
		DocumentsChecker{store.DocumentManager},
	}

	version, releaseID := settings.BuildInfo()
	store.C.Get("/health", Handler(
		version,
		releaseID,
		"delta-api",
		checks,
	))

	if store.RetrievedSettings.EnableMetrics {
		go func() {
			ticker := time.NewTicker(10 * time.Second)
			defer ticker.Stop()

			for range ticker.C {
				documentsGauge.Set(float64(len(store.DocumentManager.List())))
			}
		}()
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			documentsGauge,
			operationsTotal,
		)
		handler := promhttp.HandlerFor(
			reg,
			promhttp.HandlerOpts{},
		)
		store.C.Get("/metrics", adaptor.HTTPHandler(handler))
	}
}
