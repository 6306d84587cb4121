package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	uploadBatches  prometheus.Counter
	filesProcessed *prometheus.CounterVec
	filesFailed    *prometheus.CounterVec
	archivesBuilt  prometheus.Counter

	initOnce sync.Once
)

// Init registers the application metrics. Must be called once at startup;
// the Record helpers are no-ops until it runs.
func Init() {
	initOnce.Do(func() {
		uploadBatches = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "resumesorter_upload_batches_total",
			Help: "Total upload batches received",
		})
		filesProcessed = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "resumesorter_files_processed_total",
			Help: "Files successfully classified, by assigned labels",
		}, []string{"domain", "experience"})
		filesFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "resumesorter_files_failed_total",
			Help: "Files skipped during processing, by reason",
		}, []string{"reason"})
		archivesBuilt = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "resumesorter_archives_built_total",
			Help: "Result archives successfully written",
		})

		prometheus.MustRegister(uploadBatches, filesProcessed, filesFailed, archivesBuilt)
	})
}

// RecordBatch counts one upload batch.
func RecordBatch() {
	if uploadBatches != nil {
		uploadBatches.Inc()
	}
}

// RecordProcessed counts one successfully classified file.
func RecordProcessed(domain, experience string) {
	if filesProcessed != nil {
		filesProcessed.WithLabelValues(domain, experience).Inc()
	}
}

// RecordFailed counts one skipped file.
func RecordFailed(reason string) {
	if filesFailed != nil {
		filesFailed.WithLabelValues(reason).Inc()
	}
}

// RecordArchive counts one written archive.
func RecordArchive() {
	if archivesBuilt != nil {
		archivesBuilt.Inc()
	}
}
