package analysis

import (
	"context"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cohort/datarecording"
	"github.com/sarchlab/cohort/scalar"
)

var _ = Describe("Recorder Anomaly Logger", func() {
	It("should store anomalies next to the run recording", func() {
		path := filepath.Join(GinkgoT().TempDir(), "anomaly_test")

		recorder := datarecording.New(path)
		logger := NewRecorderAnomalyLogger(recorder)

		detector := MakeAnomalyDetectorBuilder[scalar.Float64]().
			WithAnomalyLogger(logger).
			Build()

		params := detectorParams()
		params.Sx.Set(1, 0, scalar.FromFloat[scalar.Float64](1.25))
		mustProject(params, detector)

		Expect(recorder.Close()).To(Succeed())

		reader := datarecording.NewReader(path + ".sqlite3")
		defer reader.Close()
		reader.MapTable(AnomalyTable, AnomalyEntry{})

		results, total, err := reader.Query(
			context.Background(), AnomalyTable, datarecording.QueryParams{})
		Expect(err).ToNot(HaveOccurred())
		Expect(total).To(Equal(1))

		entry := results[0].(*AnomalyEntry)
		Expect(entry.Kind).To(Equal(AnomalyKindSurvivalAboveOne))
		Expect(entry.AgeGroup).To(Equal(1))
		Expect(entry.Value).To(BeNumerically("~", 1.25))
	})
})
