package analysis

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/cohort/ccmpp"
	"github.com/sarchlab/cohort/scalar"
	"github.com/sarchlab/cohort/vec"
)

// detectorParams builds a three-group, one-step projection with full
// survival, zero fertility, and zero migration.
func detectorParams() ccmpp.Params[scalar.Float64] {
	one := scalar.FromFloat[scalar.Float64](1)

	sx := vec.NewGrid[scalar.Float64](4, 1)
	sx.Fill(one)

	srb := vec.NewVector[scalar.Float64](1)
	srb.Fill(one)

	return ccmpp.Params[scalar.Float64]{
		BasePop: vec.FromFloats[scalar.Float64]([]float64{100, 100, 100}),
		Sx:      sx,
		Fx:      vec.NewGrid[scalar.Float64](1, 1),
		Gx:      vec.NewGrid[scalar.Float64](3, 1),
		Srb:     srb,
		AgeSpan: one,
		FxIdx:   1,
	}
}

func mustProject(
	params ccmpp.Params[scalar.Float64],
	detector *AnomalyDetector[scalar.Float64],
) {
	proj, err := ccmpp.NewProjection(params)
	Expect(err).ToNot(HaveOccurred())

	CollectAnomalies(proj, detector)
	proj.Run()
}

var _ = Describe("Anomaly Detector", func() {
	var (
		mockCtrl *gomock.Controller
		logger   *MockAnomalyLogger
		detector *AnomalyDetector[scalar.Float64]
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		logger = NewMockAnomalyLogger(mockCtrl)

		detector = MakeAnomalyDetectorBuilder[scalar.Float64]().
			WithAnomalyLogger(logger).
			Build()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should report survival above one", func() {
		params := detectorParams()
		params.Sx.Set(1, 0, scalar.FromFloat[scalar.Float64](1.25))

		logger.EXPECT().AddAnomalyEntry(AnomalyEntry{
			Step:     0,
			AgeGroup: 1,
			Kind:     AnomalyKindSurvivalAboveOne,
			Value:    1.25,
		})

		mustProject(params, detector)

		Expect(detector.Count()).To(Equal(1))
	})

	It("should report survival below zero and the population it breaks",
		func() {
			params := detectorParams()
			params.Sx.Set(1, 0, scalar.FromFloat[scalar.Float64](-0.5))

			logger.EXPECT().AddAnomalyEntry(AnomalyEntry{
				Step:     0,
				AgeGroup: 1,
				Kind:     AnomalyKindSurvivalBelowZero,
				Value:    -0.5,
			})
			logger.EXPECT().AddAnomalyEntry(AnomalyEntry{
				Step:     0,
				AgeGroup: 1,
				Kind:     AnomalyKindNegativePopulation,
				Value:    -50,
			})

			mustProject(params, detector)

			Expect(detector.Count()).To(Equal(2))
		})

	It("should report negative populations caused by out-migration", func() {
		params := detectorParams()
		params.Gx.Fill(scalar.FromFloat[scalar.Float64](-3))

		logger.EXPECT().AddAnomalyEntry(AnomalyEntry{
			Step:     0,
			AgeGroup: 0,
			Kind:     AnomalyKindNegativePopulation,
			Value:    -150,
		})
		logger.EXPECT().AddAnomalyEntry(AnomalyEntry{
			Step:     0,
			AgeGroup: 1,
			Kind:     AnomalyKindNegativePopulation,
			Value:    -200,
		})
		logger.EXPECT().AddAnomalyEntry(AnomalyEntry{
			Step:     0,
			AgeGroup: 2,
			Kind:     AnomalyKindNegativePopulation,
			Value:    -250,
		})

		mustProject(params, detector)

		Expect(detector.Count()).To(Equal(3))
	})

	It("should stay silent on a clean projection", func() {
		mustProject(detectorParams(), detector)

		Expect(detector.Count()).To(Equal(0))
	})
})

var _ = Describe("Anomaly Collector", func() {
	It("should keep entries in reporting order", func() {
		collector := &AnomalyCollector{}

		detector := MakeAnomalyDetectorBuilder[scalar.Float64]().
			WithAnomalyLogger(collector).
			Build()

		params := detectorParams()
		params.Gx.Fill(scalar.FromFloat[scalar.Float64](-3))

		mustProject(params, detector)

		entries := collector.Entries()
		Expect(entries).To(HaveLen(3))
		Expect(entries[0].AgeGroup).To(Equal(0))
		Expect(entries[1].AgeGroup).To(Equal(1))
		Expect(entries[2].AgeGroup).To(Equal(2))
		for _, e := range entries {
			Expect(e.Kind).To(Equal(AnomalyKindNegativePopulation))
		}
	})
})
