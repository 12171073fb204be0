package ccmpp

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cohort/scalar"
	"github.com/sarchlab/cohort/vec"
)

var _ = Describe("BuildLeslieMatrix", func() {
	var (
		sx vec.Vector[scalar.Float64]
		fx vec.Vector[scalar.Float64]
	)

	BeforeEach(func() {
		sx = vec.FromFloats[scalar.Float64](
			[]float64{0.95, 0.98, 0.97, 0.96, 0.94, 0.90, 0.80})
		fx = vec.FromFloats[scalar.Float64]([]float64{0.4, 0.3})
	})

	It("should place survival on the subdiagonal", func() {
		m, err := BuildLeslieMatrix(
			sx, fx, scalar.Float64(1.05), scalar.Float64(5), 2)

		Expect(err).ToNot(HaveOccurred())
		Expect(m.Rows()).To(Equal(6))
		Expect(m.Cols()).To(Equal(6))
		for i := 1; i < 6; i++ {
			Expect(m.At(i, i-1).Float()).
				To(BeNumerically("~", sx[i].Float(), 1e-15))
		}
	})

	It("should let the open age group retain its own survivors", func() {
		m, err := BuildLeslieMatrix(
			sx, fx, scalar.Float64(1.05), scalar.Float64(5), 2)

		Expect(err).ToNot(HaveOccurred())
		Expect(m.At(5, 5).Float()).To(BeNumerically("~", 0.80, 1e-15))
	})

	It("should build the net maternity band in row 0", func() {
		m, err := BuildLeslieMatrix(
			sx, fx, scalar.Float64(1.05), scalar.Float64(5), 2)

		Expect(err).ToNot(HaveOccurred())

		k := 0.95 * 0.5 * 5.0 / (1 + 1.05)
		Expect(m.At(0, 1).Float()).
			To(BeNumerically("~", 0.4*0.97*k, 1e-12))
		Expect(m.At(0, 2).Float()).
			To(BeNumerically("~", (0.3*0.96+0.4)*k, 1e-12))
		Expect(m.At(0, 3).Float()).
			To(BeNumerically("~", 0.3*k, 1e-12))

		Expect(m.At(0, 0).Float()).To(BeZero())
		Expect(m.At(0, 4).Float()).To(BeZero())
		Expect(m.At(0, 5).Float()).To(BeZero())
	})

	It("should store one band entry per fertile group plus one, one survival "+
		"entry per transition, and the corner", func() {
		m, err := BuildLeslieMatrix(
			sx, fx, scalar.Float64(1.05), scalar.Float64(5), 2)

		Expect(err).ToNot(HaveOccurred())
		Expect(m.NonZeroCount()).To(Equal(3 + 5 + 1))
	})

	It("should reject a fertile band starting at the youngest group", func() {
		_, err := BuildLeslieMatrix(
			sx, fx, scalar.Float64(1.05), scalar.Float64(5), 0)

		Expect(err).To(MatchError(ErrFertileIndex))
	})

	It("should reject a fertile band past the oldest group", func() {
		_, err := BuildLeslieMatrix(
			sx, fx, scalar.Float64(1.05), scalar.Float64(5), 5)

		Expect(err).To(MatchError(ErrFertileBand))
	})

	It("should accept a fertile band ending at the oldest group", func() {
		_, err := BuildLeslieMatrix(
			sx, fx, scalar.Float64(1.05), scalar.Float64(5), 4)

		Expect(err).ToNot(HaveOccurred())
	})

	It("should reject a survival schedule that is too short", func() {
		_, err := BuildLeslieMatrix(
			vec.FromFloats[scalar.Float64]([]float64{0.9}),
			fx, scalar.Float64(1.05), scalar.Float64(5), 2)

		Expect(err).To(MatchError(ErrSurvivalShape))
	})

	It("should reject an empty fertility schedule", func() {
		_, err := BuildLeslieMatrix(
			sx, vec.NewVector[scalar.Float64](0),
			scalar.Float64(1.05), scalar.Float64(5), 2)

		Expect(err).To(MatchError(ErrNoFertileAgeGroups))
	})
})
