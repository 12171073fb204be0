package ccmpp

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cohort/scalar"
	"github.com/sarchlab/cohort/vec"
)

// dualSingleStepParams mirrors singleStepParams with dual numbers, seeding
// the middle base population group as the differentiation variable.
func dualSingleStepParams() Params[scalar.Dual] {
	sx := vec.NewGrid[scalar.Dual](4, 1)
	sx.Fill(scalar.Constant(1))

	fx := vec.NewGrid[scalar.Dual](1, 1)
	fx.Fill(scalar.Constant(0.5))

	gx := vec.NewGrid[scalar.Dual](3, 1)
	gx.Fill(scalar.Constant(0))

	return Params[scalar.Dual]{
		BasePop: vec.Vector[scalar.Dual]{
			scalar.Constant(100), scalar.Variable(100), scalar.Constant(100),
		},
		Sx:      sx,
		Fx:      fx,
		Gx:      gx,
		Srb:     vec.Vector[scalar.Dual]{scalar.Constant(1)},
		AgeSpan: scalar.Constant(1),
		FxIdx:   1,
	}
}

// infantsForMiddleGroup runs the float projection with the middle base
// population group set to v and returns the youngest group after the only
// step. Full newborn survival makes that equal to the infants.
func infantsForMiddleGroup(v float64) float64 {
	params := singleStepParams()
	params.BasePop[1] = scalar.Float64(v)
	params.Fx = uniformGrid(1, 1, 0.5)

	proj, err := Project(params)
	if err != nil {
		panic(err)
	}

	return proj.Population.At(0, 1).Float()
}

var _ = Describe("Projection with dual numbers", func() {
	It("should carry derivatives through a full step", func() {
		proj, err := Project(dualSingleStepParams())

		Expect(err).ToNot(HaveOccurred())

		// Only the pre-aging birth term sees the variable group, so the
		// infants inherit a quarter of its fertility rate.
		infants := proj.Population.At(0, 1)
		Expect(infants.Val).To(BeNumerically("~", 25, 1e-12))
		Expect(infants.Dot).To(BeNumerically("~", 0.125, 1e-12))

		// The variable group ages into the open age group unchanged.
		open := proj.Population.At(2, 1)
		Expect(open.Val).To(BeNumerically("~", 200, 1e-12))
		Expect(open.Dot).To(BeNumerically("~", 1, 1e-12))

		aged := proj.Population.At(1, 1)
		Expect(aged.Dot).To(BeZero())
	})

	It("should agree with a central finite difference", func() {
		const h = 1e-6

		proj, err := Project(dualSingleStepParams())
		Expect(err).ToNot(HaveOccurred())

		numeric := (infantsForMiddleGroup(100+h) -
			infantsForMiddleGroup(100-h)) / (2 * h)

		Expect(proj.Population.At(0, 1).Dot).
			To(BeNumerically("~", numeric, 1e-6))
	})
})

var _ = Describe("Projection with decimals", func() {
	It("should reproduce the single step worked example exactly", func() {
		sx := vec.NewGrid[scalar.Dec](4, 1)
		sx.Fill(scalar.FromFloat[scalar.Dec](1))

		proj, err := Project(Params[scalar.Dec]{
			BasePop: vec.FromFloats[scalar.Dec]([]float64{100, 100, 100}),
			Sx:      sx,
			Fx:      vec.NewGrid[scalar.Dec](1, 1),
			Gx:      vec.NewGrid[scalar.Dec](3, 1),
			Srb:     vec.FromFloats[scalar.Dec]([]float64{1}),
			AgeSpan: scalar.FromFloat[scalar.Dec](1),
			FxIdx:   1,
		})

		Expect(err).ToNot(HaveOccurred())
		Expect(proj.Population.Col(1).Floats()).
			To(Equal([]float64{0, 100, 200}))
	})
})
