package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sarchlab/cohort/analysis"
	"github.com/sarchlab/cohort/ccmpp"
	"github.com/sarchlab/cohort/datarecording"
	"github.com/sarchlab/cohort/experiment"
	"github.com/sarchlab/cohort/scalar"
	"github.com/sarchlab/cohort/vec"
)

// The demo scenario projects a young-leaning population over five-year
// steps. Population counts are in thousands.
const demoAgeSpan = 5

// demoBasePop covers ages 0-4 through 80+.
var demoBasePop = []float64{
	500, 480, 460, 440, 420, 400, 380, 360, 330,
	300, 270, 240, 200, 160, 120, 80, 60,
}

// demoSurvival holds the proportion surviving one step. Row 0 is newborn
// survival and the last row keeps the open age group.
var demoSurvival = []float64{
	0.995, 0.998, 0.998, 0.997, 0.996, 0.995, 0.994, 0.993, 0.991,
	0.988, 0.984, 0.978, 0.968, 0.950, 0.920, 0.870, 0.780, 0.500,
}

// demoFertility holds the rates of the fertile ages 15-19 through 45-49.
var demoFertility = []float64{0.02, 0.08, 0.12, 0.10, 0.06, 0.02, 0.005}

// demoFxIdx is the age group of ages 15-19.
const demoFxIdx = 3

const demoMigrationRate = 0.001

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a built-in projection scenario and record its step trace.",
	Long: `demo projects a synthetic population of 17 five-year age groups ` +
		`forward, records the step trace, and prints a summary table. ` +
		`The output file name falls back to COHORT_OUTPUT from the ` +
		`environment or a .env file.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.SilenceUsage = true

		_ = godotenv.Load()

		steps, _ := cmd.Flags().GetInt("steps")
		output, _ := cmd.Flags().GetString("output")
		recorder, _ := cmd.Flags().GetString("recorder")

		if steps < 1 {
			log.Fatalf("Error: steps must be at least 1.")
		}

		if output == "" {
			output = os.Getenv("COHORT_OUTPUT")
		}

		e := buildDemoExperiment(steps, output, recorder)

		e.Run()

		printDemoSummary(e.Projection())

		if count := e.AnomalyCount(); count > 0 {
			fmt.Printf("\n%d anomalies found. See the %s table.\n",
				count, analysis.AnomalyTable)
		}

		printDemoOutputLocation(recorder, e.OutputPath())

		e.Terminate()
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().Int("steps", 10, "Number of projection steps")
	demoCmd.Flags().String("output", "",
		"Output file name without suffix")
	demoCmd.Flags().String("recorder", "sqlite",
		"Recording backend, one of sqlite, csv, clickhouse")
}

// demoParams repeats the demo schedules over the requested number of steps.
func demoParams(nSteps int) ccmpp.Params[scalar.Float64] {
	nAges := len(demoBasePop)

	survival := vec.FromFloats[scalar.Float64](demoSurvival)
	fertility := vec.FromFloats[scalar.Float64](demoFertility)

	sx := vec.NewGrid[scalar.Float64](nAges+1, nSteps)
	fx := vec.NewGrid[scalar.Float64](len(demoFertility), nSteps)
	srb := vec.NewVector[scalar.Float64](nSteps)
	for step := 0; step < nSteps; step++ {
		copy(sx.Col(step), survival)
		copy(fx.Col(step), fertility)
		srb[step] = scalar.FromFloat[scalar.Float64](1.05)
	}

	gx := vec.NewGrid[scalar.Float64](nAges, nSteps)
	gx.Fill(scalar.FromFloat[scalar.Float64](demoMigrationRate))

	return ccmpp.Params[scalar.Float64]{
		BasePop: vec.FromFloats[scalar.Float64](demoBasePop),
		Sx:      sx,
		Fx:      fx,
		Gx:      gx,
		Srb:     srb,
		AgeSpan: scalar.FromFloat[scalar.Float64](demoAgeSpan),
		FxIdx:   demoFxIdx,
	}
}

func buildDemoExperiment(
	steps int,
	output, recorder string,
) *experiment.Experiment[scalar.Float64] {
	builder := experiment.MakeBuilder[scalar.Float64]().
		WithParams(demoParams(steps))

	if output != "" {
		builder = builder.WithOutputFileName(output)
	}

	switch recorder {
	case "sqlite":
	case "csv":
		builder = builder.WithRecorderConfig(datarecording.RecorderConfig{
			Type: "csv",
		})
	case "clickhouse":
		connStr := os.Getenv("COHORT_CLICKHOUSE")
		if connStr == "" {
			log.Fatalf("Error: the clickhouse recorder needs " +
				"COHORT_CLICKHOUSE set to a connection string.")
		}

		builder = builder.WithRecorderConfig(datarecording.RecorderConfig{
			Type:    "clickhouse",
			ConnStr: connStr,
		})
	default:
		log.Fatalf("Error: unknown recorder %q.", recorder)
	}

	e, err := builder.Build()
	if err != nil {
		log.Fatalf("Error building the experiment: %v", err)
	}

	return e
}

func printDemoSummary(proj *ccmpp.Projection[scalar.Float64]) {
	fmt.Printf("%5s %12s %12s %12s %12s\n",
		"Step", "Total", "Births", "Deaths", "Migration")
	fmt.Printf("%5d %12.1f %12s %12s %12s\n",
		0, analysis.TotalPopulation(proj, 0).Float(), "-", "-", "-")

	for step := 0; step < proj.NSteps(); step++ {
		fmt.Printf("%5d %12.1f %12.1f %12.1f %12.1f\n",
			step+1,
			analysis.TotalPopulation(proj, step+1).Float(),
			analysis.TotalBirths(proj, step).Float(),
			analysis.TotalDeaths(proj, step).Float(),
			analysis.NetMigration(proj, step).Float())
	}
}

func printDemoOutputLocation(recorder, outputPath string) {
	switch recorder {
	case "sqlite":
		fmt.Printf("Step trace stored at %s.sqlite3\n", outputPath)
	case "csv":
		fmt.Printf("Step trace stored at %s_*.csv\n", outputPath)
	case "clickhouse":
		fmt.Println("Step trace stored in ClickHouse.")
	}
}
