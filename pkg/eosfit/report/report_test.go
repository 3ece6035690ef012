package report

import (
	"math"
	"strings"
	"testing"

	"github.com/minphys/eosfit-go/pkg/eosfit/models"
)

func sampleResult() *models.FitResult {
	return &models.FitResult{
		Model:      "Birch-Murnaghan",
		Series:     "V_ang3",
		V0:         models.Parameter{Name: "V0", Value: 163.213, StdErr: 0.042},
		K0:         models.Parameter{Name: "K0", Value: 159.87, StdErr: 2.1},
		K0Prime:    models.Parameter{Name: "K0'", Value: 4.2, StdErr: math.NaN(), Fixed: true},
		RSS:        0.0312,
		ReducedRSS: 0.00156,
		DoF:        20,
		Converged:  true,
	}
}

func TestFormat(t *testing.T) {
	got := Format(sampleResult())

	for _, want := range []string{
		"Birch-Murnaghan fit [V_ang3]:",
		"V0",
		"± 0.042",
		"K0' = 4.2 (fixed)",
		"RSS = 0.0312",
		"20 dof",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "warning") {
		t.Errorf("unexpected warning in converged report:\n%s", got)
	}
}

func TestFormatNonConverged(t *testing.T) {
	r := sampleResult()
	r.Converged = false
	if !strings.Contains(Format(r), "did not converge") {
		t.Error("non-converged result must be flagged in the report")
	}
}

func TestWrite(t *testing.T) {
	var b strings.Builder
	if err := Write(&b, sampleResult()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if b.Len() == 0 {
		t.Error("Write produced no output")
	}
}
