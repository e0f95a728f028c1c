// ABOUTME: Tests for RMR formulas, TDEE scaling, and calorie targets.
// ABOUTME: Checks round-then-store behavior against hand-computed values.
package calc

import (
	"testing"

	"github.com/harperreed/macros/internal/models"
)

func femaleProfile() models.Profile {
	return models.Profile{
		HeightCm: 182,
		WeightKg: 85.3,
		AgeYears: 39,
		Sex:      models.SexFemale,
		Activity: models.ActivitySedentary,
	}
}

func TestRMRFemale(t *testing.T) {
	// Mifflin: 853 + 1137.5 - 195 - 161 = 1634.5
	// Harris: 447.593 + 788.7691 + 563.836 - 168.87 = 1631.3281
	got := RMR(femaleProfile())

	if got.Mifflin != 1635 {
		t.Errorf("Mifflin = %d, want 1635", got.Mifflin)
	}
	if got.HarrisBenedict != 1631 {
		t.Errorf("HarrisBenedict = %d, want 1631", got.HarrisBenedict)
	}
	if got.Average != 1633 {
		t.Errorf("Average = %d, want 1633", got.Average)
	}
}

func TestRMRMale(t *testing.T) {
	// Mifflin: 800 + 1125 - 150 + 5 = 1780
	// Harris: 88.362 + 1071.76 + 863.82 - 170.31 = 1853.632
	p := models.Profile{
		HeightCm: 180,
		WeightKg: 80,
		AgeYears: 30,
		Sex:      models.SexMale,
		Activity: models.ActivityModerate,
	}
	got := RMR(p)

	if got.Mifflin != 1780 {
		t.Errorf("Mifflin = %d, want 1780", got.Mifflin)
	}
	if got.HarrisBenedict != 1854 {
		t.Errorf("HarrisBenedict = %d, want 1854", got.HarrisBenedict)
	}
	if got.Average != 1817 {
		t.Errorf("Average = %d, want 1817", got.Average)
	}
}

func TestAverageFromRoundedPair(t *testing.T) {
	// Average must come from the independently-rounded estimates, not the
	// raw floats: (1635+1631)/2 = 1633 exactly.
	got := RMR(femaleProfile())
	if got.Average*2 != got.Mifflin+got.HarrisBenedict {
		t.Errorf("Average = %d, want mean of %d and %d", got.Average, got.Mifflin, got.HarrisBenedict)
	}
}

func TestTDEE(t *testing.T) {
	tests := []struct {
		name     string
		rmr      int
		activity models.ActivityLevel
		sex      models.Sex
		want     int
	}{
		{"sedentary female", 1633, models.ActivitySedentary, models.SexFemale, 2286},  // 1633*1.4 = 2286.2
		{"sedentary male", 1633, models.ActivitySedentary, models.SexMale, 2286},      // same multiplier
		{"moderate female", 1633, models.ActivityModerate, models.SexFemale, 2776},    // 1633*1.7 = 2776.1
		{"moderate male", 1817, models.ActivityModerate, models.SexMale, 3271},        // 1817*1.8 = 3270.6
		{"very-heavy female", 1633, models.ActivityVeryHeavy, models.SexFemale, 3593}, // 1633*2.2 = 3592.6
		{"bed-rest male", 2000, models.ActivityBedRest, models.SexMale, 2400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TDEE(tt.rmr, tt.activity, tt.sex); got != tt.want {
				t.Errorf("TDEE = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTargets(t *testing.T) {
	got := Targets(2286)

	if got.Loss != 1786 {
		t.Errorf("Loss = %d, want 1786", got.Loss)
	}
	if got.Maintain != 2286 {
		t.Errorf("Maintain = %d, want 2286", got.Maintain)
	}
	if got.Gain != 2786 {
		t.Errorf("Gain = %d, want 2786", got.Gain)
	}
}

func TestTargetsFixedOffset(t *testing.T) {
	for _, tdee := range []int{1200, 2000, 2776, 3593} {
		got := Targets(tdee)
		if got.Loss+1000 != got.Gain {
			t.Errorf("Targets(%d): Loss+1000 = %d, want Gain %d", tdee, got.Loss+1000, got.Gain)
		}
		if got.Maintain != tdee {
			t.Errorf("Targets(%d): Maintain = %d", tdee, got.Maintain)
		}
	}
}
