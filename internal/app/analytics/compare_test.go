package analytics

import (
	"testing"

	"github.com/varun021/Health-Tracker/internal/app/ds"
)

func TestCompareDirectionsAndPolarity(t *testing.T) {
	current := []ds.Submission{
		submission(20, 20, ds.SeverityNormal, 1, "Common Cold"),
		submission(21, 30, ds.SeverityModerate, 1, "Common Cold"),
	}
	previous := []ds.Submission{
		submission(10, 80, ds.SeverityRisky, 2, "Malaria"),
		submission(11, 80, ds.SeverityRisky, 2, "Malaria"),
	}

	cmp := Compare(current, previous)

	sev := cmp.Metrics["avg_severity"]
	if sev.Direction != "down" || !sev.IsImprovement {
		t.Fatalf("falling severity should be an improvement: %+v", sev)
	}

	risky := cmp.Metrics["risky_cases"]
	if risky.Direction != "down" || !risky.IsImprovement {
		t.Fatalf("fewer risky cases should be an improvement: %+v", risky)
	}

	health := cmp.Metrics["health_score"]
	if health.Direction != "up" || !health.IsImprovement {
		t.Fatalf("rising health score should be an improvement: %+v", health)
	}

	total := cmp.Metrics["total_predictions"]
	if !total.Neutral {
		t.Fatalf("submission volume has no polarity: %+v", total)
	}
}

func TestCompareFlatAndZeroPrevious(t *testing.T) {
	subs := []ds.Submission{submission(1, 40, ds.SeverityModerate, 1, "Common Cold")}

	cmp := Compare(subs, subs)
	if d := cmp.Metrics["avg_severity"]; d.Direction != "flat" || d.IsImprovement {
		t.Fatalf("identical windows should be flat: %+v", d)
	}

	// Empty previous window: delta percent must stay finite.
	cmp = Compare(subs, nil)
	d := cmp.Metrics["total_predictions"]
	if d.DeltaPct != 100 {
		t.Fatalf("growth from zero should report 100%%, got %v", d.DeltaPct)
	}
}
