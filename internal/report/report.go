// Package report renders an analysis result into the downloadable text
// report and writes it under the reports directory.
package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mkazarin/skinaid/internal/filex"
	"github.com/mkazarin/skinaid/internal/models"
)

const title = "Hyper-Personalized Skin Analysis Report"

// Render produces the full plain-text report for one analysis.
func Render(username string, res *models.AnalysisResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n%s\n\n", title, strings.Repeat("=", len(title)))
	fmt.Fprintf(&b, "Report for %s\n", username)
	fmt.Fprintf(&b, "Date: %s\n\n", res.Timestamp.Format("2006-01-02 15:04"))

	section(&b, "1. Analysis Summary")
	fmt.Fprintf(&b, "Detected Skin Type: %s\n", res.DetectedSkinType)
	fmt.Fprintf(&b, "Current Skin Score: %d / 100\n", res.CurrentScore)
	fmt.Fprintf(&b, "Future Score Projection (90 days): %d\n\n", res.Projection90)

	section(&b, "2. Detailed Breakdown")
	fmt.Fprintf(&b, "Hydration Score: %d%%\n", res.HydrationScore)
	fmt.Fprintf(&b, "Acne Risk: %d%%\n", res.AcneRiskPct)
	fmt.Fprintf(&b, "Pigmentation Risk: %d%%\n", res.PigmentationRiskPct)
	fmt.Fprintf(&b, "Pore Visibility Estimate: %s\n", res.PoreVisibility)
	fmt.Fprintf(&b, "Sleep Impact: %d%%\n", res.SleepImpactPct)
	fmt.Fprintf(&b, "Stress Impact: %d%%\n\n", res.StressImpactPct)

	section(&b, "3. Personalized Routine & Recommendations")
	b.WriteString("Morning Routine:\n")
	for _, step := range res.RoutineMorning {
		fmt.Fprintf(&b, "- %s\n", step)
	}
	b.WriteString("\nEvening Routine:\n")
	for _, step := range res.RoutineEvening {
		fmt.Fprintf(&b, "- %s\n", step)
	}
	b.WriteString("\nProduct Categories:\n")
	fmt.Fprintf(&b, "%s\n", strings.Join(res.Recommendations.ProductCategories, ", "))
	b.WriteString("\nLifestyle Actions:\n")
	fmt.Fprintf(&b, "%s\n", res.Recommendations.LifestyleActions)

	return b.String()
}

func section(b *strings.Builder, heading string) {
	fmt.Fprintf(b, "%s\n%s\n", heading, strings.Repeat("-", len(heading)))
}

// Save renders the report and writes it atomically into dir. The file name
// carries the username and the analysis date.
func Save(dir, username string, res *models.AnalysisResult) (string, error) {
	if err := filex.EnsureDir(dir); err != nil {
		return "", err
	}
	name := fmt.Sprintf("skin_report_%s_%s.txt", username, res.Timestamp.Format("2006-01-02"))
	path := filepath.Join(dir, name)
	if err := filex.WriteFileAtomic(path, []byte(Render(username, res)), 0o600); err != nil {
		return "", err
	}
	return path, nil
}
