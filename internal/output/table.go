package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/arcc-research/grantmatch/internal/matcher"
	"github.com/arcc-research/grantmatch/internal/store"
)

// Table writes data as a formatted table to stdout.
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer.
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []matcher.Result:
		return resultsTable(w, v)
	case []store.Opportunity:
		return opportunitiesTable(w, v)
	case []store.Person:
		return peopleTable(w, v)
	case *store.Stats:
		return statsTable(w, v)
	case *matcher.Profile:
		return profileDetail(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func resultsTable(w io.Writer, results []matcher.Result) error {
	if len(results) == 0 {
		fmt.Fprintln(w, "No matching opportunities found.")
		return nil
	}

	tw := tablewriter.NewTable(w)
	tw.Header("#", "NUMBER", "TITLE", "AGENCY", "SCORE", "SEM", "TIME", "ELIG")

	for i, r := range results {
		row := []string{
			fmt.Sprintf("%d", i+1),
			r.Number,
			truncate(r.Title, 45),
			truncate(r.AgencyName, 25),
			fmt.Sprintf("%.3f", r.OverallScore),
			fmt.Sprintf("%.3f", r.SemanticScore),
			fmt.Sprintf("%.3f", r.TimeScore),
			fmt.Sprintf("%.3f", r.EligibilityScore),
		}
		if err := tw.Append(row); err != nil {
			return err
		}
	}

	if err := tw.Render(); err != nil {
		return err
	}

	if len(results) > 0 {
		used := results[0].WeightsUsed
		fmt.Fprintf(w, "\nWeights: semantic %.2f, time %.2f, eligibility %.2f\n",
			used.Semantic, used.Time, used.Eligibility)
	}

	return nil
}

func opportunitiesTable(w io.Writer, opps []store.Opportunity) error {
	if len(opps) == 0 {
		fmt.Fprintln(w, "No opportunities found.")
		return nil
	}

	tw := tablewriter.NewTable(w)
	tw.Header("NUMBER", "TITLE", "AGENCY", "STATUS", "OPEN", "CLOSE")

	for _, o := range opps {
		row := []string{
			strOr(o.OpportunityNumber, "-"),
			truncate(o.Title, 50),
			truncate(strOr(o.AgencyName, "-"), 25),
			o.Status,
			strOr(o.OpenDate, "-"),
			strOr(o.CloseDate, "-"),
		}
		if err := tw.Append(row); err != nil {
			return err
		}
	}

	return tw.Render()
}

func peopleTable(w io.Writer, people []store.Person) error {
	if len(people) == 0 {
		fmt.Fprintln(w, "No people found.")
		return nil
	}

	tw := tablewriter.NewTable(w)
	tw.Header("ID", "NAME", "DEPARTMENT")

	for _, p := range people {
		row := []string{p.ID, p.FullName, strOr(p.Department, "-")}
		if err := tw.Append(row); err != nil {
			return err
		}
	}

	return tw.Render()
}

func statsTable(w io.Writer, s *store.Stats) error {
	fmt.Fprintln(w, "Store Statistics")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	fmt.Fprintf(w, "People:          %d\n", s.People)
	fmt.Fprintf(w, "Projects:        %d\n", s.Projects)
	fmt.Fprintf(w, "Publications:    %d\n", s.Publications)
	fmt.Fprintf(w, "Grant records:   %d\n", s.GrantRecords)
	fmt.Fprintf(w, "Opportunities:   %d\n", s.Opportunities)
	return nil
}

func profileDetail(w io.Writer, p *matcher.Profile) error {
	fmt.Fprintf(w, "PI:          %s\n", p.PersonID)

	categories := p.Categories.Sorted()
	if len(categories) == 0 {
		fmt.Fprintln(w, "Categories:  (none - no taxonomy keywords found in tracked records)")
	} else {
		fmt.Fprintf(w, "Categories:  %s\n", strings.Join(categories, ", "))
	}

	fmt.Fprintf(w, "Projects:    %d", len(p.Projects))
	if active := countActive(p.Projects); active > 0 {
		fmt.Fprintf(w, " (%d in active-need stages)", active)
	}
	fmt.Fprintln(w)

	for _, proj := range p.Projects {
		fmt.Fprintf(w, "  - [%s] %s\n", proj.Stage, truncate(proj.Title, 60))
	}

	fmt.Fprintf(w, "Grants:      %d past grant records\n", len(p.GrantHistory))
	return nil
}

func countActive(projects []matcher.Project) int {
	n := 0
	for _, p := range projects {
		if p.Stage.ActiveNeed() {
			n++
		}
	}
	return n
}

func strOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
