package matcher

import (
	"testing"

	"github.com/arcc-research/grantmatch/internal/taxonomy"
)

func TestJaccard(t *testing.T) {
	tests := []struct {
		name string
		a    taxonomy.CategorySet
		b    taxonomy.CategorySet
		want float64
	}{
		{
			name: "half overlap",
			a:    taxonomy.NewCategorySet("vascular"),
			b:    taxonomy.NewCategorySet("vascular", "clinical"),
			want: 0.5,
		},
		{
			name: "identical sets",
			a:    taxonomy.NewCategorySet("vascular", "imaging"),
			b:    taxonomy.NewCategorySet("vascular", "imaging"),
			want: 1.0,
		},
		{
			name: "disjoint sets",
			a:    taxonomy.NewCategorySet("vascular"),
			b:    taxonomy.NewCategorySet("clinical"),
			want: 0.0,
		},
		{
			name: "empty profile",
			a:    taxonomy.NewCategorySet(),
			b:    taxonomy.NewCategorySet("vascular", "clinical"),
			want: 0.0,
		},
		{
			name: "empty candidate",
			a:    taxonomy.NewCategorySet("vascular"),
			b:    taxonomy.NewCategorySet(),
			want: 0.0,
		},
		{
			name: "both empty",
			a:    taxonomy.NewCategorySet(),
			b:    taxonomy.NewCategorySet(),
			want: 0.0,
		},
		{
			name: "one of three shared",
			a:    taxonomy.NewCategorySet("vascular", "aortic"),
			b:    taxonomy.NewCategorySet("vascular", "clinical"),
			want: 1.0 / 3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Jaccard(tt.a, tt.b); got != tt.want {
				t.Errorf("Jaccard() = %v, want %v", got, tt.want)
			}
			// Symmetry.
			if got := Jaccard(tt.b, tt.a); got != tt.want {
				t.Errorf("Jaccard() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEngine_CandidateCategories(t *testing.T) {
	e := NewEngine(taxonomy.Default())

	c := Candidate{
		Title:       "Vascular Health Research Initiative",
		Description: "Clinical studies of carotid artery disease",
	}

	got := e.CandidateCategories(c)
	for _, want := range []string{"vascular", "clinical", "carotid"} {
		if !got.Has(want) {
			t.Errorf("CandidateCategories() missing %q, got %v", want, got.Sorted())
		}
	}

	empty := e.CandidateCategories(Candidate{})
	if empty.Len() != 0 {
		t.Errorf("CandidateCategories(empty) = %v, want empty", empty.Sorted())
	}
}
