package taxonomy

import (
	"reflect"
	"testing"
)

func testTaxonomy(t *testing.T) *Taxonomy {
	t.Helper()
	tax, err := Parse([]byte(`{
		"vascular": {"keywords": ["vascular", "artery", "blood vessel"]},
		"clinical": {"keywords": ["clinical", "patient", "trial"]},
		"imaging":  {"keywords": ["ultrasound", "mri"]}
	}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return tax
}

func TestExtract(t *testing.T) {
	tax := testTaxonomy(t)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty text",
			text: "",
			want: []string{},
		},
		{
			name: "no matches",
			text: "quantum computing for cryptography",
			want: []string{},
		},
		{
			name: "single category",
			text: "carotid artery stenosis progression",
			want: []string{"vascular"},
		},
		{
			name: "case insensitive",
			text: "VASCULAR disease in ELDERLY Patients",
			want: []string{"clinical", "vascular"},
		},
		{
			name: "multi-word keyword",
			text: "blood vessel wall remodeling",
			want: []string{"vascular"},
		},
		{
			name: "category counted once despite multiple keywords",
			text: "clinical trial of patient outcomes",
			want: []string{"clinical"},
		},
		{
			name: "substring inside a larger word",
			text: "intravascular ultrasound",
			want: []string{"imaging", "vascular"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tax.Extract(tt.text).Sorted()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestCategorySet_Union(t *testing.T) {
	a := NewCategorySet("vascular", "clinical")
	b := NewCategorySet("clinical", "imaging")

	got := a.Union(b).Sorted()
	want := []string{"clinical", "imaging", "vascular"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Union() = %v, want %v", got, want)
	}

	// Union must not mutate its inputs.
	if a.Len() != 2 || b.Len() != 2 {
		t.Errorf("Union mutated inputs: len(a) = %d, len(b) = %d", a.Len(), b.Len())
	}
}

func TestCategorySet_MarshalJSON(t *testing.T) {
	s := NewCategorySet("vascular", "clinical")
	data, err := s.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if got, want := string(data), `["clinical","vascular"]`; got != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}
