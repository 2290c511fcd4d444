package domain

import (
	"encoding/json"
	"testing"
)

func TestMatchesQuery(t *testing.T) {
	asha := Alumni{
		Name:    StringPtr("Asha Rao"),
		Company: StringPtr("Ace Corp"),
		Skills:  []string{"Python", "Kubernetes"},
	}

	tests := []struct {
		name   string
		query  string
		alumni Alumni
		want   bool
	}{
		{name: "company substring", query: "ace", alumni: asha, want: true},
		{name: "name case-insensitive", query: "ASHA", alumni: asha, want: true},
		{name: "skill only", query: "python", alumni: asha, want: true},
		{name: "empty query", query: "", alumni: asha, want: true},
		{name: "across fields", query: "rao ace", alumni: asha, want: true},
		{name: "no match", query: "golang", alumni: asha, want: false},
		{name: "substring not fuzzy", query: "pyton", alumni: asha, want: false},
		{
			name:   "missing company and skills",
			query:  "asha",
			alumni: Alumni{Name: StringPtr("Asha")},
			want:   true,
		},
		{
			name:   "missing company does not match placeholder text",
			query:  "undefined",
			alumni: Alumni{Name: StringPtr("Asha")},
			want:   false,
		},
		{
			name:   "unicode folding",
			query:  "ÉCOLE",
			alumni: Alumni{Name: StringPtr("Marie"), Company: StringPtr("école 42")},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesQuery(tt.alumni, tt.query); got != tt.want {
				t.Errorf("MatchesQuery(%q) = %v, want %v (blob %q)", tt.query, got, tt.want, SearchBlob(tt.alumni))
			}
		})
	}
}

func TestSearchBlob(t *testing.T) {
	a := Alumni{
		Name:    StringPtr("Ravi"),
		Company: StringPtr("Zeta"),
		Skills:  []string{"Go", "SQL"},
	}
	if got, want := SearchBlob(a), "ravi zeta go sql"; got != want {
		t.Errorf("SearchBlob() = %q, want %q", got, want)
	}

	if got, want := SearchBlob(Alumni{Name: StringPtr("Ravi")}), "ravi  "; got != want {
		t.Errorf("SearchBlob() without company/skills = %q, want %q", got, want)
	}
}

func TestFilterAlumniKeepsOrder(t *testing.T) {
	list := []Alumni{
		{ID: "1", Name: StringPtr("Asha Rao")},
		{ID: "2", Name: StringPtr("Vikram")},
		{ID: "3", Name: StringPtr("Ashwin")},
	}

	got := FilterAlumni(list, "ash")
	if len(got) != 2 {
		t.Fatalf("FilterAlumni() returned %d profiles, want 2", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("FilterAlumni() order = [%s %s], want [1 3]", got[0].ID, got[1].ID)
	}

	if all := FilterAlumni(list, ""); len(all) != len(list) {
		t.Errorf("FilterAlumni(\"\") returned %d profiles, want %d", len(all), len(list))
	}

	if none := FilterAlumni(list, "zzz"); none == nil || len(none) != 0 {
		t.Errorf("FilterAlumni() with no match = %v, want empty non-nil slice", none)
	}
}

func TestSearchBlobUsesUntypedValues(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "mixed skills array",
			in:   `{"name":"Meera","company":"Zeta","skills":["Go",5,true,null]}`,
			want: "meera zeta go 5 true ",
		},
		{
			name: "nested skills array",
			in:   `{"name":"Meera","skills":[["Go","Rust"],{"level":3}]}`,
			want: "meera  go,rust ",
		},
		{
			name: "numeric name",
			in:   `{"name":42,"company":"Zeta"}`,
			want: "42 zeta ",
		},
		{
			name: "null name",
			in:   `{"name":null,"company":"Zeta"}`,
			want: " zeta ",
		},
		{
			name: "zero company counts as missing",
			in:   `{"name":"Ravi","company":0}`,
			want: "ravi  ",
		},
		{
			name: "numeric company",
			in:   `{"name":"Ravi","company":1.5}`,
			want: "ravi 1.5 ",
		},
		{
			name: "skills object",
			in:   `{"name":"Ravi","skills":{"Go":true}}`,
			want: "ravi  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Alumni
			if err := json.Unmarshal([]byte(tt.in), &a); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if got := SearchBlob(a); got != tt.want {
				t.Errorf("SearchBlob() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMatchesQueryMixedSkills(t *testing.T) {
	var a Alumni
	if err := json.Unmarshal([]byte(`{"name":"Meera","company":"Zeta","skills":["Go",5]}`), &a); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if a.Skills != nil {
		t.Fatalf("Skills = %v, want the mixed array kept untyped", a.Skills)
	}
	for _, q := range []string{"go", "5", "meera zeta go 5"} {
		if !MatchesQuery(a, q) {
			t.Errorf("MatchesQuery(%q) = false, want true (blob %q)", q, SearchBlob(a))
		}
	}
}
