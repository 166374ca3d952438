package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPredicate(t *testing.T) {
	rows := []string{"Apples", "Bananas", "apple pie"}
	tests := []struct {
		query string
		want  []bool
	}{
		{query: "app", want: []bool{true, false, true}},
		{query: "APP", want: []bool{true, false, true}},
		{query: "", want: []bool{true, true, true}},
		{query: "nan", want: []bool{false, true, false}},
		{query: "pie ", want: []bool{false, false, false}},
		{query: "e p", want: []bool{false, false, true}},
	}
	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			show := Predicate(tc.query)
			got := make([]bool, len(rows))
			for i, r := range rows {
				got[i] = show(r)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("visibility mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
