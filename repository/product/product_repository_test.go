package product

import (
	"reflect"
	"strings"
	"testing"

	"github.com/muhammadheryan/marketplace/model"
)

func strPtr(s string) *string { return &s }

func TestBuildListQuery(t *testing.T) {
	tests := []struct {
		name      string
		filter    *model.ProductFilter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "no filter lists everything",
			filter:    &model.ProductFilter{},
			wantWhere: "",
			wantArgs:  []any{},
		},
		{
			name:      "nil filter lists everything",
			filter:    nil,
			wantWhere: "",
			wantArgs:  []any{},
		},
		{
			name:      "category is an exact match",
			filter:    &model.ProductFilter{Category: strPtr("Home Decor")},
			wantWhere: "WHERE p.category = ?",
			wantArgs:  []any{"Home Decor"},
		},
		{
			name:      "search value is a folded substring match",
			filter:    &model.ProductFilter{SearchValue: strPtr("LaMp")},
			wantWhere: "WHERE LOWER(p.name) LIKE ?",
			wantArgs:  []any{"%lamp%"},
		},
		{
			name:      "category wins over search value",
			filter:    &model.ProductFilter{Category: strPtr("Books"), SearchValue: strPtr("go")},
			wantWhere: "WHERE p.category = ?",
			wantArgs:  []any{"Books"},
		},
		{
			name:      "like wildcards in search value are escaped",
			filter:    &model.ProductFilter{SearchValue: strPtr("50%_off")},
			wantWhere: "WHERE LOWER(p.name) LIKE ?",
			wantArgs:  []any{`%50\%\_off%`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildListQuery(tt.filter)
			if !strings.HasSuffix(query, " ORDER BY p.id") {
				t.Fatalf("query %q is not ordered by id", query)
			}
			hasWhere := strings.Contains(query, "WHERE")
			if tt.wantWhere == "" && hasWhere {
				t.Fatalf("query %q has unexpected WHERE", query)
			}
			if tt.wantWhere != "" && !strings.Contains(query, tt.wantWhere) {
				t.Fatalf("query %q does not contain %q", query, tt.wantWhere)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Fatalf("args = %#v, want %#v", args, tt.wantArgs)
			}
		})
	}
}
