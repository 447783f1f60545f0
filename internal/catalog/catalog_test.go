package catalog

import "testing"

func TestLanguageCode(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"spanish", "es"},
		{"Spanish", "es"},
		{"FRENCH", "fr"},
		{"hindi", "hi"},
		{"chinese", "zh"},
		{"hebrew", "he"},
		{"klingon", "en"},
		{"", "en"},
	}

	for _, tt := range tests {
		if got := LanguageCode(tt.name); got != tt.want {
			t.Fatalf("LanguageCode(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestMatchDestination(t *testing.T) {
	tests := []struct {
		prompt   string
		wantName string
		wantOK   bool
	}{
		{"plan a trip to goa", "goa", true},
		{"jaipur palace tour", "rajasthan", true},
		{"snow in manali", "himachal", true},
		{"weekend in shimla", "himachal", true},
		{"work trip to bengaluru", "bangalore", true},
		// 多目的地按目录声明顺序取第一个
		{"goa then kerala backwaters", "goa", true},
		{"somewhere warm please", "", false},
	}

	for _, tt := range tests {
		route, ok := MatchDestination(tt.prompt)
		if ok != tt.wantOK {
			t.Fatalf("MatchDestination(%q) ok = %v, want %v", tt.prompt, ok, tt.wantOK)
		}
		if ok && route.Name != tt.wantName {
			t.Fatalf("MatchDestination(%q) = %q, want %q", tt.prompt, route.Name, tt.wantName)
		}
	}
}

func TestDestinationPlansAreOrdered(t *testing.T) {
	for _, route := range DestinationRoutes {
		if len(route.Plan) == 0 {
			t.Fatalf("route %q has an empty plan", route.Name)
		}
		for i, tpl := range route.Plan {
			if tpl.EndOffset <= tpl.StartOffset {
				t.Fatalf("route %q activity %d: end offset %v not after start %v",
					route.Name, i, tpl.EndOffset, tpl.StartOffset)
			}
			if i > 0 && tpl.StartOffset < route.Plan[i-1].StartOffset {
				t.Fatalf("route %q: activity %d starts before activity %d", route.Name, i, i-1)
			}
		}
	}
}
