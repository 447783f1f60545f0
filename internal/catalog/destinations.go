// Package catalog 持有进程级只读的静态目录：目的地行程脚本、
// 预订候选目录和语言码表。表在进程启动时构建一次，请求路径上只读，
// 具体时间戳由 service 层基于当前时间另行推算。
package catalog

import (
	"strings"
	"time"

	"VoyaGo/internal/model"
)

// ActivityTemplate 行程条目模板，偏移量相对基准时刻（次日 09:00）。
type ActivityTemplate struct {
	Title       string
	Type        model.ActivityType
	Location    string
	StartOffset time.Duration
	EndOffset   time.Duration
	Description string
	Notes       string
}

// DestinationRoute 一个目的地的手工行程脚本。
type DestinationRoute struct {
	Name     string   // 日志与指标里用的目的地标签
	Keywords []string // 在归一化后的 prompt 中查找的关键词
	Plan     []ActivityTemplate
}

// DestinationRoutes 按优先级排列的目的地脚本，首个命中者生效。
var DestinationRoutes = []DestinationRoute{
	{
		Name:     "goa",
		Keywords: []string{"goa"},
		Plan: []ActivityTemplate{
			{
				Title:       "Arrive in Goa & Check-in",
				Type:        model.ActivityTransport,
				Location:    "Goa Airport (GOI)",
				StartOffset: 0,
				EndOffset:   2 * time.Hour,
				Description: "Airport pickup and hotel check-in",
				Notes:       "Pre-book airport transfer for convenience",
			},
			{
				Title:       "Lunch at Britto's",
				Type:        model.ActivityDining,
				Location:    "Baga Beach, North Goa",
				StartOffset: 4 * time.Hour,
				EndOffset:   5 * time.Hour,
				Description: "Famous beachside restaurant with fresh seafood",
				Notes:       "Try the seafood platter and king fish curry",
			},
			{
				Title:       "Relax at Baga Beach",
				Type:        model.ActivityGeneric,
				Location:    "Baga Beach, North Goa",
				StartOffset: 6 * time.Hour,
				EndOffset:   9 * time.Hour,
				Description: "Beach relaxation and water sports",
				Notes:       "Perfect time for parasailing and jet skiing",
			},
			{
				Title:       "Sunset at Anjuna Beach",
				Type:        model.ActivitySightseeing,
				Location:    "Anjuna Beach, North Goa",
				StartOffset: 10 * time.Hour,
				EndOffset:   11 * time.Hour,
				Description: "Famous sunset point with hippie culture",
				Notes:       "Don't miss the Wednesday flea market if visiting on Wednesday",
			},
		},
	},
	{
		Name:     "kerala",
		Keywords: []string{"kerala"},
		Plan: []ActivityTemplate{
			{
				Title:       "Backwater Cruise",
				Type:        model.ActivityGeneric,
				Location:    "Alleppey Backwaters",
				StartOffset: 0,
				EndOffset:   4 * time.Hour,
				Description: "Traditional houseboat experience",
				Notes:       "Book overnight houseboat for full experience",
			},
			{
				Title:       "Kerala Traditional Lunch",
				Type:        model.ActivityDining,
				Location:    "Local Village Restaurant",
				StartOffset: 5 * time.Hour,
				EndOffset:   6 * time.Hour,
				Description: "Authentic Kerala meal on banana leaf",
				Notes:       "Try the fish curry and appam",
			},
			{
				Title:       "Spice Plantation Tour",
				Type:        model.ActivitySightseeing,
				Location:    "Thekkady Spice Gardens",
				StartOffset: 7 * time.Hour,
				EndOffset:   10 * time.Hour,
				Description: "Learn about spice cultivation",
				Notes:       "Buy fresh spices and tea directly from farmers",
			},
		},
	},
	{
		Name:     "mumbai",
		Keywords: []string{"mumbai"},
		Plan: []ActivityTemplate{
			{
				Title:       "Visit Gateway of India",
				Type:        model.ActivitySightseeing,
				Location:    "Colaba, Mumbai",
				StartOffset: 0,
				EndOffset:   2 * time.Hour,
				Description: "Iconic Mumbai landmark",
				Notes:       "Take a boat ride to Elephanta Caves from here",
			},
			{
				Title:       "Business Lunch Meeting",
				Type:        model.ActivityBusiness,
				Location:    "Nariman Point Business District",
				StartOffset: 4 * time.Hour,
				EndOffset:   6 * time.Hour,
				Description: "Professional meeting at business district",
				Notes:       "Book conference room in advance",
			},
			{
				Title:       "Marine Drive Evening Walk",
				Type:        model.ActivityGeneric,
				Location:    "Marine Drive, Mumbai",
				StartOffset: 8 * time.Hour,
				EndOffset:   10 * time.Hour,
				Description: "Stroll along the Queen's Necklace",
				Notes:       "Perfect for sunset views and street food",
			},
		},
	},
	{
		Name:     "rajasthan",
		Keywords: []string{"rajasthan", "jaipur"},
		Plan: []ActivityTemplate{
			{
				Title:       "Amber Fort Visit",
				Type:        model.ActivitySightseeing,
				Location:    "Amber Fort, Jaipur",
				StartOffset: 0,
				EndOffset:   3 * time.Hour,
				Description: "Magnificent Rajput fort architecture",
				Notes:       "Take elephant ride or jeep to reach the fort",
			},
			{
				Title:       "Royal Rajasthani Lunch",
				Type:        model.ActivityDining,
				Location:    "City Palace Restaurant, Jaipur",
				StartOffset: 4 * time.Hour,
				EndOffset:   5*time.Hour + 30*time.Minute,
				Description: "Traditional Rajasthani thali",
				Notes:       "Try dal baati churma and gatte ki sabzi",
			},
			{
				Title:       "Hawa Mahal Photography",
				Type:        model.ActivitySightseeing,
				Location:    "Hawa Mahal, Jaipur",
				StartOffset: 6 * time.Hour,
				EndOffset:   7*time.Hour + 30*time.Minute,
				Description: "Palace of Winds photo session",
				Notes:       "Best views from the opposite coffee shop",
			},
			{
				Title:       "Johari Bazaar Shopping",
				Type:        model.ActivityShopping,
				Location:    "Johari Bazaar, Jaipur",
				StartOffset: 8 * time.Hour,
				EndOffset:   10 * time.Hour,
				Description: "Shop for jewelry, textiles, and handicrafts",
				Notes:       "Bargain for best prices and check gem certificates",
			},
		},
	},
	{
		Name:     "himachal",
		Keywords: []string{"himachal", "manali", "shimla"},
		Plan: []ActivityTemplate{
			{
				Title:       "Trek to Triund",
				Type:        model.ActivityGeneric,
				Location:    "McLeod Ganj, Himachal Pradesh",
				StartOffset: 0,
				EndOffset:   6 * time.Hour,
				Description: "Popular trekking destination with mountain views",
				Notes:       "Carry warm clothes and water. Trek difficulty: Easy to moderate",
			},
			{
				Title:       "Mountain Cafe Lunch",
				Type:        model.ActivityDining,
				Location:    "Dharamkot Village",
				StartOffset: 7 * time.Hour,
				EndOffset:   8 * time.Hour,
				Description: "Cafe with panoramic mountain views",
				Notes:       "Try momos and thukpa for authentic mountain food",
			},
			{
				Title:       "Visit Dalai Lama Temple",
				Type:        model.ActivitySightseeing,
				Location:    "McLeod Ganj, Himachal Pradesh",
				StartOffset: 9 * time.Hour,
				EndOffset:   10*time.Hour + 30*time.Minute,
				Description: "Peaceful Buddhist temple complex",
				Notes:       "Respect local customs and maintain silence",
			},
		},
	},
	{
		Name:     "bangalore",
		Keywords: []string{"bangalore", "bengaluru"},
		Plan: []ActivityTemplate{
			{
				Title:       "Cubbon Park Morning Walk",
				Type:        model.ActivityGeneric,
				Location:    "Cubbon Park, Bangalore",
				StartOffset: 0,
				EndOffset:   2 * time.Hour,
				Description: "Green oasis in the heart of the city",
				Notes:       "Perfect for jogging and photography",
			},
			{
				Title:       "South Indian Breakfast",
				Type:        model.ActivityDining,
				Location:    "MTR Restaurant, Bangalore",
				StartOffset: 2*time.Hour + 30*time.Minute,
				EndOffset:   3*time.Hour + 30*time.Minute,
				Description: "Authentic South Indian breakfast",
				Notes:       "Try masala dosa and filter coffee",
			},
			{
				Title:       "Bangalore Palace Tour",
				Type:        model.ActivitySightseeing,
				Location:    "Bangalore Palace",
				StartOffset: 5 * time.Hour,
				EndOffset:   7 * time.Hour,
				Description: "Tudor-style architecture palace",
				Notes:       "Audio guide available for detailed history",
			},
			{
				Title:       "Microbrewery Dinner",
				Type:        model.ActivityDining,
				Location:    "Koramangala, Bangalore",
				StartOffset: 10 * time.Hour,
				EndOffset:   12 * time.Hour,
				Description: "Experience Bangalore's famous brewery culture",
				Notes:       "Try local craft beers and Continental food",
			},
		},
	},
}

// GenericActivities 兜底模板。service 层按天数循环取前三条，
// 偏移量按 day*24h + i*3h 推算，单条时长 2 小时。
var GenericActivities = []ActivityTemplate{
	{
		Title:       "Explore Local Attractions",
		Type:        model.ActivitySightseeing,
		Location:    "City Center",
		Description: "Visit popular landmarks and tourist spots",
		Notes:       "Research local history and book guided tours",
	},
	{
		Title:       "Local Cuisine Experience",
		Type:        model.ActivityDining,
		Location:    "Traditional Restaurant",
		Description: "Taste authentic local dishes",
		Notes:       "Ask locals for recommendations",
	},
	{
		Title:       "Cultural Activity",
		Type:        model.ActivityGeneric,
		Location:    "Cultural Center",
		Description: "Immerse in local culture and traditions",
		Notes:       "Respect local customs and dress codes",
	},
	{
		Title:       "Shopping for Souvenirs",
		Type:        model.ActivityShopping,
		Location:    "Local Market",
		Description: "Buy unique local handicrafts and souvenirs",
		Notes:       "Bargain respectfully and check authenticity",
	},
}

// MatchDestination 按优先级在归一化后的 prompt 中查找目的地。
// prompt 需要已 lower+trim。
func MatchDestination(prompt string) (DestinationRoute, bool) {
	for _, route := range DestinationRoutes {
		for _, kw := range route.Keywords {
			if strings.Contains(prompt, kw) {
				return route, true
			}
		}
	}
	return DestinationRoute{}, false
}
