package habit

import (
	"strconv"
	"strings"
)

// Palette is the set of colors offered when creating a habit.
var Palette = []string{
	"#10b981", "#8b5cf6", "#ef4444", "#f59e0b", "#06b6d4",
	"#3b82f6", "#ec4899", "#f97316", "#84cc16", "#6366f1",
}

// Presets are ready-made habits offered before the custom form.
var Presets = []Draft{
	{Icon: "🚶", Name: "Walk around the block", Description: "Go for a short walk to clear the mind", Color: "#10b981"},
	{Icon: "📚", Name: "Learn Norwegian", Description: "Three lessons per day", Color: "#8b5cf6"},
	{Icon: "🍎", Name: "Eat a piece of fruit", Description: "Stay healthy and don't overeat", Color: "#ef4444"},
	{Icon: "🧘", Name: "Stretch for 5 minutes", Description: "Improve flexibility and relax muscles", Color: "#f59e0b"},
	{Icon: "💨", Name: "Deep breathing exercise", Description: "Calm your mind with a quick exercise", Color: "#06b6d4"},
	{Icon: "💧", Name: "Drink 8 glasses of water", Description: "Stay hydrated throughout the day", Color: "#3b82f6"},
	{Icon: "📝", Name: "Write in journal", Description: "Reflect on your day and thoughts", Color: "#ec4899"},
	{Icon: "🏃", Name: "Exercise for 30 minutes", Description: "Keep your body active and healthy", Color: "#f97316"},
}

// FindPreset returns the preset at 1-based position n or with a
// case-insensitive name match.
func FindPreset(q string) (Draft, bool) {
	for i, p := range Presets {
		if q == strconv.Itoa(i+1) || strings.EqualFold(p.Name, q) {
			return p, true
		}
	}
	return Draft{}, false
}
