package habit

var tips = map[ID][]string{
	NoSugar: {
		"Try fruit when craving sweets",
		"Check labels for hidden sugars",
		"Stay hydrated to reduce cravings",
	},
	WaterOnly: {
		"Aim for 8 glasses today",
		"Add lemon for variety",
		"Set hourly water reminders",
	},
	ExerciseDay: {
		"Even 20 mins counts!",
		"Take the stairs today",
		"Stretch before and after",
	},
	NoSnacks: {
		"Eat filling meals",
		"Drink water when hungry",
		"Keep busy between meals",
	},
	LowScreen: {
		"Set app time limits",
		"No phones at meals",
		"Try a screen-free hour",
	},
	Read: {
		"Read for 15 mins minimum",
		"Try audiobooks while commuting",
		"Keep a book by your bed",
	},
}

// Tips returns a copy of the tip list for id; nil when id is unknown.
func Tips(id ID) []string {
	list, ok := tips[id]
	if !ok {
		return nil
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}
