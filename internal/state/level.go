package state

var levelThresholds = []int{0, 50, 150, 300, 500}

var levelNames = []string{
	"Focus Explorer",
	"Focus Seeker",
	"Focus Builder",
	"Focus Architect",
	"Focus Master",
}

// Level derives the user's level from total XP.
func Level(xp int) int {
	for i := len(levelThresholds) - 1; i >= 0; i-- {
		if xp >= levelThresholds[i] {
			return i
		}
	}
	return 0
}

// LevelName names a level, clamping past the top of the table.
func LevelName(level int) string {
	if level < 0 {
		level = 0
	}
	if level >= len(levelNames) {
		level = len(levelNames) - 1
	}
	return levelNames[level]
}
