package plan

import "trainlock/internal/models"

// DayTemplate describes one session slot of a template week. Zero-valued
// Minutes/Km mean "no planned target for that dimension".
type DayTemplate struct {
	Type         models.SessionType
	Minutes      int
	Km           float64
	Focus        string
	Instructions string
}

// Week is an ordered Mon-Fri run of five session templates.
type Week []DayTemplate

// Phase is a named stage of the program, defined by a fixed template of weeks.
type Phase struct {
	Name  string
	Weeks []Week
}

// Phases returns the static program catalog: three phases of eight weeks, five
// sessions per week. The values are domain content; structure is what the rest
// of the system depends on.
func Phases() []Phase {
	return []Phase{foundation(), development(), sharpening()}
}

func foundation() Phase {
	return Phase{
		Name: "Foundation",
		Weeks: []Week{
			{
				{Type: models.TypeLight, Minutes: 30, Focus: "easy aerobic", Instructions: "Conversational pace throughout."},
				{Type: models.TypeInterval, Minutes: 30, Focus: "6×1 min", Instructions: "1 min brisk, 2 min jog recovery."},
				{Type: models.TypeStrength, Minutes: 35, Focus: "full body circuit", Instructions: "Squats, push-ups, rows, planks. 3 rounds."},
				{Type: models.TypeModerate, Minutes: 35, Focus: "steady state"},
				{Type: models.TypeLongRun, Minutes: 60, Km: 8, Focus: "long easy", Instructions: "Keep heart rate low, walk hills if needed."},
			},
			{
				{Type: models.TypeLight, Minutes: 30, Focus: "easy aerobic"},
				{Type: models.TypeInterval, Minutes: 30, Focus: "6×1 min", Instructions: "Same as last week, smoother turnover."},
				{Type: models.TypeStrength, Minutes: 35, Focus: "full body circuit"},
				{Type: models.TypeModerate, Minutes: 40, Focus: "steady state"},
				{Type: models.TypeLongRun, Minutes: 65, Km: 9, Focus: "long easy"},
			},
			{
				{Type: models.TypeLight, Minutes: 35, Focus: "easy aerobic"},
				{Type: models.TypeInterval, Minutes: 32, Focus: "8×1 min", Instructions: "1 min brisk, 90 s jog recovery."},
				{Type: models.TypeStrength, Minutes: 40, Focus: "legs and core", Instructions: "Lunges, step-ups, dead bugs. 3 rounds."},
				{Type: models.TypeModerate, Minutes: 40, Focus: "steady state"},
				{Type: models.TypeLongRun, Minutes: 70, Km: 10, Focus: "long easy"},
			},
			{
				{Type: models.TypeLight, Minutes: 30, Focus: "recovery week", Instructions: "Shorter and slower on purpose."},
				{Type: models.TypeInterval, Minutes: 28, Focus: "5×1 min"},
				{Type: models.TypeStrength, Minutes: 30, Focus: "mobility", Instructions: "Light circuit plus hip mobility work."},
				{Type: models.TypeModerate, Minutes: 35, Focus: "steady state"},
				{Type: models.TypeLongRun, Minutes: 60, Km: 8, Focus: "long easy"},
			},
			{
				{Type: models.TypeLight, Minutes: 35, Focus: "easy aerobic"},
				{Type: models.TypeInterval, Minutes: 34, Focus: "4×2 min", Instructions: "2 min strong, 2 min jog recovery."},
				{Type: models.TypeStrength, Minutes: 40, Focus: "full body circuit"},
				{Type: models.TypeModerate, Minutes: 45, Focus: "steady state"},
				{Type: models.TypeLongRun, Minutes: 75, Km: 11, Focus: "long easy"},
			},
			{
				{Type: models.TypeLight, Minutes: 35, Focus: "easy aerobic"},
				{Type: models.TypeInterval, Minutes: 34, Focus: "5×2 min"},
				{Type: models.TypeStrength, Minutes: 40, Focus: "legs and core"},
				{Type: models.TypeModerate, Minutes: 45, Focus: "steady state"},
				{Type: models.TypeLongRun, Minutes: 80, Km: 12, Focus: "long easy"},
			},
			{
				{Type: models.TypeLight, Minutes: 40, Focus: "easy aerobic"},
				{Type: models.TypeInterval, Minutes: 36, Focus: "6×2 min", Instructions: "2 min strong, 90 s jog recovery."},
				{Type: models.TypeStrength, Minutes: 45, Focus: "full body circuit"},
				{Type: models.TypeModerate, Minutes: 50, Focus: "steady state"},
				{Type: models.TypeLongRun, Minutes: 85, Km: 13, Focus: "long easy"},
			},
			{
				{Type: models.TypeLight, Minutes: 30, Focus: "recovery week"},
				{Type: models.TypeInterval, Minutes: 30, Focus: "4×2 min"},
				{Type: models.TypeStrength, Minutes: 30, Focus: "mobility"},
				{Type: models.TypeModerate, Minutes: 40, Focus: "steady state"},
				{Type: models.TypeLongRun, Minutes: 70, Km: 10, Focus: "long easy"},
			},
		},
	}
}

func development() Phase {
	return Phase{
		Name: "Development",
		Weeks: []Week{
			{
				{Type: models.TypeLight, Minutes: 40, Focus: "easy aerobic"},
				{Type: models.TypeInterval, Minutes: 38, Focus: "5×3 min", Instructions: "3 min at threshold, 2 min jog recovery."},
				{Type: models.TypeStrength, Minutes: 45, Focus: "heavy lower body", Instructions: "Goblet squats, RDLs, calf raises. 4 sets."},
				{Type: models.TypeModerate, Minutes: 50, Focus: "steady state"},
				{Type: models.TypeLongRun, Minutes: 90, Km: 14, Focus: "long easy"},
			},
			{
				{Type: models.TypeLight, Minutes: 40, Focus: "easy aerobic"},
				{Type: models.TypeInterval, Minutes: 40, Focus: "6×3 min"},
				{Type: models.TypeStrength, Minutes: 45, Focus: "heavy lower body"},
				{Type: models.TypeModerate, Minutes: 50, Focus: "progression run", Instructions: "Last 10 min at marathon effort."},
				{Type: models.TypeLongRun, Minutes: 95, Km: 15, Focus: "long easy"},
			},
			{
				{Type: models.TypeLight, Minutes: 40, Focus: "easy aerobic"},
				{Type: models.TypeInterval, Minutes: 42, Focus: "4×4 min", Instructions: "4 min at threshold, 3 min jog recovery."},
				{Type: models.TypeStrength, Minutes: 45, Focus: "upper body and core"},
				{Type: models.TypeModerate, Minutes: 55, Focus: "steady state"},
				{Type: models.TypeLongRun, Minutes: 100, Km: 16, Focus: "long easy"},
			},
			{
				{Type: models.TypeLight, Minutes: 35, Focus: "recovery week"},
				{Type: models.TypeInterval, Minutes: 34, Focus: "4×3 min"},
				{Type: models.TypeStrength, Minutes: 35, Focus: "mobility"},
				{Type: models.TypeModerate, Minutes: 45, Focus: "steady state"},
				{Type: models.TypeLongRun, Minutes: 80, Km: 12, Focus: "long easy"},
			},
			{
				{Type: models.TypeLight, Minutes: 40, Focus: "easy aerobic"},
				{Type: models.TypeInterval, Minutes: 44, Focus: "5×4 min"},
				{Type: models.TypeStrength, Minutes: 50, Focus: "heavy lower body"},
				{Type: models.TypeModerate, Minutes: 55, Focus: "progression run", Instructions: "Last 15 min at marathon effort."},
				{Type: models.TypeLongRun, Minutes: 105, Km: 17, Focus: "long easy"},
			},
			{
				{Type: models.TypeLight, Minutes: 40, Focus: "easy aerobic"},
				{Type: models.TypeInterval, Minutes: 45, Focus: "3×6 min", Instructions: "6 min at threshold, 3 min jog recovery."},
				{Type: models.TypeStrength, Minutes: 50, Focus: "heavy lower body"},
				{Type: models.TypeModerate, Minutes: 60, Focus: "steady state"},
				{Type: models.TypeLongRun, Minutes: 110, Km: 18, Focus: "long easy"},
			},
			{
				{Type: models.TypeLight, Minutes: 45, Focus: "easy aerobic"},
				{Type: models.TypeInterval, Minutes: 46, Focus: "4×5 min"},
				{Type: models.TypeStrength, Minutes: 50, Focus: "upper body and core"},
				{Type: models.TypeModerate, Minutes: 60, Focus: "progression run"},
				{Type: models.TypeLongRun, Minutes: 115, Km: 19, Focus: "long easy", Instructions: "Fuel every 40 minutes."},
			},
			{
				{Type: models.TypeLight, Minutes: 35, Focus: "recovery week"},
				{Type: models.TypeInterval, Minutes: 36, Focus: "3×4 min"},
				{Type: models.TypeStrength, Minutes: 35, Focus: "mobility"},
				{Type: models.TypeModerate, Minutes: 45, Focus: "steady state"},
				{Type: models.TypeLongRun, Minutes: 90, Km: 14, Focus: "long easy"},
			},
		},
	}
}

func sharpening() Phase {
	return Phase{
		Name: "Sharpening",
		Weeks: []Week{
			{
				{Type: models.TypeLight, Minutes: 40, Focus: "easy aerobic"},
				{Type: models.TypeInterval, Minutes: 42, Focus: "8×400m", Km: 7, Instructions: "400 m at 5k effort, 400 m jog recovery."},
				{Type: models.TypeStrength, Minutes: 40, Focus: "power", Instructions: "Jump squats, bounds, single-leg hops. Low volume."},
				{Type: models.TypeModerate, Minutes: 50, Focus: "marathon effort blocks", Instructions: "3×10 min at marathon effort."},
				{Type: models.TypeLongRun, Minutes: 110, Km: 18, Focus: "long with quality", Instructions: "Middle 30 min at marathon effort."},
			},
			{
				{Type: models.TypeLight, Minutes: 40, Focus: "easy aerobic"},
				{Type: models.TypeInterval, Minutes: 44, Focus: "10×400m", Km: 8},
				{Type: models.TypeStrength, Minutes: 40, Focus: "power"},
				{Type: models.TypeModerate, Minutes: 55, Focus: "marathon effort blocks"},
				{Type: models.TypeLongRun, Minutes: 115, Km: 19, Focus: "long with quality"},
			},
			{
				{Type: models.TypeLight, Minutes: 40, Focus: "easy aerobic"},
				{Type: models.TypeInterval, Minutes: 45, Focus: "5×1000m", Km: 9, Instructions: "1 km at 10k effort, 2 min jog recovery."},
				{Type: models.TypeStrength, Minutes: 40, Focus: "power"},
				{Type: models.TypeModerate, Minutes: 55, Focus: "marathon effort blocks"},
				{Type: models.TypeLongRun, Minutes: 120, Km: 20, Focus: "long with quality"},
			},
			{
				{Type: models.TypeLight, Minutes: 35, Focus: "recovery week"},
				{Type: models.TypeInterval, Minutes: 36, Focus: "6×400m", Km: 6},
				{Type: models.TypeStrength, Minutes: 30, Focus: "mobility"},
				{Type: models.TypeModerate, Minutes: 45, Focus: "steady state"},
				{Type: models.TypeLongRun, Minutes: 90, Km: 15, Focus: "long easy"},
			},
			{
				{Type: models.TypeLight, Minutes: 40, Focus: "easy aerobic"},
				{Type: models.TypeInterval, Minutes: 46, Focus: "6×1000m", Km: 10},
				{Type: models.TypeStrength, Minutes: 40, Focus: "power"},
				{Type: models.TypeModerate, Minutes: 60, Focus: "marathon effort blocks", Instructions: "2×20 min at marathon effort."},
				{Type: models.TypeLongRun, Minutes: 125, Km: 21, Focus: "long with quality"},
			},
			{
				{Type: models.TypeLight, Minutes: 40, Focus: "easy aerobic"},
				{Type: models.TypeInterval, Minutes: 45, Focus: "3×2000m", Km: 10, Instructions: "2 km at threshold, 3 min jog recovery."},
				{Type: models.TypeStrength, Minutes: 40, Focus: "power"},
				{Type: models.TypeModerate, Minutes: 60, Focus: "marathon effort blocks"},
				{Type: models.TypeLongRun, Minutes: 130, Km: 22, Focus: "long with quality"},
			},
			{
				{Type: models.TypeLight, Minutes: 35, Focus: "easy aerobic"},
				{Type: models.TypeInterval, Minutes: 40, Focus: "8×400m", Km: 7, Instructions: "Crisp but controlled."},
				{Type: models.TypeStrength, Minutes: 35, Focus: "power, reduced volume"},
				{Type: models.TypeModerate, Minutes: 50, Focus: "marathon effort blocks"},
				{Type: models.TypeLongRun, Minutes: 105, Km: 17, Focus: "long with quality"},
			},
			{
				{Type: models.TypeLight, Minutes: 30, Focus: "taper", Instructions: "Very easy, stop while fresh."},
				{Type: models.TypeInterval, Minutes: 30, Focus: "4×400m", Km: 5},
				{Type: models.TypeStrength, Minutes: 25, Focus: "mobility"},
				{Type: models.TypeModerate, Minutes: 40, Focus: "steady state"},
				{Type: models.TypeLongRun, Minutes: 75, Km: 12, Focus: "long easy"},
			},
		},
	}
}
