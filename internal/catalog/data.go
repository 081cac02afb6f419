package catalog

import "github.com/claude/ironlog/internal/models"

// defaultEntries is the built-in exercise table: squat/hinge/press primaries,
// pull-heavy secondaries, accessories, and conditioning pieces.
var defaultEntries = []Entry{
	// Squat primaries
	{"Back Squat", models.PatternSquat, models.CategoryPrimary, models.EquipmentBarbell},
	{"Front Squat", models.PatternSquat, models.CategoryPrimary, models.EquipmentBarbell},
	{"Goblet Squat", models.PatternSquat, models.CategoryPrimary, models.EquipmentDumbbell},
	{"Bulgarian Split Squat", models.PatternSquat, models.CategoryPrimary, models.EquipmentDumbbell},
	{"Zercher Squat", models.PatternSquat, models.CategoryPrimary, models.EquipmentBarbell},
	{"Safety Bar Squat", models.PatternSquat, models.CategoryPrimary, models.EquipmentBarbell},
	{"Box Squat", models.PatternSquat, models.CategoryPrimary, models.EquipmentBarbell},
	{"Overhead Squat", models.PatternSquat, models.CategoryPrimary, models.EquipmentBarbell},
	{"Hack Squat", models.PatternSquat, models.CategoryPrimary, models.EquipmentMachine},
	{"Leg Press", models.PatternSquat, models.CategoryPrimary, models.EquipmentMachine},

	// Hinge primaries (deadlift/RDL family)
	{"Conventional Deadlift", models.PatternHinge, models.CategoryPrimary, models.EquipmentBarbell},
	{"Romanian Deadlift", models.PatternHinge, models.CategoryPrimary, models.EquipmentBarbell},
	{"Sumo Deadlift", models.PatternHinge, models.CategoryPrimary, models.EquipmentBarbell},
	{"Trap Bar Deadlift", models.PatternHinge, models.CategoryPrimary, models.EquipmentBarbell},
	{"Single Leg RDL", models.PatternHinge, models.CategoryPrimary, models.EquipmentDumbbell},
	{"Stiff Leg Deadlift", models.PatternHinge, models.CategoryPrimary, models.EquipmentBarbell},
	{"Deficit Deadlift", models.PatternHinge, models.CategoryPrimary, models.EquipmentBarbell},
	{"Rack Pull", models.PatternHinge, models.CategoryPrimary, models.EquipmentBarbell},
	{"Good Morning", models.PatternHinge, models.CategoryPrimary, models.EquipmentBarbell},
	{"Kettlebell Deadlift", models.PatternHinge, models.CategoryPrimary, models.EquipmentKettlebell},
	{"Dumbbell RDL", models.PatternHinge, models.CategoryPrimary, models.EquipmentDumbbell},
	{"Cable RDL", models.PatternHinge, models.CategoryPrimary, models.EquipmentCable},
	{"B-Stance RDL", models.PatternHinge, models.CategoryPrimary, models.EquipmentDumbbell},
	{"Landmine RDL", models.PatternHinge, models.CategoryPrimary, models.EquipmentBarbell},
	{"Banded RDL", models.PatternHinge, models.CategoryPrimary, models.EquipmentBands},

	// Press primaries (bench family)
	{"Barbell Bench Press", models.PatternPress, models.CategoryPrimary, models.EquipmentBarbell},
	{"Dumbbell Bench Press", models.PatternPress, models.CategoryPrimary, models.EquipmentDumbbell},
	{"Incline Bench Press", models.PatternPress, models.CategoryPrimary, models.EquipmentBarbell},
	{"Decline Bench Press", models.PatternPress, models.CategoryPrimary, models.EquipmentBarbell},
	{"Close Grip Bench", models.PatternPress, models.CategoryPrimary, models.EquipmentBarbell},
	{"Incline Dumbbell Press", models.PatternPress, models.CategoryPrimary, models.EquipmentDumbbell},
	{"Floor Press", models.PatternPress, models.CategoryPrimary, models.EquipmentBarbell},
	{"Dumbbell Floor Press", models.PatternPress, models.CategoryPrimary, models.EquipmentDumbbell},
	{"Overhead Press", models.PatternPress, models.CategoryPrimary, models.EquipmentBarbell},
	{"Push Press", models.PatternPress, models.CategoryPrimary, models.EquipmentBarbell},
	{"Dumbbell Shoulder Press", models.PatternPress, models.CategoryPrimary, models.EquipmentDumbbell},
	{"Machine Press", models.PatternPress, models.CategoryPrimary, models.EquipmentMachine},
	{"Landmine Press", models.PatternPress, models.CategoryPrimary, models.EquipmentBarbell},
	{"Single Arm Press", models.PatternPress, models.CategoryPrimary, models.EquipmentDumbbell},
	{"Z Press", models.PatternPress, models.CategoryPrimary, models.EquipmentBarbell},

	// Secondaries
	{"Bent Over Row", models.PatternPull, models.CategorySecondary, models.EquipmentBarbell},
	{"Pull-ups", models.PatternPull, models.CategorySecondary, models.EquipmentBodyweight},
	{"Chin-ups", models.PatternPull, models.CategorySecondary, models.EquipmentBodyweight},
	{"T-Bar Row", models.PatternPull, models.CategorySecondary, models.EquipmentBarbell},
	{"Dumbbell Row", models.PatternPull, models.CategorySecondary, models.EquipmentDumbbell},
	{"Seated Cable Row", models.PatternPull, models.CategorySecondary, models.EquipmentCable},
	{"Lat Pulldown", models.PatternPull, models.CategorySecondary, models.EquipmentMachine},
	{"Dips", models.PatternPress, models.CategorySecondary, models.EquipmentBodyweight},
	{"Push-ups", models.PatternPress, models.CategorySecondary, models.EquipmentBodyweight},
	{"Walking Lunges", models.PatternSquat, models.CategorySecondary, models.EquipmentDumbbell},
	{"Step-ups", models.PatternSquat, models.CategorySecondary, models.EquipmentDumbbell},
	{"Hip Thrust", models.PatternHinge, models.CategorySecondary, models.EquipmentBarbell},
	{"Glute Bridge", models.PatternHinge, models.CategorySecondary, models.EquipmentBodyweight},

	// Accessories
	{"Lateral Raises", models.PatternPress, models.CategoryAccessory, models.EquipmentDumbbell},
	{"Bicep Curls", models.PatternPull, models.CategoryAccessory, models.EquipmentDumbbell},
	{"Tricep Extensions", models.PatternPress, models.CategoryAccessory, models.EquipmentDumbbell},
	{"Face Pulls", models.PatternPull, models.CategoryAccessory, models.EquipmentBands},
	{"Leg Curls", models.PatternHinge, models.CategoryAccessory, models.EquipmentMachine},
	{"Leg Extensions", models.PatternSquat, models.CategoryAccessory, models.EquipmentMachine},
	{"Calf Raises", models.PatternSquat, models.CategoryAccessory, models.EquipmentBodyweight},
	{"Shrugs", models.PatternPull, models.CategoryAccessory, models.EquipmentDumbbell},
	{"Hammer Curls", models.PatternPull, models.CategoryAccessory, models.EquipmentDumbbell},
	{"Tricep Dips", models.PatternPress, models.CategoryAccessory, models.EquipmentBodyweight},
	{"Cable Flyes", models.PatternPress, models.CategoryAccessory, models.EquipmentCable},
	{"Rear Delt Flyes", models.PatternPull, models.CategoryAccessory, models.EquipmentDumbbell},
	{"Plank", models.PatternCore, models.CategoryAccessory, models.EquipmentBodyweight},
	{"Dead Bug", models.PatternCore, models.CategoryAccessory, models.EquipmentBodyweight},

	// Conditioning
	{"Kettlebell Swings", models.PatternFullBody, models.CategoryConditioning, models.EquipmentKettlebell},
	{"Burpees", models.PatternFullBody, models.CategoryConditioning, models.EquipmentBodyweight},
	{"Mountain Climbers", models.PatternFullBody, models.CategoryConditioning, models.EquipmentBodyweight},
	{"Battle Ropes", models.PatternFullBody, models.CategoryConditioning, models.EquipmentBands},
	{"Box Jumps", models.PatternSquat, models.CategoryConditioning, models.EquipmentBodyweight},
}
