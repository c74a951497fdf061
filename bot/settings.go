package bot

import (
    "local/fresco/simple"
)

// Per-bot search tunables.  The radius range is capped by the shared disk
// cache; the budget bounds placement-search probes per round.
type Settings struct {
    MinRadius int
    MaxRadius int
    SearchBudget int
}

var defaultSettings = Settings{
    MinRadius: simple.MinRadius,
    MaxRadius: simple.MaxRadius,
    SearchBudget: 50,
}

var botSettings = map[string]Settings {
    "B1": defaultSettings,
    "B2": defaultSettings,

    // B3 hunts only small disks; it spends less of its budget per probe and
    // finishes circles faster on a crowded canvas.
    "B3": Settings{MinRadius: 1, MaxRadius: 2, SearchBudget: 50},

    // B4 insists on big circles and gets a bigger budget to find room.
    "B4": Settings{MinRadius: 3, MaxRadius: simple.MaxRadius, SearchBudget: 80},

    "B5": defaultSettings,
}
