package catalog

// The species table. Counts per pool are asserted by tests; note that
// legendary entries exist only in the dark and shiny pools, so an ordinary
// draw can reach legendary rarity only through a variant roll.

func buildSpecies() []Species {
	var all []Species
	all = append(all, commonSpecies...)
	all = append(all, rareSpecies...)
	all = append(all, epicSpecies...)
	all = append(all, darkSpecies...)
	all = append(all, shinySpecies...)
	return all
}

var commonSpecies = []Species{
	// Daytime regulars.
	{ID: "goldfish", Name: "Goldfish", Rarity: Common, MinLength: 3, MaxLength: 8, StartHour: 6, EndHour: 22, Emoji: "🐠", Note: "the classic bowl dweller"},
	{ID: "carp", Name: "Carp", Rarity: Common, MinLength: 15, MaxLength: 45, StartHour: 6, EndHour: 20, Emoji: "🐟", Note: "hardy and everywhere"},
	{ID: "crucian", Name: "Crucian Carp", Rarity: Common, MinLength: 10, MaxLength: 25, StartHour: 6, EndHour: 20, Emoji: "🐟", Note: "soup stock favourite"},
	{ID: "grass_carp", Name: "Grass Carp", Rarity: Common, MinLength: 30, MaxLength: 80, StartHour: 8, EndHour: 18, Emoji: "🐟", Note: "mows the weed beds"},
	{ID: "catfish", Name: "Catfish", Rarity: Common, MinLength: 20, MaxLength: 60, StartHour: 6, EndHour: 22, Emoji: "🐡", Note: "whiskers first"},
	{ID: "tilapia", Name: "Tilapia", Rarity: Common, MinLength: 15, MaxLength: 35, StartHour: 8, EndHour: 18, Emoji: "🐟", Note: "farm pond staple"},
	{ID: "perch", Name: "Perch", Rarity: Common, MinLength: 20, MaxLength: 50, StartHour: 8, EndHour: 18, Emoji: "🐟", Note: "striped ambusher"},
	{ID: "bream", Name: "Bream", Rarity: Common, MinLength: 15, MaxLength: 35, StartHour: 8, EndHour: 18, Emoji: "🐟", Note: "deep-bodied drifter"},
	{ID: "bluegill", Name: "Bluegill", Rarity: Common, MinLength: 8, MaxLength: 20, StartHour: 8, EndHour: 18, Emoji: "🐟", Note: "bold for its size"},
	{ID: "minnow", Name: "Minnow", Rarity: Common, MinLength: 3, MaxLength: 8, StartHour: 8, EndHour: 18, Emoji: "🐟", Note: "bait that bites back"},
	{ID: "shrimp", Name: "River Shrimp", Rarity: Common, MinLength: 2, MaxLength: 6, StartHour: 6, EndHour: 20, Emoji: "🦐", Note: "nearly transparent"},
	{ID: "crayfish", Name: "Crayfish", Rarity: Common, MinLength: 8, MaxLength: 15, StartHour: 10, EndHour: 22, Emoji: "🦞", Note: "pinches on the way up"},
	{ID: "pond_snail", Name: "Pond Snail", Rarity: Common, MinLength: 2, MaxLength: 5, StartHour: 6, EndHour: 22, Emoji: "🐚", Note: "in no hurry"},
	{ID: "clam", Name: "Freshwater Clam", Rarity: Common, MinLength: 5, MaxLength: 15, StartHour: 6, EndHour: 20, Emoji: "🐚", Note: "might hold a pearl"},
	{ID: "frog", Name: "Frog", Rarity: Common, MinLength: 5, MaxLength: 12, StartHour: 6, EndHour: 22, Emoji: "🐸", Note: "technically not a fish"},
	{ID: "tadpole", Name: "Tadpole", Rarity: Common, MinLength: 1, MaxLength: 3, StartHour: 8, EndHour: 18, Emoji: "🔘", Note: "a frog in waiting"},
	{ID: "loach", Name: "Pond Loach", Rarity: Common, MinLength: 8, MaxLength: 18, StartHour: 6, EndHour: 20, Emoji: "🐛", Note: "too slippery to hold"},
	{ID: "guppy", Name: "Guppy", Rarity: Common, MinLength: 2, MaxLength: 5, StartHour: 8, EndHour: 18, Emoji: "🐠", Note: "escaped aquarium stock"},
	{ID: "zebra_danio", Name: "Zebra Danio", Rarity: Common, MinLength: 3, MaxLength: 6, StartHour: 8, EndHour: 18, Emoji: "🐠", Note: "stripes in a hurry"},
	{ID: "stickleback", Name: "Stickleback", Rarity: Common, MinLength: 3, MaxLength: 8, StartHour: 8, EndHour: 18, Emoji: "🐟", Note: "armoured and opinionated"},
	{ID: "goby", Name: "Goby", Rarity: Common, MinLength: 3, MaxLength: 10, StartHour: 8, EndHour: 20, Emoji: "🐟", Note: "glued to a rock"},
	{ID: "smelt", Name: "Smelt", Rarity: Common, MinLength: 8, MaxLength: 18, StartHour: 4, EndHour: 10, Emoji: "🐟", Note: "dawn schooler"},

	// Night shift.
	{ID: "eel", Name: "Eel", Rarity: Common, MinLength: 30, MaxLength: 80, StartHour: 20, EndHour: 8, Emoji: "🐍", Note: "out after dark"},
	{ID: "night_catfish", Name: "Night Catfish", Rarity: Common, MinLength: 25, MaxLength: 55, StartHour: 22, EndHour: 6, Emoji: "🐡", Note: "hunts by feel"},
	{ID: "lanternfish", Name: "Lanternfish", Rarity: Common, MinLength: 3, MaxLength: 8, StartHour: 22, EndHour: 6, Emoji: "🏮", Note: "brings its own light"},
	{ID: "moonfish", Name: "Moonfish", Rarity: Common, MinLength: 10, MaxLength: 25, StartHour: 22, EndHour: 6, Emoji: "🌙", Note: "a silver coin in the water"},
	{ID: "stargazer", Name: "Stargazer", Rarity: Common, MinLength: 15, MaxLength: 35, StartHour: 22, EndHour: 6, Emoji: "⭐", Note: "eyes forever upward"},
	{ID: "midnight_loach", Name: "Midnight Loach", Rarity: Common, MinLength: 8, MaxLength: 18, StartHour: 0, EndHour: 4, Emoji: "🐛", Note: "strictly after midnight"},
	{ID: "dusk_perch", Name: "Dusk Perch", Rarity: Common, MinLength: 15, MaxLength: 35, StartHour: 18, EndHour: 22, Emoji: "🐟", Note: "golden hour only"},
	{ID: "dawn_carp", Name: "Dawn Carp", Rarity: Common, MinLength: 18, MaxLength: 40, StartHour: 4, EndHour: 8, Emoji: "🐟", Note: "greets the sunrise"},

	// Around the clock.
	{ID: "pond_carp", Name: "Pond Carp", Rarity: Common, MinLength: 20, MaxLength: 50, StartHour: 0, EndHour: 24, Emoji: "🐟", Note: "always on duty"},
	{ID: "mud_turtle", Name: "Mud Turtle", Rarity: Common, MinLength: 8, MaxLength: 20, StartHour: 0, EndHour: 24, Emoji: "🐢", Note: "sunbathing professional"},
	{ID: "newt", Name: "Newt", Rarity: Common, MinLength: 8, MaxLength: 15, StartHour: 0, EndHour: 24, Emoji: "🦎", Note: "amphibian bycatch"},
	{ID: "axolotl", Name: "Axolotl", Rarity: Common, MinLength: 15, MaxLength: 30, StartHour: 0, EndHour: 24, Emoji: "🦎", Note: "forever young"},
	{ID: "water_beetle", Name: "Water Beetle", Rarity: Common, MinLength: 1, MaxLength: 3, StartHour: 0, EndHour: 24, Emoji: "🪲", Note: "tiny submarine"},
	{ID: "leech", Name: "Leech", Rarity: Common, MinLength: 3, MaxLength: 10, StartHour: 0, EndHour: 24, Emoji: "🐛", Note: "nobody's favourite"},
}

var rareSpecies = []Species{
	{ID: "koi", Name: "Koi", Rarity: Rare, MinLength: 20, MaxLength: 50, StartHour: 8, EndHour: 18, Emoji: "🎏", Note: "good fortune incarnate"},
	{ID: "arowana", Name: "Arowana", Rarity: Rare, MinLength: 40, MaxLength: 80, StartHour: 10, EndHour: 16, Emoji: "🐉", Note: "the dragon fish"},
	{ID: "snapping_turtle", Name: "Snapping Turtle", Rarity: Rare, MinLength: 15, MaxLength: 40, StartHour: 8, EndHour: 18, Emoji: "🐢", Note: "mind your fingers"},
	{ID: "jellyfish", Name: "Jellyfish", Rarity: Rare, MinLength: 5, MaxLength: 20, StartHour: 6, EndHour: 22, Emoji: "🪼", Note: "drifting glass"},
	{ID: "seahorse", Name: "Seahorse", Rarity: Rare, MinLength: 5, MaxLength: 15, StartHour: 10, EndHour: 18, Emoji: "🦑", Note: "fathers do the work"},
	{ID: "octopus", Name: "Octopus", Rarity: Rare, MinLength: 20, MaxLength: 60, StartHour: 6, EndHour: 22, Emoji: "🐙", Note: "eight arms, one opinion"},
	{ID: "crab", Name: "Crab", Rarity: Rare, MinLength: 8, MaxLength: 20, StartHour: 8, EndHour: 20, Emoji: "🦀", Note: "walks its own way"},
	{ID: "pufferfish", Name: "Pufferfish", Rarity: Rare, MinLength: 15, MaxLength: 35, StartHour: 10, EndHour: 18, Emoji: "🐡", Note: "do not squeeze"},
	{ID: "electric_eel", Name: "Electric Eel", Rarity: Rare, MinLength: 50, MaxLength: 150, StartHour: 8, EndHour: 20, Emoji: "⚡", Note: "carries its own charge"},
	{ID: "piranha", Name: "Piranha", Rarity: Rare, MinLength: 15, MaxLength: 35, StartHour: 10, EndHour: 18, Emoji: "🦷", Note: "all teeth"},
	{ID: "betta", Name: "Betta", Rarity: Rare, MinLength: 5, MaxLength: 8, StartHour: 10, EndHour: 18, Emoji: "🐠", Note: "fights its own reflection"},
	{ID: "sturgeon_fry", Name: "Young Sturgeon", Rarity: Rare, MinLength: 30, MaxLength: 70, StartHour: 8, EndHour: 18, Emoji: "🐟", Note: "a fossil in training"},

	{ID: "giant_salamander", Name: "Giant Salamander", Rarity: Rare, MinLength: 50, MaxLength: 120, StartHour: 22, EndHour: 6, Emoji: "🦎", Note: "cries like a child"},
	{ID: "anglerfish", Name: "Anglerfish", Rarity: Rare, MinLength: 20, MaxLength: 50, StartHour: 22, EndHour: 6, Emoji: "🎣", Note: "fishes for fishers"},
	{ID: "glass_catfish", Name: "Glass Catfish", Rarity: Rare, MinLength: 8, MaxLength: 15, StartHour: 22, EndHour: 6, Emoji: "🐟", Note: "mostly not there"},
	{ID: "moon_jelly", Name: "Moon Jelly", Rarity: Rare, MinLength: 10, MaxLength: 30, StartHour: 22, EndHour: 6, Emoji: "🌙", Note: "glows after dark"},
	{ID: "blind_cavefish", Name: "Blind Cavefish", Rarity: Rare, MinLength: 5, MaxLength: 12, StartHour: 0, EndHour: 24, Emoji: "👁️", Note: "never needed eyes"},
}

var epicSpecies = []Species{
	{ID: "whale_calf", Name: "Whale Calf", Rarity: Epic, MinLength: 100, MaxLength: 300, StartHour: 6, EndHour: 22, Emoji: "🐋", Note: "how did it fit"},
	{ID: "shark", Name: "Shark", Rarity: Epic, MinLength: 80, MaxLength: 200, StartHour: 10, EndHour: 20, Emoji: "🦈", Note: "the pond apex"},
	{ID: "dolphin", Name: "Dolphin", Rarity: Epic, MinLength: 100, MaxLength: 250, StartHour: 8, EndHour: 18, Emoji: "🐬", Note: "smarter than the bait"},
	{ID: "manta_ray", Name: "Manta Ray", Rarity: Epic, MinLength: 150, MaxLength: 400, StartHour: 8, EndHour: 18, Emoji: "🦅", Note: "flies underwater"},
	{ID: "giant_squid", Name: "Giant Squid", Rarity: Epic, MinLength: 200, MaxLength: 500, StartHour: 22, EndHour: 6, Emoji: "🦑", Note: "the deep come calling"},
	{ID: "sunfish", Name: "Ocean Sunfish", Rarity: Epic, MinLength: 100, MaxLength: 300, StartHour: 10, EndHour: 16, Emoji: "☀️", Note: "a swimming head"},
	{ID: "oarfish", Name: "Oarfish", Rarity: Epic, MinLength: 300, MaxLength: 800, StartHour: 22, EndHour: 6, Emoji: "👑", Note: "herald of the deep"},
	{ID: "coelacanth", Name: "Coelacanth", Rarity: Epic, MinLength: 80, MaxLength: 180, StartHour: 22, EndHour: 6, Emoji: "🦴", Note: "officially extinct, unofficially hungry"},
	{ID: "sturgeon", Name: "Sturgeon", Rarity: Epic, MinLength: 100, MaxLength: 300, StartHour: 8, EndHour: 18, Emoji: "🐟", Note: "caviar on the hoof"},
	{ID: "dragon_fish", Name: "Dragon Fish", Rarity: Epic, MinLength: 50, MaxLength: 120, StartHour: 12, EndHour: 16, Emoji: "🐲", Note: "scales like lacquer"},
	{ID: "phoenix_fish", Name: "Phoenix Fish", Rarity: Epic, MinLength: 30, MaxLength: 60, StartHour: 6, EndHour: 10, Emoji: "🔥", Note: "rises with the sun"},
	{ID: "sea_serpent", Name: "Sea Serpent", Rarity: Epic, MinLength: 150, MaxLength: 400, StartHour: 22, EndHour: 6, Emoji: "🐉", Note: "do not tug twice"},
}

var darkSpecies = []Species{
	// Dark commons.
	{ID: "dark_goldfish", Name: "Dark Goldfish", Rarity: Common, Dark: true, MinLength: 3, MaxLength: 8, StartHour: 0, EndHour: 24, Emoji: "🖤", Note: "a bowl dweller gone wrong"},
	{ID: "cursed_carp", Name: "Cursed Carp", Rarity: Common, Dark: true, MinLength: 15, MaxLength: 40, StartHour: 0, EndHour: 24, Emoji: "💀", Note: "bad luck with fins"},
	{ID: "shadow_catfish", Name: "Shadow Catfish", Rarity: Common, Dark: true, MinLength: 20, MaxLength: 55, StartHour: 0, EndHour: 24, Emoji: "👤", Note: "more shadow than fish"},
	{ID: "void_shrimp", Name: "Void Shrimp", Rarity: Common, Dark: true, MinLength: 2, MaxLength: 6, StartHour: 0, EndHour: 24, Emoji: "🕳️", Note: "from somewhere else"},
	{ID: "nightmare_eel", Name: "Nightmare Eel", Rarity: Common, Dark: true, MinLength: 30, MaxLength: 80, StartHour: 22, EndHour: 6, Emoji: "🐍", Note: "coils through bad dreams"},
	{ID: "tainted_loach", Name: "Tainted Loach", Rarity: Common, Dark: true, MinLength: 8, MaxLength: 18, StartHour: 0, EndHour: 24, Emoji: "☠️", Note: "handle with gloves"},
	{ID: "shadow_perch", Name: "Shadow Perch", Rarity: Common, Dark: true, MinLength: 15, MaxLength: 35, StartHour: 0, EndHour: 24, Emoji: "🐟", Note: "swims just out of sight"},
	{ID: "cursed_clam", Name: "Cursed Clam", Rarity: Common, Dark: true, MinLength: 5, MaxLength: 15, StartHour: 0, EndHour: 24, Emoji: "🐚", Note: "holds a black pearl"},

	// Dark rares.
	{ID: "shadow_eel", Name: "Shadow Eel", Rarity: Rare, Dark: true, MinLength: 30, MaxLength: 80, StartHour: 22, EndHour: 6, Emoji: "👤", Note: "errand runner of the dark"},
	{ID: "void_jellyfish", Name: "Void Jellyfish", Rarity: Rare, Dark: true, MinLength: 5, MaxLength: 20, StartHour: 0, EndHour: 24, Emoji: "🕳️", Note: "swallows the light"},
	{ID: "cursed_turtle", Name: "Cursed Turtle", Rarity: Rare, Dark: true, MinLength: 10, MaxLength: 30, StartHour: 0, EndHour: 24, Emoji: "🐢", Note: "a very long grudge"},
	{ID: "dark_koi", Name: "Dark Koi", Rarity: Rare, Dark: true, MinLength: 20, MaxLength: 50, StartHour: 0, EndHour: 24, Emoji: "🎏", Note: "misfortune incarnate"},
	{ID: "nightmare_octopus", Name: "Nightmare Octopus", Rarity: Rare, Dark: true, MinLength: 20, MaxLength: 60, StartHour: 22, EndHour: 6, Emoji: "🐙", Note: "eight arms, no mercy"},
	{ID: "dark_piranha", Name: "Dark Piranha", Rarity: Rare, Dark: true, MinLength: 15, MaxLength: 35, StartHour: 0, EndHour: 24, Emoji: "🦷", Note: "hungrier than usual"},

	// Dark epics.
	{ID: "demon_shark", Name: "Demon Shark", Rarity: Epic, Dark: true, MinLength: 80, MaxLength: 200, StartHour: 0, EndHour: 6, Emoji: "😈", Note: "the deep's enforcer"},
	{ID: "death_whale", Name: "Death Whale", Rarity: Epic, Dark: true, MinLength: 100, MaxLength: 300, StartHour: 0, EndHour: 24, Emoji: "☠️", Note: "sings in a minor key"},
	{ID: "void_squid", Name: "Void Squid", Rarity: Epic, Dark: true, MinLength: 200, MaxLength: 500, StartHour: 22, EndHour: 6, Emoji: "🦑", Note: "lord of the trench"},
	{ID: "nightmare_serpent", Name: "Nightmare Serpent", Rarity: Epic, Dark: true, MinLength: 150, MaxLength: 400, StartHour: 22, EndHour: 6, Emoji: "🐉", Note: "the rope that pulls back"},

	// Dark legendaries.
	{ID: "abyss_lord", Name: "Abyss Lord", Rarity: Legendary, Dark: true, MinLength: 200, MaxLength: 500, StartHour: 0, EndHour: 4, Emoji: "🌑", Note: "king of the bottom"},
	{ID: "void_emperor", Name: "Void Emperor", Rarity: Legendary, Dark: true, MinLength: 300, MaxLength: 600, StartHour: 0, EndHour: 6, Emoji: "👑", Note: "rules what isn't there"},
	{ID: "death_leviathan", Name: "Death Leviathan", Rarity: Legendary, Dark: true, MinLength: 500, MaxLength: 1000, StartHour: 0, EndHour: 4, Emoji: "💀", Note: "the last thing the pond sees"},
}

var shinySpecies = []Species{
	// Shiny commons.
	{ID: "shiny_goldfish", Name: "Shiny Goldfish", Rarity: Common, Shiny: true, MinLength: 3, MaxLength: 8, StartHour: 6, EndHour: 22, Emoji: "✨", Note: "glitters in the shallows"},
	{ID: "shiny_carp", Name: "Shiny Carp", Rarity: Common, Shiny: true, MinLength: 15, MaxLength: 45, StartHour: 6, EndHour: 20, Emoji: "🌟", Note: "scales like coins"},
	{ID: "shiny_shrimp", Name: "Crystal Shrimp", Rarity: Common, Shiny: true, MinLength: 2, MaxLength: 6, StartHour: 6, EndHour: 20, Emoji: "💎", Note: "cut-glass carapace"},
	{ID: "shiny_frog", Name: "Jade Frog", Rarity: Common, Shiny: true, MinLength: 5, MaxLength: 12, StartHour: 6, EndHour: 22, Emoji: "💚", Note: "polished to a shine"},
	{ID: "shiny_loach", Name: "Gilded Loach", Rarity: Common, Shiny: true, MinLength: 8, MaxLength: 18, StartHour: 6, EndHour: 20, Emoji: "✨", Note: "slips through fingers, brightly"},
	{ID: "shiny_eel", Name: "Silver Eel", Rarity: Common, Shiny: true, MinLength: 30, MaxLength: 80, StartHour: 20, EndHour: 8, Emoji: "⭐", Note: "moonlight made ribbon"},
	{ID: "shiny_axolotl", Name: "Pearl Axolotl", Rarity: Common, Shiny: true, MinLength: 15, MaxLength: 30, StartHour: 0, EndHour: 24, Emoji: "💖", Note: "permanently delighted"},
	{ID: "shiny_turtle", Name: "Gold-shell Turtle", Rarity: Common, Shiny: true, MinLength: 5, MaxLength: 15, StartHour: 0, EndHour: 24, Emoji: "🐢", Note: "a walking medallion"},

	// Shiny rares.
	{ID: "shiny_koi", Name: "Golden Koi", Rarity: Rare, Shiny: true, MinLength: 20, MaxLength: 50, StartHour: 8, EndHour: 18, Emoji: "🌟", Note: "the luckiest fish alive"},
	{ID: "shiny_arowana", Name: "Imperial Arowana", Rarity: Rare, Shiny: true, MinLength: 40, MaxLength: 80, StartHour: 10, EndHour: 16, Emoji: "🐉", Note: "a throne with fins"},
	{ID: "shiny_jellyfish", Name: "Prism Jelly", Rarity: Rare, Shiny: true, MinLength: 5, MaxLength: 20, StartHour: 6, EndHour: 22, Emoji: "🪼", Note: "a drifting rainbow"},
	{ID: "shiny_octopus", Name: "Gilded Octopus", Rarity: Rare, Shiny: true, MinLength: 20, MaxLength: 60, StartHour: 6, EndHour: 22, Emoji: "🐙", Note: "hoards its own shine"},
	{ID: "shiny_electric_eel", Name: "Storm Eel", Rarity: Rare, Shiny: true, MinLength: 50, MaxLength: 150, StartHour: 8, EndHour: 20, Emoji: "⚡", Note: "lightning in a riverbed"},
	{ID: "shiny_salamander", Name: "Gilded Salamander", Rarity: Rare, Shiny: true, MinLength: 50, MaxLength: 120, StartHour: 22, EndHour: 6, Emoji: "🦎", Note: "glows like embers"},

	// Shiny epics.
	{ID: "shiny_whale", Name: "Platinum Whale", Rarity: Epic, Shiny: true, MinLength: 100, MaxLength: 300, StartHour: 6, EndHour: 22, Emoji: "🐋", Note: "a drifting treasury"},
	{ID: "shiny_shark", Name: "Golden Shark", Rarity: Epic, Shiny: true, MinLength: 80, MaxLength: 200, StartHour: 10, EndHour: 20, Emoji: "🦈", Note: "apex, but make it gold"},
	{ID: "shiny_oarfish", Name: "Gilded Oarfish", Rarity: Epic, Shiny: true, MinLength: 300, MaxLength: 800, StartHour: 22, EndHour: 6, Emoji: "👑", Note: "a ribbon of treasure"},
	{ID: "shiny_dragon", Name: "Radiant Dragon Fish", Rarity: Epic, Shiny: true, MinLength: 50, MaxLength: 120, StartHour: 12, EndHour: 16, Emoji: "🐲", Note: "too bright to look at"},

	// Shiny legendaries.
	{ID: "rainbow_fish", Name: "Rainbow Fish", Rarity: Legendary, Shiny: true, MinLength: 30, MaxLength: 80, StartHour: 12, EndHour: 14, Emoji: "🌈", Note: "all seven colours at once"},
	{ID: "golden_whale", Name: "Golden Whale", Rarity: Legendary, Shiny: true, MinLength: 100, MaxLength: 300, StartHour: 10, EndHour: 14, Emoji: "👑", Note: "sovereign of the pond"},
	{ID: "aurora_fish", Name: "Aurora Fish", Rarity: Legendary, Shiny: true, MinLength: 50, MaxLength: 100, StartHour: 0, EndHour: 6, Emoji: "🌌", Note: "the northern lights, hooked"},
}
