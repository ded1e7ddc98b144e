package catalog

import "fmt"

// Scope classifies an event definition.
type Scope string

const (
	GlobalPositive   Scope = "global_positive"
	GlobalNegative   Scope = "global_negative"
	PersonalPositive Scope = "personal_positive"
	PersonalNegative Scope = "personal_negative"
	Special          Scope = "special"
)

// Effect keys. Keys ending in "_multiplier" combine multiplicatively when
// several instances are active; booleans combine by OR; other numerics sum;
// ranges keep the first non-nil value.
const (
	EffDarkOnly        = "dark_only"
	EffNoDark          = "no_dark"
	EffNoFishing       = "no_fishing"
	EffDouble          = "double"
	EffAllTime         = "all_time"
	EffMirror          = "mirror"
	EffChaos           = "chaos"
	EffCostMult        = "cost_multiplier"
	EffRareMult        = "rare_multiplier"
	EffShinyMult       = "shiny_multiplier"
	EffDarkMult        = "dark_multiplier"
	EffLegendaryMult   = "legendary_multiplier"
	EffGlobalSizeMult  = "global_size_multiplier"
	EffSizeMult        = "size_multiplier"
	EffKarmaBonus      = "karma_bonus"
	EffKarmaRange      = "karma_range"
	EffKarmaLoss       = "karma_loss"
	EffKarmaLossRange  = "karma_loss_range"
	EffGuaranteedRare  = "guaranteed_rare"
	EffGuaranteedShiny = "guaranteed_shiny"
	EffExtraCatch      = "extra_catch"
	EffFreeBait        = "free_bait"
	EffCurseCount      = "curse_count"
	EffNextFail        = "next_fail"
	EffFail            = "fail"
)

// Range is an inclusive integer interval used by karma effects.
type Range struct {
	Min, Max int
}

// Effects is an event's named effect parameters. Values are bool, int,
// float64 or Range.
type Effects map[string]any

// EventDef is an immutable event definition.
type EventDef struct {
	ID              string
	Name            string
	Scope           Scope
	DurationSeconds int // 0 = instantaneous
	Effects         Effects
	Emoji           string
	Weight          float64
	Message         string // template; {nickname} and {karma} placeholders
}

// Global reports whether the event affects the whole group. Special events
// are global.
func (e EventDef) Global() bool {
	return e.Scope == GlobalPositive || e.Scope == GlobalNegative || e.Scope == Special
}

var GlobalPositiveEvents = []EventDef{
	{ID: "karma_surge", Name: "Karma Surge", Scope: GlobalPositive, DurationSeconds: 60,
		Effects: Effects{EffKarmaBonus: 10}, Emoji: "💥", Weight: 1.0,
		Message: "💥 [Karma Surge] {nickname} set off a karma surge! Flat +10 karma for everyone, one minute!"},
	{ID: "migration", Name: "Great Migration", Scope: GlobalPositive, DurationSeconds: 300,
		Effects: Effects{EffRareMult: 2.0}, Emoji: "🐟", Weight: 1.0,
		Message: "🌊 [Great Migration] {nickname} spotted a migrating school! Rare odds doubled for five minutes!"},
	{ID: "golden_hour", Name: "Golden Hour", Scope: GlobalPositive, DurationSeconds: 180,
		Effects: Effects{EffShinyMult: 2.0}, Emoji: "✨", Weight: 0.8,
		Message: "🌟 [Golden Hour] {nickname} opened the golden hour! Shiny odds doubled for three minutes!"},
	{ID: "blessing", Name: "Blessing", Scope: GlobalPositive, DurationSeconds: 120,
		Effects: Effects{EffNoDark: true}, Emoji: "🙏", Weight: 0.8,
		Message: "🙏 [Blessing] {nickname} earned a blessing! No dark catches for two minutes!"},
	{ID: "double_catch", Name: "Double Catch", Scope: GlobalPositive, DurationSeconds: 120,
		Effects: Effects{EffDouble: true}, Emoji: "🎣", Weight: 0.6,
		Message: "🎣 [Double Catch] {nickname} triggered double catch! Two fish per cast for two minutes!"},
	{ID: "giant_swell", Name: "Giant Swell", Scope: GlobalPositive, DurationSeconds: 180,
		Effects: Effects{EffGlobalSizeMult: 1.5}, Emoji: "📏", Weight: 0.7,
		Message: "📏 [Giant Swell] {nickname} found the giants! Every fish 50% longer for three minutes!"},
	{ID: "karma_rain", Name: "Karma Rain", Scope: GlobalPositive, DurationSeconds: 60,
		Effects: Effects{EffKarmaRange: Range{1, 5}}, Emoji: "🌧️", Weight: 0.8,
		Message: "🌧️ [Karma Rain] {nickname} called down karma rain! +1 to +5 bonus karma per cast, one minute!"},
}

var GlobalNegativeEvents = []EventDef{
	{ID: "pollution", Name: "Pollution", Scope: GlobalNegative, DurationSeconds: 600,
		Effects: Effects{EffDarkOnly: true}, Emoji: "☠️", Weight: 0.5,
		Message: "☠️ [Pollution] {nickname} fouled the water! Only dark catches for ten minutes!"},
	{ID: "drought", Name: "Drought", Scope: GlobalNegative, DurationSeconds: 300,
		Effects: Effects{EffCostMult: 2.0}, Emoji: "🏜️", Weight: 0.6,
		Message: "🏜️ [Drought] {nickname} dried up the pond! Cast cost doubled for five minutes!"},
	{ID: "storm", Name: "Storm", Scope: GlobalNegative, DurationSeconds: 180,
		Effects: Effects{EffNoFishing: true}, Emoji: "⛈️", Weight: 0.4,
		Message: "⛈️ [Storm] {nickname} brought in a storm! Nobody can fish for three minutes!"},
	{ID: "scatter", Name: "Scattered School", Scope: GlobalNegative, DurationSeconds: 180,
		Effects: Effects{EffRareMult: 0.5}, Emoji: "💨", Weight: 0.7,
		Message: "💨 [Scattered School] {nickname} spooked the fish! Rare odds halved for three minutes!"},
	{ID: "creeping_curse", Name: "Creeping Curse", Scope: GlobalNegative, DurationSeconds: 120,
		Effects: Effects{EffDarkMult: 2.0}, Emoji: "👻", Weight: 0.6,
		Message: "👻 [Creeping Curse] {nickname} loosed a curse! Dark odds doubled for two minutes!"},
}

var PersonalPositiveEvents = []EventDef{
	{ID: "lucky_strike", Name: "Lucky Strike", Scope: PersonalPositive,
		Effects: Effects{EffGuaranteedRare: true}, Emoji: "🍀", Weight: 1.0,
		Message: "🍀 {nickname} hit a [Lucky Strike]! This cast is guaranteed rare or better!"},
	{ID: "windfall", Name: "Windfall", Scope: PersonalPositive,
		Effects: Effects{EffExtraCatch: true}, Emoji: "🎁", Weight: 1.2,
		Message: "🎁 {nickname} got a [Windfall]! An extra fish on this cast!"},
	{ID: "karma_boon", Name: "Karma Boon", Scope: PersonalPositive,
		Effects: Effects{EffKarmaRange: Range{5, 20}}, Emoji: "🙏", Weight: 1.0,
		Message: "🙏 {nickname} received a [Karma Boon]! +{karma} karma!"},
	{ID: "growth_spurt", Name: "Growth Spurt", Scope: PersonalPositive,
		Effects: Effects{EffSizeMult: 1.5}, Emoji: "📏", Weight: 1.2,
		Message: "📏 {nickname} triggered a [Growth Spurt]! This catch is 50% longer!"},
	{ID: "shiny_blessing", Name: "Shiny Blessing", Scope: PersonalPositive,
		Effects: Effects{EffGuaranteedShiny: true}, Emoji: "✨", Weight: 0.5,
		Message: "✨ {nickname} got a [Shiny Blessing]! This cast is guaranteed shiny!"},
	{ID: "free_bait", Name: "Free Bait", Scope: PersonalPositive,
		Effects: Effects{EffFreeBait: true}, Emoji: "🪣", Weight: 0.8,
		Message: "🪣 {nickname} found [Free Bait]! The next bait toss costs nothing!"},
	{ID: "treasure_chest", Name: "Treasure Chest", Scope: PersonalPositive,
		Effects: Effects{EffKarmaRange: Range{10, 50}}, Emoji: "📦", Weight: 0.4,
		Message: "📦 {nickname} hauled up a [Treasure Chest]! +{karma} karma!"},
	{ID: "ancient_relic", Name: "Ancient Relic", Scope: PersonalPositive,
		Effects: Effects{EffKarmaRange: Range{30, 100}}, Emoji: "🏺", Weight: 0.2,
		Message: "🏺 {nickname} dredged up an [Ancient Relic]! +{karma} karma!"},
}

var PersonalNegativeEvents = []EventDef{
	{ID: "rod_snap", Name: "Rod Snap", Scope: PersonalNegative,
		Effects: Effects{EffKarmaLoss: 5}, Emoji: "💔", Weight: 1.0,
		Message: "💔 {nickname}'s rod snapped! -5 karma!"},
	{ID: "the_one_that_got_away", Name: "The One That Got Away", Scope: PersonalNegative,
		Effects: Effects{EffFail: true}, Emoji: "😢", Weight: 1.2,
		Message: "😢 {nickname}'s fish got away! Nothing this cast!"},
	{ID: "cursed", Name: "Cursed", Scope: PersonalNegative,
		Effects: Effects{EffCurseCount: 3}, Emoji: "👻", Weight: 0.5,
		Message: "👻 {nickname} is [Cursed]! The next three casts pull only dark fish!"},
	{ID: "butterfingers", Name: "Butterfingers", Scope: PersonalNegative,
		Effects: Effects{EffKarmaLossRange: Range{1, 5}}, Emoji: "🫠", Weight: 1.5,
		Message: "🫠 {nickname} fumbled the line! -{karma} karma!"},
	{ID: "snagged_hook", Name: "Snagged Hook", Scope: PersonalNegative,
		Effects: Effects{EffKarmaLoss: 3}, Emoji: "🪝", Weight: 1.0,
		Message: "🪝 {nickname}'s hook snagged on the bottom! -3 karma!"},
	{ID: "bait_thief", Name: "Bait Thief", Scope: PersonalNegative,
		Effects: Effects{EffKarmaLoss: 2}, Emoji: "🐭", Weight: 1.2,
		Message: "🐭 Something stole {nickname}'s bait! -2 karma!"},
	{ID: "bad_omen", Name: "Bad Omen", Scope: PersonalNegative,
		Effects: Effects{EffNextFail: true}, Emoji: "🌧️", Weight: 0.6,
		Message: "🌧️ A [Bad Omen] hangs over {nickname}! The next cast is doomed to fail!"},
}

var SpecialEvents = []EventDef{
	{ID: "time_warp", Name: "Time Warp", Scope: Special, DurationSeconds: 300,
		Effects: Effects{EffAllTime: true}, Emoji: "🌀", Weight: 0.3,
		Message: "🌀 [Time Warp] {nickname} bent the clock! Fish from any hour for five minutes!"},
	{ID: "legend_rises", Name: "A Legend Rises", Scope: Special, DurationSeconds: 60,
		Effects: Effects{EffLegendaryMult: 5.0}, Emoji: "👑", Weight: 0.2,
		Message: "👑 [A Legend Rises] {nickname} stirred something huge! Legendary odds way up, one minute!"},
	{ID: "chaos", Name: "Chaos", Scope: Special, DurationSeconds: 120,
		Effects: Effects{EffChaos: true}, Emoji: "🎲", Weight: 0.3,
		Message: "🎲 [Chaos] {nickname} rolled the dice! All odds are random for two minutes!"},
	{ID: "mirror_world", Name: "Mirror World", Scope: Special, DurationSeconds: 180,
		Effects: Effects{EffMirror: true}, Emoji: "🪞", Weight: 0.2,
		Message: "🪞 [Mirror World] {nickname} stepped through the glass! Dark and shiny trade places for three minutes!"},
}

var (
	// GlobalEventPool is the weighted pool for global selection, in the
	// fixed order positive, negative, special. The order is part of the
	// weighted-walk contract.
	GlobalEventPool []EventDef
	// PersonalEventPool is the weighted pool for personal selection.
	PersonalEventPool []EventDef
	// AllEvents is every definition.
	AllEvents []EventDef

	eventByID map[string]EventDef
)

func init() {
	GlobalEventPool = append(GlobalEventPool, GlobalPositiveEvents...)
	GlobalEventPool = append(GlobalEventPool, GlobalNegativeEvents...)
	GlobalEventPool = append(GlobalEventPool, SpecialEvents...)

	PersonalEventPool = append(PersonalEventPool, PersonalPositiveEvents...)
	PersonalEventPool = append(PersonalEventPool, PersonalNegativeEvents...)

	AllEvents = append(AllEvents, GlobalEventPool...)
	AllEvents = append(AllEvents, PersonalEventPool...)

	eventByID = make(map[string]EventDef, len(AllEvents))
	for _, e := range AllEvents {
		if _, dup := eventByID[e.ID]; dup {
			panic(fmt.Sprintf("catalog: duplicate event id %q", e.ID))
		}
		if e.Weight <= 0 {
			panic(fmt.Sprintf("catalog: event %q has non-positive weight", e.ID))
		}
		eventByID[e.ID] = e
	}
}

// EventByID looks up an event definition. Absent ids return ok=false.
func EventByID(id string) (EventDef, bool) {
	e, ok := eventByID[id]
	return e, ok
}
