package engine

// Cost is the price of one activation, debited from the Kind tier
type Cost struct {
	Kind   Kind
	Amount float64
}

// Rule is the static description of a tier
type Rule struct {
	Kind    Kind
	Label   string // Panel title
	Caption string // Action button text

	// HasCost is false for free tiers; Cost is ignored then
	HasCost bool
	Cost    Cost

	// Produces is the tier this one accrues every second per unit held
	// Only meaningful when Producer is true
	Producer bool
	Produces Kind
}

// rules is the compiled-in chain, indexed by Kind, never mutated
var rules = [KindCount]Rule{
	KindThing: {
		Kind:    KindThing,
		Label:   "Things",
		Caption: "Make Thing!",
	},
	KindThingMaker: {
		Kind:     KindThingMaker,
		Label:    "Things Makers",
		Caption:  "Make Thing Maker!",
		HasCost:  true,
		Cost:     Cost{Kind: KindThing, Amount: 10},
		Producer: true,
		Produces: KindThing,
	},
	KindAssembler: {
		Kind:     KindAssembler,
		Label:    "Assemblers",
		Caption:  "Assemble Assembler",
		HasCost:  true,
		Cost:     Cost{Kind: KindThing, Amount: 100},
		Producer: true,
		Produces: KindThingMaker,
	},
	KindAssemblyLine: {
		Kind:     KindAssemblyLine,
		Label:    "Assembly Lines",
		Caption:  "Line up Assemblers",
		HasCost:  true,
		Cost:     Cost{Kind: KindThing, Amount: 1_000},
		Producer: true,
		Produces: KindAssembler,
	},
	KindLearning: {
		Kind:     KindLearning,
		Label:    "Learning",
		Caption:  "Think",
		HasCost:  true,
		Cost:     Cost{Kind: KindAssembler, Amount: 100},
		Producer: true,
		Produces: KindAssemblyLine,
	},
	KindAutomatedLearning: {
		Kind:     KindAutomatedLearning,
		Label:    "Automated Learning",
		Caption:  "Automate",
		HasCost:  true,
		Cost:     Cost{Kind: KindLearning, Amount: 100},
		Producer: true,
		Produces: KindLearning,
	},
	KindAI: {
		Kind:     KindAI,
		Label:    "AI",
		Caption:  "Automate more",
		HasCost:  true,
		Cost:     Cost{Kind: KindAssembler, Amount: 1_000_000},
		Producer: true,
		Produces: KindAutomatedLearning,
	},
	KindAGI: {
		Kind:    KindAGI,
		Label:   "AGI",
		Caption: "Give up control",
		HasCost: true,
		Cost:    Cost{Kind: KindAI, Amount: 100},
	},
}

// productionChain lists (producer, produced) pairs in the order Tick applies them
// Derived from the rule table in Kind order so the two cannot drift
var productionChain = buildProductionChain()

func buildProductionChain() [][2]Kind {
	var chain [][2]Kind
	for _, r := range rules {
		if r.Producer {
			chain = append(chain, [2]Kind{r.Kind, r.Produces})
		}
	}
	return chain
}

// RuleFor returns the static rule of k, zero Rule for invalid kinds
func RuleFor(k Kind) Rule {
	if !k.Valid() {
		return Rule{}
	}
	return rules[k]
}

// PrestigeKind is the terminal tier; holding any of it resets the ledger
const PrestigeKind = KindAGI
