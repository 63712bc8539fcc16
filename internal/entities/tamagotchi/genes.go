package tamagotchi

// Trait is a heritable characteristic
type Trait string

// Trait values
const (
	TraitEyes   Trait = "TRAIT_EYES"
	TraitHair   Trait = "TRAIT_HAIR"
	TraitTalent Trait = "TRAIT_TALENT"
)

// Traits lists traits in the order genes are drawn
var Traits = []Trait{TraitEyes, TraitHair, TraitTalent}

// Gene is one allele of a trait
type Gene struct {
	Allele   string `json:"allele"`
	Dominant bool   `json:"dominant"`
}

// GeneCatalog holds the alleles a creature can inherit per trait
var GeneCatalog = map[Trait][]Gene{
	TraitEyes: {
		{Allele: "blue", Dominant: false},
		{Allele: "brown", Dominant: true},
		{Allele: "green", Dominant: false},
	},
	TraitHair: {
		{Allele: "dark", Dominant: true},
		{Allele: "blonde", Dominant: false},
		{Allele: "red", Dominant: false},
	},
	TraitTalent: {
		{Allele: "super_hearing", Dominant: true},
		{Allele: "night_vision", Dominant: false},
		{Allele: "fast_run", Dominant: true},
	},
}

// Genes is the drawn genotype
type Genes struct {
	Eyes   Gene `json:"eyes"`
	Hair   Gene `json:"hair"`
	Talent Gene `json:"talent"`
}

// Set stores g under trait
func (g *Genes) Set(trait Trait, gene Gene) {
	switch trait {
	case TraitEyes:
		g.Eyes = gene
	case TraitHair:
		g.Hair = gene
	case TraitTalent:
		g.Talent = gene
	}
}

// Get returns the gene drawn for trait
func (g Genes) Get(trait Trait) Gene {
	switch trait {
	case TraitEyes:
		return g.Eyes
	case TraitHair:
		return g.Hair
	case TraitTalent:
		return g.Talent
	default:
		return Gene{}
	}
}

// IsZero reports whether no genes were drawn, as for legacy records
func (g Genes) IsZero() bool {
	return g.Eyes.Allele == "" && g.Hair.Allele == "" && g.Talent.Allele == ""
}

// Dominant reports whether at least two of the three genes are dominant
func (g Genes) Dominant() bool {
	n := 0
	for _, gene := range []Gene{g.Eyes, g.Hair, g.Talent} {
		if gene.Dominant {
			n++
		}
	}
	return n >= 2
}
