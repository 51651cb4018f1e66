package ghs

import "strings"

// equipmentFlags are the nine independent presence signals the HMIS PPE
// code derivation works from.
type equipmentFlags struct {
	glasses         bool
	goggles         bool
	faceShield      bool
	gloves          bool
	apron           bool
	dustRespirator  bool
	vaporRespirator bool
	suppliedAir     bool
	fullFace        bool
}

func detectEquipment(lower string) equipmentFlags {
	contains := func(kws ...string) bool {
		for _, kw := range kws {
			if strings.Contains(lower, kw) {
				return true
			}
		}
		return false
	}
	return equipmentFlags{
		glasses:         contains("safety glasses", "safety spectacles", "protective glasses"),
		goggles:         contains("goggles"),
		faceShield:      contains("face shield", "faceshield"),
		gloves:          contains("glove"),
		apron:           contains("apron", "protective clothing", "protective suit", "coveralls"),
		dustRespirator:  contains("dust mask", "dust respirator", "particulate respirator", "n95"),
		vaporRespirator: contains("vapor respirator", "vapour respirator", "organic vapor", "cartridge respirator"),
		suppliedAir:     contains("supplied air", "airline respirator", "self-contained breathing apparatus", "scba"),
		fullFace:        contains("full face", "full-face"),
	}
}

// ppeRules is the fixed, ordered HMIS PPE rule table. Most-protective
// combinations come first, so a sheet requiring supplied air is coded at
// that level even if it also mentions safety glasses somewhere. The order
// is load-bearing and not derivable from the individual flags; do not
// convert this to a map or reorder it.
var ppeRules = []struct {
	code  string
	match func(equipmentFlags) bool
}{
	{"K", func(f equipmentFlags) bool { return f.suppliedAir && f.fullFace && f.gloves && f.apron }},
	{"J", func(f equipmentFlags) bool { return f.goggles && f.gloves && f.apron && f.dustRespirator && f.vaporRespirator }},
	{"I", func(f equipmentFlags) bool { return f.glasses && f.gloves && f.dustRespirator && f.vaporRespirator }},
	{"H", func(f equipmentFlags) bool { return f.goggles && f.gloves && f.apron && f.vaporRespirator }},
	{"G", func(f equipmentFlags) bool { return f.glasses && f.gloves && f.vaporRespirator }},
	{"F", func(f equipmentFlags) bool { return f.glasses && f.gloves && f.apron && f.dustRespirator }},
	{"E", func(f equipmentFlags) bool { return f.glasses && f.gloves && f.dustRespirator }},
	{"D", func(f equipmentFlags) bool { return f.faceShield && f.gloves && f.apron }},
	{"C", func(f equipmentFlags) bool { return f.glasses && f.gloves && f.apron }},
	{"B", func(f equipmentFlags) bool { return f.glasses && f.gloves }},
	{"A", func(f equipmentFlags) bool { return f.glasses }},
}

// PPECodeUnclear is returned when no rule matches ("ask your supervisor").
const PPECodeUnclear = "X"

// DerivePPECode maps section-8 text to exactly one HMIS PPE letter by
// evaluating the ordered rule table and returning the first match.
// Deterministic: identical input always yields the identical letter.
func DerivePPECode(sectionText string) string {
	flags := detectEquipment(strings.ToLower(sectionText))
	for _, rule := range ppeRules {
		if rule.match(flags) {
			return rule.code
		}
	}
	return PPECodeUnclear
}
