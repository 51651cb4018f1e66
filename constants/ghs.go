package constants

import "strings"

// SignalWord is the GHS severity marker printed on labels.
type SignalWord string

const (
	SignalDanger  SignalWord = "DANGER"
	SignalWarning SignalWord = "WARNING"
)

// CanonicalSignalWord normalizes a raw capture to one of the two valid
// signal words. Returns "" when the input is neither.
func CanonicalSignalWord(input string) SignalWord {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "DANGER":
		return SignalDanger
	case "WARNING":
		return SignalWarning
	default:
		return ""
	}
}

// Pictogram is a GHS pictogram identifier, stored as the lowercase name
// the label renderer keys its assets by.
type Pictogram string

const (
	PictogramExplosive    Pictogram = "exploding_bomb"    // GHS01
	PictogramFlame        Pictogram = "flame"             // GHS02
	PictogramOxidizer     Pictogram = "flame_over_circle" // GHS03
	PictogramGasCylinder  Pictogram = "gas_cylinder"      // GHS04
	PictogramCorrosion    Pictogram = "corrosion"         // GHS05
	PictogramSkull        Pictogram = "skull_crossbones"  // GHS06
	PictogramExclamation  Pictogram = "exclamation_mark"  // GHS07
	PictogramHealthHazard Pictogram = "health_hazard"     // GHS08
	PictogramEnvironment  Pictogram = "environment"       // GHS09
)

var allPictograms = []Pictogram{
	PictogramExplosive,
	PictogramFlame,
	PictogramOxidizer,
	PictogramGasCylinder,
	PictogramCorrosion,
	PictogramSkull,
	PictogramExclamation,
	PictogramHealthHazard,
	PictogramEnvironment,
}

// PictogramStrings returns the pictogram identifiers as plain strings.
func PictogramStrings() []string {
	out := make([]string, len(allPictograms))
	for i, p := range allPictograms {
		out[i] = string(p)
	}
	return out
}

// HazardStatements maps H-codes to their fixed GHS statement text. The
// extractor pairs every captured code with its description from this
// table; codes missing here are still kept, with an empty description,
// and surface as validation warnings. Subset covering the codes that
// actually occur on manufacturer SDS sheets for consumer and industrial
// chemicals.
var HazardStatements = map[string]string{
	// Physical hazards
	"H200": "Unstable explosive",
	"H201": "Explosive; mass explosion hazard",
	"H220": "Extremely flammable gas",
	"H221": "Flammable gas",
	"H222": "Extremely flammable aerosol",
	"H223": "Flammable aerosol",
	"H224": "Extremely flammable liquid and vapor",
	"H225": "Highly flammable liquid and vapor",
	"H226": "Flammable liquid and vapor",
	"H228": "Flammable solid",
	"H240": "Heating may cause an explosion",
	"H241": "Heating may cause a fire or explosion",
	"H242": "Heating may cause a fire",
	"H250": "Catches fire spontaneously if exposed to air",
	"H251": "Self-heating; may catch fire",
	"H260": "In contact with water releases flammable gases which may ignite spontaneously",
	"H261": "In contact with water releases flammable gas",
	"H270": "May cause or intensify fire; oxidizer",
	"H271": "May cause fire or explosion; strong oxidizer",
	"H272": "May intensify fire; oxidizer",
	"H280": "Contains gas under pressure; may explode if heated",
	"H281": "Contains refrigerated gas; may cause cryogenic burns or injury",
	"H290": "May be corrosive to metals",
	// Health hazards
	"H300": "Fatal if swallowed",
	"H301": "Toxic if swallowed",
	"H302": "Harmful if swallowed",
	"H304": "May be fatal if swallowed and enters airways",
	"H310": "Fatal in contact with skin",
	"H311": "Toxic in contact with skin",
	"H312": "Harmful in contact with skin",
	"H314": "Causes severe skin burns and eye damage",
	"H315": "Causes skin irritation",
	"H317": "May cause an allergic skin reaction",
	"H318": "Causes serious eye damage",
	"H319": "Causes serious eye irritation",
	"H330": "Fatal if inhaled",
	"H331": "Toxic if inhaled",
	"H332": "Harmful if inhaled",
	"H334": "May cause allergy or asthma symptoms or breathing difficulties if inhaled",
	"H335": "May cause respiratory irritation",
	"H336": "May cause drowsiness or dizziness",
	"H340": "May cause genetic defects",
	"H341": "Suspected of causing genetic defects",
	"H350": "May cause cancer",
	"H351": "Suspected of causing cancer",
	"H360": "May damage fertility or the unborn child",
	"H361": "Suspected of damaging fertility or the unborn child",
	"H370": "Causes damage to organs",
	"H371": "May cause damage to organs",
	"H372": "Causes damage to organs through prolonged or repeated exposure",
	"H373": "May cause damage to organs through prolonged or repeated exposure",
	// Environmental hazards
	"H400": "Very toxic to aquatic life",
	"H410": "Very toxic to aquatic life with long lasting effects",
	"H411": "Toxic to aquatic life with long lasting effects",
	"H412": "Harmful to aquatic life with long lasting effects",
}

// HazardDescription returns the statement text for an H-code, or "" when
// the code is not in the catalog.
func HazardDescription(code string) string {
	return HazardStatements[strings.ToUpper(strings.TrimSpace(code))]
}
