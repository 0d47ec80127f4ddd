package enums

// LuminaireState is the lamp state of a luminaire.
type LuminaireState string

const (
	LuminaireStateOn    LuminaireState = "Encendida"
	LuminaireStateOff   LuminaireState = "Apagada"
	LuminaireStateFault LuminaireState = "Falla"
)

var validLuminaireStates = []LuminaireState{
	LuminaireStateOn,
	LuminaireStateOff,
	LuminaireStateFault,
}

// String implements fmt.Stringer.
func (l LuminaireState) String() string {
	return string(l)
}

// Options lists the accepted literals in declaration order.
func (l LuminaireState) Options() []string {
	return optionsOf(validLuminaireStates)
}

// IsValid reports whether the value is a known LuminaireState.
func (l LuminaireState) IsValid() bool {
	for _, candidate := range validLuminaireStates {
		if candidate == l {
			return true
		}
	}
	return false
}
