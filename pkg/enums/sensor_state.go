package enums

// SensorState is the operating state reported for a light sensor.
type SensorState string

const (
	SensorStateActive   SensorState = "Activo"
	SensorStateInactive SensorState = "Inactivo"
)

var validSensorStates = []SensorState{
	SensorStateActive,
	SensorStateInactive,
}

// String implements fmt.Stringer.
func (s SensorState) String() string {
	return string(s)
}

// Options lists the accepted literals in declaration order.
func (s SensorState) Options() []string {
	return optionsOf(validSensorStates)
}

// IsValid reports whether the value is a known SensorState.
func (s SensorState) IsValid() bool {
	for _, candidate := range validSensorStates {
		if candidate == s {
			return true
		}
	}
	return false
}
