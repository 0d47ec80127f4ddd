package enums

// AlertState tracks whether a security alert was handled.
type AlertState string

const (
	AlertStatePending  AlertState = "Pendiente"
	AlertStateResolved AlertState = "Resuelto"
)

var validAlertStates = []AlertState{
	AlertStatePending,
	AlertStateResolved,
}

// String implements fmt.Stringer.
func (a AlertState) String() string {
	return string(a)
}

// Options lists the accepted literals in declaration order.
func (a AlertState) Options() []string {
	return optionsOf(validAlertStates)
}

// IsValid reports whether the value is a known AlertState.
func (a AlertState) IsValid() bool {
	for _, candidate := range validAlertStates {
		if candidate == a {
			return true
		}
	}
	return false
}
