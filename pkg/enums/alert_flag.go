package enums

// AlertFlag marks whether an energy reading raised an alert.
type AlertFlag string

const (
	AlertFlagYes AlertFlag = "Si"
	AlertFlagNo  AlertFlag = "No"
)

var validAlertFlags = []AlertFlag{
	AlertFlagYes,
	AlertFlagNo,
}

// String implements fmt.Stringer.
func (a AlertFlag) String() string {
	return string(a)
}

// Options lists the accepted literals in declaration order.
func (a AlertFlag) Options() []string {
	return optionsOf(validAlertFlags)
}

// IsValid reports whether the value is a known AlertFlag.
func (a AlertFlag) IsValid() bool {
	for _, candidate := range validAlertFlags {
		if candidate == a {
			return true
		}
	}
	return false
}
