package models

// Collection names inside the SmartCitySecure database. Usuarios and Postes
// keep the capitalised names of the Atlas cluster.
const (
	CollectionUsers          = "Usuarios"
	CollectionSensors        = "sensores"
	CollectionLuminaires     = "luminarias"
	CollectionEnergyRecords  = "consumo_energia"
	CollectionSecurityAlerts = "alertas_seguridad"
	CollectionPostes         = "Postes"
)
