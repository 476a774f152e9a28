package services

// ServiceContainer holds all service facades for handler wiring.
type ServiceContainer struct {
	Rates      RateSvcFacade
	Conversion ConversionSvc
	Billing    BillingSvcFacade
	Preference PreferenceSvcFacade
}
