package repositories

// RepositoryProvider bundles the repository implementations selected at
// startup (PostgreSQL/Redis or in-memory) for service wiring.
type RepositoryProvider struct {
	NodeRepo       NodeRepositoryFacade
	PreferenceRepo PreferenceRepositoryFacade
}
