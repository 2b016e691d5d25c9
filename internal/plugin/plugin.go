package plugin

// Plugin is the contract every extendy plugin satisfies. A plugin is an
// independently authored unit of extension code with a unique identity;
// discovery hands it exactly one opportunity to contribute resources.
//
// Implementations should:
//   - Return stable identity information from Metadata()
//   - Perform all resource contribution inside Register(), using only
//     the provided registrator
//   - Not retain the registrator after Register returns; it is bound to
//     a single loading session
type Plugin interface {
	// Metadata returns the plugin's identity. Name doubles as the owner
	// identity stamped on every resource the plugin registers, so it
	// must be unique within a loading session.
	Metadata() Metadata

	// Register contributes the plugin's commands and services. It is
	// invoked at most once per loading session, before the registry is
	// frozen. Returning an error marks the plugin as failed; resources
	// already accepted before the failure stay registered.
	Register(r *Registrator) error
}
